// Package analysis is the aggregate statistics engine: it consumes the raw
// participant dataset and produces the whole-study overview and per-task
// metric bundles. Every computation here is a pure function of its inputs;
// no state survives between calls, and no input shape makes it fail.
package analysis

import (
	"math"

	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/statistics"
)

// Score weighting: success counts for 70% of a score, directness for 30%.
const (
	successWeight    = 0.7
	directnessWeight = 0.3
)

// ComputeOverview produces the whole-study summary. Success and directness
// rates are computed over the flattened set of all task results, so a
// participant who reached more tasks carries more weight than one who
// abandoned early.
func ComputeOverview(participants []models.Participant) models.OverviewStats {
	stats := models.OverviewStats{
		TotalParticipants: len(participants),
	}

	var durations []float64
	for _, p := range participants {
		if p.Completed() {
			stats.CompletedParticipants++
			if p.DurationSeconds > 0 {
				durations = append(durations, p.DurationSeconds)
			}
		} else {
			stats.AbandonedParticipants++
		}
	}
	stats.CompletionRate = statistics.Percentage(stats.CompletedParticipants, stats.TotalParticipants)
	stats.Duration = statistics.ComputeTimeStats(durations)
	stats.AvgDuration = statistics.Mean(durations)

	results := models.AllResults(participants)
	stats.TotalResults = len(results)
	stats.SuccessRate, stats.DirectnessRate = successAndDirectnessRates(results)
	stats.OverallScore = weightedScore(stats.SuccessRate, stats.DirectnessRate)

	return stats
}

// successAndDirectnessRates counts through the outcome classifier so that
// skip dominance and the skip-directness heuristic apply consistently: a
// result flagged both skipped and successful counts as a skip, not a success.
func successAndDirectnessRates(results []models.TaskResult) (success, directness float64) {
	if len(results) == 0 {
		return 0, 0
	}
	var successes, directs int
	for _, r := range results {
		switch models.Classify(r) {
		case models.DirectSuccess:
			successes++
			directs++
		case models.IndirectSuccess:
			successes++
		case models.DirectFail, models.DirectSkip:
			directs++
		}
	}
	n := len(results)
	return statistics.Percentage(successes, n), statistics.Percentage(directs, n)
}

func weightedScore(successRate, directnessRate float64) int {
	return int(math.Round(successRate*successWeight + directnessRate*directnessWeight))
}
