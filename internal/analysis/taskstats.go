package analysis

import (
	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/statistics"
)

// ComputeTaskStatistics produces the full metric bundle for one task. The
// tree structure is only needed for the single-root special case in the
// parent-click analysis; nil is a valid (multi-root) input.
//
// Malformed data degrades to zero-valued statistics rather than failing the
// run; the one exception is the parent-node level bundle, which is dropped
// (nil) when the expected answer cannot be analyzed, leaving every other
// statistic intact.
func ComputeTaskStatistics(task models.Task, participants []models.Participant, tree []models.TreeNode) models.TaskStatistics {
	results := models.ResultsForTask(participants, task.Index)

	stats := models.TaskStatistics{
		TaskID:      task.ID,
		TaskIndex:   task.Index,
		ResultCount: len(results),
	}

	stats.SuccessRate, stats.DirectnessRate = successAndDirectnessRates(results)
	stats.SuccessMargin = statistics.MarginOfError(stats.SuccessRate, len(results))
	stats.DirectnessMargin = statistics.MarginOfError(stats.DirectnessRate, len(results))
	stats.Score = weightedScore(stats.SuccessRate, stats.DirectnessRate)

	var times []float64
	for _, r := range results {
		if !r.Skipped {
			times = append(times, r.CompletionTimeSeconds)
		}
	}
	stats.Time = statistics.ComputeTimeStats(times)

	for _, r := range results {
		stats.Breakdown.Add(r)
	}

	stats.PathDistribution = computePathDistribution(results)
	stats.IncorrectDestinations = computeIncorrectDestinations(task, results)
	stats.ParentClicks = computeParentClicks(task, results, tree)
	stats.ParentNodeLevels = computeParentNodeLevels(task, results)
	stats.Confidence = computeConfidenceBuckets(results)

	return stats
}

// ComputeAllTaskStatistics runs ComputeTaskStatistics for every task, in
// task order.
func ComputeAllTaskStatistics(tasks []models.Task, participants []models.Participant, tree []models.TreeNode) []models.TaskStatistics {
	out := make([]models.TaskStatistics, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, ComputeTaskStatistics(task, participants, tree))
	}
	return out
}
