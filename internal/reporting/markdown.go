// Package reporting renders analysis output for humans: a markdown study
// report, aligned text tables for the terminal, and CSV/archive exports.
// Everything here consumes the statistics bundles as-is; no arithmetic
// happens in this package beyond display rounding.
package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/canopyux/canopy/internal/models"
)

// FormatMarkdown renders the full study report as markdown. Rates are
// rounded to whole percentages for presentation; the underlying bundles
// keep the unrounded values.
func FormatMarkdown(studyName string, tasks []models.Task, overview models.OverviewStats, taskStats []models.TaskStatistics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Tree Test Report: %s\n\n", studyName)

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Participants:** %d (%d completed, %d abandoned)\n",
		overview.TotalParticipants, overview.CompletedParticipants, overview.AbandonedParticipants)
	fmt.Fprintf(&b, "- **Completion rate:** %d%%\n", roundPct(overview.CompletionRate))
	fmt.Fprintf(&b, "- **Success rate:** %d%% across %d task results\n",
		roundPct(overview.SuccessRate), overview.TotalResults)
	fmt.Fprintf(&b, "- **Directness rate:** %d%%\n", roundPct(overview.DirectnessRate))
	fmt.Fprintf(&b, "- **Overall score:** %d\n", overview.OverallScore)
	if overview.Duration.Max > 0 {
		fmt.Fprintf(&b, "- **Session duration:** median %s (min %s, max %s)\n",
			formatSeconds(overview.Duration.Median), formatSeconds(overview.Duration.Min), formatSeconds(overview.Duration.Max))
	}
	b.WriteString("\n")

	for _, ts := range taskStats {
		writeTaskSection(&b, taskFor(tasks, ts.TaskIndex), ts)
	}

	return b.String()
}

func writeTaskSection(b *strings.Builder, task models.Task, ts models.TaskStatistics) {
	fmt.Fprintf(b, "## Task %d: %s\n\n", ts.TaskIndex, task.Description)
	fmt.Fprintf(b, "_Expected answer: %s_\n\n", task.ExpectedAnswer)

	fmt.Fprintf(b, "- **Score:** %d\n", ts.Score)
	fmt.Fprintf(b, "- **Success:** %d%% ± %d\n", roundPct(ts.SuccessRate), roundPct(ts.SuccessMargin))
	fmt.Fprintf(b, "- **Directness:** %d%% ± %d\n", roundPct(ts.DirectnessRate), roundPct(ts.DirectnessMargin))
	fmt.Fprintf(b, "- **Time:** median %s (q1 %s, q3 %s, min %s, max %s)\n\n",
		formatSeconds(ts.Time.Median), formatSeconds(ts.Time.Q1), formatSeconds(ts.Time.Q3),
		formatSeconds(ts.Time.Min), formatSeconds(ts.Time.Max))

	writeBreakdown(b, ts.Breakdown)
	writePathDistribution(b, ts.PathDistribution)
	writeIncorrectDestinations(b, ts.IncorrectDestinations)
	writeParentClicks(b, ts.ParentClicks)
	writeParentLevels(b, ts.ParentNodeLevels)
	writeConfidence(b, ts.Confidence)
}

func writeBreakdown(b *strings.Builder, bd models.OutcomeBreakdown) {
	b.WriteString("### Outcomes\n\n")
	b.WriteString("| Outcome | Count |\n|---|---|\n")
	fmt.Fprintf(b, "| Direct success | %d |\n", bd.DirectSuccess)
	fmt.Fprintf(b, "| Indirect success | %d |\n", bd.IndirectSuccess)
	fmt.Fprintf(b, "| Direct fail | %d |\n", bd.DirectFail)
	fmt.Fprintf(b, "| Indirect fail | %d |\n", bd.IndirectFail)
	fmt.Fprintf(b, "| Direct skip | %d |\n", bd.DirectSkip)
	fmt.Fprintf(b, "| Indirect skip | %d |\n", bd.IndirectSkip)
	fmt.Fprintf(b, "| **Total** | %d |\n\n", bd.Total)
}

func writePathDistribution(b *strings.Builder, entries []models.PathDistributionEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("### Where successful participants went\n\n")
	b.WriteString("| Destination | Path | Count | % of successes |\n|---|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %s | %d | %d%% |\n", e.Destination, e.Path, e.Count, roundPct(e.Percentage))
	}
	b.WriteString("\n")
}

func writeIncorrectDestinations(b *strings.Builder, entries []models.IncorrectDestination) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("### Wrong destinations\n\n")
	b.WriteString("| Destination | Count | % of wrong landings |\n|---|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %d | %d%% |\n", e.Destination, e.Count, roundPct(e.Percentage))
	}
	b.WriteString("\n")
}

func writeParentClicks(b *strings.Builder, entries []models.ParentClickStats) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("### First-level sections\n\n")
	b.WriteString("| Section | First click | Clicked during task | Correct |\n|---|---|---|---|\n")
	for _, e := range entries {
		mark := ""
		if e.IsCorrect {
			mark = "yes"
		}
		fmt.Fprintf(b, "| %s | %d (%d%%) | %d (%d%%) | %s |\n",
			e.Path, e.FirstClicks, roundPct(e.FirstClickRate), e.TotalClicks, roundPct(e.TotalClickRate), mark)
	}
	b.WriteString("\n")
}

func writeParentLevels(b *strings.Builder, levels []models.ParentLevelStat) {
	if len(levels) == 0 {
		return
	}
	b.WriteString("### Expected path, level by level\n\n")
	b.WriteString("| Level | Node | Visited by |\n|---|---|---|\n")
	for _, l := range levels {
		fmt.Fprintf(b, "| %d | %s | %d (%d%%) |\n", l.Level, l.NodeName, l.Visited, roundPct(l.VisitedRate))
	}
	b.WriteString("\n")
}

func writeConfidence(b *strings.Builder, buckets []models.ConfidenceBucket) {
	rated := 0
	for _, bucket := range buckets {
		rated += bucket.Count
	}
	if rated == 0 {
		return
	}
	b.WriteString("### Confidence\n\n")
	b.WriteString("| Rating | Count | Direct success | Indirect success | Fail |\n|---|---|---|---|---|\n")
	for _, bucket := range buckets {
		fmt.Fprintf(b, "| %d | %d | %d%% | %d%% | %d%% |\n",
			bucket.Rating, bucket.Count,
			roundPct(bucket.DirectSuccessPct), roundPct(bucket.IndirectSuccessPct), roundPct(bucket.FailPct))
	}
	b.WriteString("\n")
}

func taskFor(tasks []models.Task, index int) models.Task {
	for _, t := range tasks {
		if t.Index == index {
			return t
		}
	}
	return models.Task{Index: index, Description: fmt.Sprintf("Task %d", index)}
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

func formatSeconds(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0fs", v)
	}
	return fmt.Sprintf("%.1fs", v)
}
