package analysis

import (
	"sort"
	"strings"

	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/pathparse"
	"github.com/canopyux/canopy/internal/statistics"
)

// computePathDistribution groups successful, non-skipped results by the node
// they ended on, case-insensitively. For each destination the shortest
// observed path variant is kept as the representative string. Percentages
// are relative to the number of successful results, not the task total, so
// they answer "of the people who succeeded, how many went where".
func computePathDistribution(results []models.TaskResult) []models.PathDistributionEntry {
	type group struct {
		segments []string
		count    int
	}
	groups := make(map[string]*group)
	successCount := 0

	for _, r := range results {
		if r.Skipped || !r.Successful {
			continue
		}
		successCount++
		segments := pathparse.ParsePath(r.PathTaken)
		if len(segments) == 0 {
			continue
		}
		key := strings.ToLower(segments[len(segments)-1])
		g, ok := groups[key]
		if !ok {
			groups[key] = &group{segments: segments, count: 1}
			continue
		}
		g.count++
		if len(segments) < len(g.segments) {
			g.segments = segments
		}
	}

	entries := make([]models.PathDistributionEntry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, models.PathDistributionEntry{
			Destination: g.segments[len(g.segments)-1],
			Path:        strings.Join(g.segments, pathparse.DisplayDelimiter),
			Count:       g.count,
			Percentage:  statistics.Percentage(g.count, successCount),
		})
	}
	sortByCount(entries, func(e models.PathDistributionEntry) (int, string) { return e.Count, e.Destination })
	return entries
}

// computeIncorrectDestinations groups failed, non-skipped results by the
// wrong node they ended on. Destinations matching the final segment of any
// expected answer are excluded; landing on a valid answer node while flagged
// unsuccessful is noise, not a reportable wrong destination. Percentages use
// the sum of incorrect landings as denominator.
func computeIncorrectDestinations(task models.Task, results []models.TaskResult) []models.IncorrectDestination {
	expectedFinals := make(map[string]bool)
	for _, answer := range task.ExpectedAnswers() {
		if final := pathparse.FinalSegment(answer); final != "" {
			expectedFinals[strings.ToLower(final)] = true
		}
	}

	type group struct {
		display string
		count   int
	}
	groups := make(map[string]*group)
	total := 0

	for _, r := range results {
		if r.Skipped || r.Successful {
			continue
		}
		final := pathparse.FinalSegment(r.PathTaken)
		if final == "" {
			continue
		}
		key := strings.ToLower(final)
		if expectedFinals[key] {
			continue
		}
		total++
		if g, ok := groups[key]; ok {
			g.count++
		} else {
			groups[key] = &group{display: final, count: 1}
		}
	}

	entries := make([]models.IncorrectDestination, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, models.IncorrectDestination{
			Destination: g.display,
			Count:       g.count,
			Percentage:  statistics.Percentage(g.count, total),
		})
	}
	sortByCount(entries, func(e models.IncorrectDestination) (int, string) { return e.Count, e.Destination })
	return entries
}

// sortByCount orders entries by descending count, breaking ties by name so
// repeated runs over the same dataset produce identical output.
func sortByCount[T any](entries []T, key func(T) (int, string)) {
	sort.Slice(entries, func(i, j int) bool {
		ci, ni := key(entries[i])
		cj, nj := key(entries[j])
		if ci != cj {
			return ci > cj
		}
		return ni < nj
	})
}
