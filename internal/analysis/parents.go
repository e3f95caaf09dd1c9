package analysis

import (
	"strings"

	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/pathparse"
	"github.com/canopyux/canopy/internal/statistics"
)

// maxParentLevel bounds the parent-node level analysis at three levels deep.
const maxParentLevel = 3

// computeParentClicks analyzes which first-level section each participant
// entered. The parent path is normalized for the tree's shape: a single-root
// tree addresses its sections as "/Root/Child", a multi-root tree addresses
// its top-level items directly as "/Item". Both the first-click and the
// clicked-anywhere ratios use the non-skipped result count as denominator.
func computeParentClicks(task models.Task, results []models.TaskResult, tree []models.TreeNode) []models.ParentClickStats {
	singleRoot := len(tree) == 1

	correct := make(map[string]bool)
	for _, answer := range task.ExpectedAnswers() {
		if pp := firstLevelParentPath(pathparse.ParsePath(answer), singleRoot); pp != "" {
			correct[strings.ToLower(pp)] = true
		}
	}

	var nonSkipped []models.TaskResult
	for _, r := range results {
		if !r.Skipped {
			nonSkipped = append(nonSkipped, r)
		}
	}

	type entry struct {
		display     string
		firstClicks int
	}
	entries := make(map[string]*entry)
	for _, r := range nonSkipped {
		pp := firstLevelParentPath(pathparse.ParsePath(r.PathTaken), singleRoot)
		if pp == "" {
			continue
		}
		key := strings.ToLower(pp)
		if e, ok := entries[key]; ok {
			e.firstClicks++
		} else {
			entries[key] = &entry{display: pp, firstClicks: 1}
		}
	}

	n := len(nonSkipped)
	out := make([]models.ParentClickStats, 0, len(entries))
	for key, e := range entries {
		node := lastPathSegment(e.display)
		totalClicks := 0
		for _, r := range nonSkipped {
			if pathparse.PathContainsNode(r.PathTaken, node) {
				totalClicks++
			}
		}
		out = append(out, models.ParentClickStats{
			Path:           e.display,
			FirstClicks:    e.firstClicks,
			FirstClickRate: statistics.Percentage(e.firstClicks, n),
			TotalClicks:    totalClicks,
			TotalClickRate: statistics.Percentage(totalClicks, n),
			IsCorrect:      correct[key],
		})
	}
	sortByCount(out, func(e models.ParentClickStats) (int, string) { return e.FirstClicks, e.Path })
	return out
}

// firstLevelParentPath derives the normalized first-level parent path for a
// parsed participant path. Empty paths have no parent.
func firstLevelParentPath(segments []string, singleRoot bool) string {
	switch {
	case len(segments) == 0:
		return ""
	case singleRoot && len(segments) >= 2:
		return "/" + segments[0] + "/" + segments[1]
	default:
		return "/" + segments[0]
	}
}

func lastPathSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// computeParentNodeLevels reports, for the nodes at depth 1–3 of the
// expected answer, what fraction of non-skipped participants passed through
// that node anywhere in their path. Two quirks are deliberate and must
// survive refactors because shipped reports depend on them: only the first
// of several accepted answers seeds the level targets, and "passed through"
// is a containment check, not an ancestor-of-destination check.
//
// Any panic while analyzing a malformed expected answer drops this bundle to
// nil; the rest of the task statistics still compute.
func computeParentNodeLevels(task models.Task, results []models.TaskResult) (out []models.ParentLevelStat) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	answers := task.ExpectedAnswers()
	if len(answers) == 0 {
		return nil
	}
	expected := pathparse.ParsePath(answers[0])

	var nonSkipped []models.TaskResult
	for _, r := range results {
		if !r.Skipped {
			nonSkipped = append(nonSkipped, r)
		}
	}

	for level := 1; level <= maxParentLevel; level++ {
		node, ok := pathparse.NodeAtLevel(expected, level)
		if !ok {
			break
		}
		visited := 0
		for _, r := range nonSkipped {
			if pathparse.PathContainsNode(r.PathTaken, node) {
				visited++
			}
		}
		out = append(out, models.ParentLevelStat{
			Level:       level,
			NodeName:    node,
			Visited:     visited,
			VisitedRate: statistics.Percentage(visited, len(nonSkipped)),
		})
	}
	return out
}
