package analysis

import (
	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/statistics"
)

// Confidence ratings run on a fixed 1..7 scale.
const (
	minConfidenceRating = 1
	maxConfidenceRating = 7
)

// computeConfidenceBuckets buckets non-skipped results by their confidence
// rating. All seven buckets are always present, empty ones included, so the
// rendering layer never has to synthesize gaps. Sub-percentages use the
// bucket's own count as denominator.
func computeConfidenceBuckets(results []models.TaskResult) []models.ConfidenceBucket {
	type tally struct {
		directSuccess   int
		indirectSuccess int
		fail            int
		skip            int
		count           int
	}
	tallies := make([]tally, maxConfidenceRating+1)

	for _, r := range results {
		if r.Skipped || r.ConfidenceRating == nil {
			continue
		}
		rating := *r.ConfidenceRating
		if rating < minConfidenceRating || rating > maxConfidenceRating {
			continue
		}
		t := &tallies[rating]
		t.count++
		switch models.Classify(r) {
		case models.DirectSuccess:
			t.directSuccess++
		case models.IndirectSuccess:
			t.indirectSuccess++
		case models.DirectFail, models.IndirectFail:
			t.fail++
		case models.DirectSkip, models.IndirectSkip:
			t.skip++
		}
	}

	buckets := make([]models.ConfidenceBucket, 0, maxConfidenceRating)
	for rating := minConfidenceRating; rating <= maxConfidenceRating; rating++ {
		t := tallies[rating]
		buckets = append(buckets, models.ConfidenceBucket{
			Rating:             rating,
			Count:              t.count,
			DirectSuccessPct:   statistics.Percentage(t.directSuccess, t.count),
			IndirectSuccessPct: statistics.Percentage(t.indirectSuccess, t.count),
			FailPct:            statistics.Percentage(t.fail, t.count),
			SkipPct:            statistics.Percentage(t.skip, t.count),
		})
	}
	return buckets
}
