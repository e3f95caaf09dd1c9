// Package statistics provides the small descriptive-statistics toolkit the
// analysis engine is built on: medians, floor-index quartiles, and
// normal-approximation margins of error on percentage rates.
package statistics

import (
	"math"
	"sort"
)

// zScore95 is the critical value for a 95% two-sided confidence interval.
const zScore95 = 1.96

// TimeStats summarizes a set of completion times in seconds.
type TimeStats struct {
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// ComputeTimeStats returns median, min, max and quartiles for the given
// values. Quartiles use the floor(n*0.25)/floor(n*0.75) index rule rather
// than interpolation. Empty input yields all zeroes.
func ComputeTimeStats(values []float64) TimeStats {
	n := len(values)
	if n == 0 {
		return TimeStats{}
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	return TimeStats{
		Median: medianSorted(sorted),
		Min:    sorted[0],
		Max:    sorted[n-1],
		Q1:     sorted[int(math.Floor(float64(n)*0.25))],
		Q3:     sorted[int(math.Floor(float64(n)*0.75))],
	}
}

// Median returns the median value, averaging the two middle elements when
// the count is even. Returns 0 for empty input.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return medianSorted(sorted)
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mean returns the arithmetic mean, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Percentage returns count/total as a percentage, 0 when total is zero.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// MarginOfError returns the 95%-confidence half-width for a percentage rate
// observed over n samples, using the normal approximation:
//
//	sqrt(rate * (100 - rate) / n) * 1.96
//
// The result may push rate-margin below 0 or rate+margin above 100; callers
// clamp for display only. Returns 0 when n is zero.
func MarginOfError(ratePercent float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return math.Sqrt(ratePercent*(100-ratePercent)/float64(n)) * zScore95
}
