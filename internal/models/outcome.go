package models

import "github.com/canopyux/canopy/internal/pathparse"

// OutcomeClass is the six-way classification of a single task result. Every
// result maps to exactly one class, so the six per-class counters partition
// a task's result set.
type OutcomeClass string

const (
	DirectSuccess   OutcomeClass = "direct_success"
	IndirectSuccess OutcomeClass = "indirect_success"
	DirectFail      OutcomeClass = "direct_fail"
	IndirectFail    OutcomeClass = "indirect_fail"
	DirectSkip      OutcomeClass = "direct_skip"
	IndirectSkip    OutcomeClass = "indirect_skip"
)

// Classify derives the outcome class for a result. Skipped dominates: a
// result flagged both skipped and successful counts as a skip. When a skip
// carries no explicit directness flag, directness is inferred from the path
// shape: skipping before navigating anywhere (empty or single-node path)
// counts as a direct skip.
func Classify(r TaskResult) OutcomeClass {
	switch {
	case r.Skipped:
		direct := r.IsDirect()
		if r.DirectPathTaken == nil {
			direct = len(pathparse.ParsePath(r.PathTaken)) <= 1
		}
		if direct {
			return DirectSkip
		}
		return IndirectSkip
	case r.Successful:
		if r.IsDirect() {
			return DirectSuccess
		}
		return IndirectSuccess
	default:
		if r.IsDirect() {
			return DirectFail
		}
		return IndirectFail
	}
}

// OutcomeBreakdown counts results per outcome class for one task.
type OutcomeBreakdown struct {
	DirectSuccess   int `json:"direct_success"`
	IndirectSuccess int `json:"indirect_success"`
	DirectFail      int `json:"direct_fail"`
	IndirectFail    int `json:"indirect_fail"`
	DirectSkip      int `json:"direct_skip"`
	IndirectSkip    int `json:"indirect_skip"`
	Total           int `json:"total"`
}

// Add classifies the result and increments the matching counter.
func (b *OutcomeBreakdown) Add(r TaskResult) {
	switch Classify(r) {
	case DirectSuccess:
		b.DirectSuccess++
	case IndirectSuccess:
		b.IndirectSuccess++
	case DirectFail:
		b.DirectFail++
	case IndirectFail:
		b.IndirectFail++
	case DirectSkip:
		b.DirectSkip++
	case IndirectSkip:
		b.IndirectSkip++
	}
	b.Total++
}

// Sum returns the total across the six class counters. It equals Total for
// any breakdown built through Add.
func (b OutcomeBreakdown) Sum() int {
	return b.DirectSuccess + b.IndirectSuccess +
		b.DirectFail + b.IndirectFail +
		b.DirectSkip + b.IndirectSkip
}
