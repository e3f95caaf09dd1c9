package models

import "testing"

func boolPtr(b bool) *bool { return &b }

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		result TaskResult
		want   OutcomeClass
	}{
		{
			"direct_success",
			TaskResult{Successful: true, DirectPathTaken: boolPtr(true), PathTaken: "Home/Products"},
			DirectSuccess,
		},
		{
			"indirect_success",
			TaskResult{Successful: true, DirectPathTaken: boolPtr(false), PathTaken: "Home/Deals/Home/Products"},
			IndirectSuccess,
		},
		{
			"success_without_directness_flag_is_indirect",
			TaskResult{Successful: true, PathTaken: "Home/Products"},
			IndirectSuccess,
		},
		{
			"direct_fail",
			TaskResult{DirectPathTaken: boolPtr(true), PathTaken: "Home/Deals"},
			DirectFail,
		},
		{
			"indirect_fail",
			TaskResult{DirectPathTaken: boolPtr(false), PathTaken: "Home/Deals/Outlet"},
			IndirectFail,
		},
		{
			"tagged_direct_skip",
			TaskResult{Skipped: true, DirectPathTaken: boolPtr(true), PathTaken: "Home/Products/Electronics"},
			DirectSkip,
		},
		{
			"tagged_indirect_skip",
			TaskResult{Skipped: true, DirectPathTaken: boolPtr(false), PathTaken: "Home/Deals"},
			IndirectSkip,
		},
		{
			"untagged_skip_empty_path_is_direct",
			TaskResult{Skipped: true, PathTaken: ""},
			DirectSkip,
		},
		{
			"untagged_skip_single_node_is_direct",
			TaskResult{Skipped: true, PathTaken: "Home"},
			DirectSkip,
		},
		{
			"untagged_skip_after_navigating_is_indirect",
			TaskResult{Skipped: true, PathTaken: "Home/Products"},
			IndirectSkip,
		},
		{
			"skip_dominates_success",
			TaskResult{Skipped: true, Successful: true, DirectPathTaken: boolPtr(true), PathTaken: "Home/Products"},
			DirectSkip,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.result); got != tt.want {
				t.Errorf("Classify(%+v) = %q, want %q", tt.result, got, tt.want)
			}
		})
	}
}

// Every result lands in exactly one bucket, so the six counters always sum
// to the total.
func TestOutcomeBreakdown_Partition(t *testing.T) {
	results := []TaskResult{
		{Successful: true, DirectPathTaken: boolPtr(true)},
		{Successful: true, DirectPathTaken: boolPtr(false)},
		{Successful: false, DirectPathTaken: boolPtr(true)},
		{Successful: false},
		{Skipped: true},
		{Skipped: true, PathTaken: "Home/Products/Electronics"},
		{Skipped: true, Successful: true, DirectPathTaken: boolPtr(false)},
	}

	var b OutcomeBreakdown
	for _, r := range results {
		b.Add(r)
	}

	if b.Total != len(results) {
		t.Errorf("Total = %d, want %d", b.Total, len(results))
	}
	if b.Sum() != b.Total {
		t.Errorf("buckets sum to %d, total is %d", b.Sum(), b.Total)
	}
	if b.DirectSuccess != 1 || b.IndirectSuccess != 1 {
		t.Errorf("success buckets = %d/%d, want 1/1", b.DirectSuccess, b.IndirectSuccess)
	}
	if b.DirectFail != 1 || b.IndirectFail != 1 {
		t.Errorf("fail buckets = %d/%d, want 1/1", b.DirectFail, b.IndirectFail)
	}
	if b.DirectSkip != 1 || b.IndirectSkip != 2 {
		t.Errorf("skip buckets = %d/%d, want 1/2", b.DirectSkip, b.IndirectSkip)
	}
}

func TestTaskExpectedAnswers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{"single", "Home/Products/Electronics", 1},
		{"multiple", "Home/Products/Electronics, Home/Deals/Electronics", 2},
		{"trailing_comma", "Home/Products,", 1},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{ExpectedAnswer: tt.answer}
			if got := task.ExpectedAnswers(); len(got) != tt.want {
				t.Errorf("ExpectedAnswers(%q) = %v, want %d entries", tt.answer, got, tt.want)
			}
		})
	}
}

func TestResultsForTask(t *testing.T) {
	participants := []Participant{
		{ID: "p1", TaskResults: []TaskResult{{TaskIndex: 1}, {TaskIndex: 2}}},
		{ID: "p2", TaskResults: []TaskResult{{TaskIndex: 1}}},
		{ID: "p3"},
	}
	if got := len(ResultsForTask(participants, 1)); got != 2 {
		t.Errorf("ResultsForTask(1) returned %d results, want 2", got)
	}
	if got := len(ResultsForTask(participants, 3)); got != 0 {
		t.Errorf("ResultsForTask(3) returned %d results, want 0", got)
	}
	if got := len(AllResults(participants)); got != 3 {
		t.Errorf("AllResults returned %d results, want 3", got)
	}
}
