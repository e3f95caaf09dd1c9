package models

import "github.com/canopyux/canopy/internal/statistics"

// OverviewStats is the whole-study summary.
type OverviewStats struct {
	TotalParticipants     int     `json:"total_participants"`
	CompletedParticipants int     `json:"completed_participants"`
	AbandonedParticipants int     `json:"abandoned_participants"`
	CompletionRate        float64 `json:"completion_rate"`

	// Session-duration stats over completed participants with a positive
	// duration. Abandoned sessions carry no meaningful duration.
	Duration    statistics.TimeStats `json:"duration"`
	AvgDuration float64              `json:"avg_duration"`

	// Rates over the flattened set of all task results. A participant who
	// completed more tasks weighs more.
	TotalResults   int     `json:"total_results"`
	SuccessRate    float64 `json:"success_rate"`
	DirectnessRate float64 `json:"directness_rate"`
	OverallScore   int     `json:"overall_score"`
}

// TaskStatistics is the full per-task metric bundle.
type TaskStatistics struct {
	TaskID      string `json:"task_id"`
	TaskIndex   int    `json:"task_index"`
	ResultCount int    `json:"result_count"`

	// Rates are stored unrounded; presentation layers round. Margins are
	// 95%-confidence half-widths on the percentage scale.
	SuccessRate      float64 `json:"success_rate"`
	SuccessMargin    float64 `json:"success_margin"`
	DirectnessRate   float64 `json:"directness_rate"`
	DirectnessMargin float64 `json:"directness_margin"`
	Score            int     `json:"score"`

	// Time covers non-skipped results only.
	Time statistics.TimeStats `json:"time"`

	Breakdown OutcomeBreakdown `json:"breakdown"`

	PathDistribution      []PathDistributionEntry `json:"path_distribution"`
	IncorrectDestinations []IncorrectDestination  `json:"incorrect_destinations"`
	ParentClicks          []ParentClickStats      `json:"parent_clicks"`

	// ParentNodeLevels is nil when the expected answer could not be
	// analyzed; nil is distinct from an empty, all-zero bundle.
	ParentNodeLevels []ParentLevelStat `json:"parent_node_levels,omitempty"`

	// Confidence always holds seven buckets, ratings 1 through 7.
	Confidence []ConfidenceBucket `json:"confidence"`
}

// PathDistributionEntry groups successful results by final destination.
type PathDistributionEntry struct {
	Destination string `json:"destination"`
	// Path is the shortest observed variant ending at this destination,
	// rendered with the display delimiter.
	Path       string  `json:"path"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// IncorrectDestination groups failed results by the wrong node they ended on.
// Percentages are relative to the total number of incorrect landings, not to
// the task's result count.
type IncorrectDestination struct {
	Destination string  `json:"destination"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

// ParentClickStats tracks traffic through one first-level parent section.
type ParentClickStats struct {
	// Path is the normalized parent path: "/Root/Child" for single-root
	// trees, "/Item" for multi-root trees.
	Path string `json:"path"`
	// FirstClicks counts results that entered the tree through this parent.
	FirstClicks    int     `json:"first_clicks"`
	FirstClickRate float64 `json:"first_click_rate"`
	// TotalClicks counts results whose path visited this parent anywhere.
	TotalClicks    int     `json:"total_clicks"`
	TotalClickRate float64 `json:"total_click_rate"`
	IsCorrect      bool    `json:"is_correct"`
}

// ParentLevelStat reports how many participants passed through the expected
// answer's node at a fixed depth, regardless of which branch got them there.
type ParentLevelStat struct {
	Level       int     `json:"level"`
	NodeName    string  `json:"node_name"`
	Visited     int     `json:"visited"`
	VisitedRate float64 `json:"visited_rate"`
}

// ConfidenceBucket is one rating bucket (1..7) with the outcome mix of the
// results that chose it. Percentages use the bucket's own count as
// denominator.
type ConfidenceBucket struct {
	Rating             int     `json:"rating"`
	Count              int     `json:"count"`
	DirectSuccessPct   float64 `json:"direct_success_pct"`
	IndirectSuccessPct float64 `json:"indirect_success_pct"`
	FailPct            float64 `json:"fail_pct"`
	SkipPct            float64 `json:"skip_pct"`
}
