package models

import "time"

// ParticipantStatus indicates whether a participant finished the study.
type ParticipantStatus string

const (
	StatusCompleted ParticipantStatus = "completed"
	StatusAbandoned ParticipantStatus = "abandoned"
)

// Participant is one person's session: metadata plus their per-task results.
// A participant who abandoned mid-study carries fewer TaskResults than the
// study has tasks.
type Participant struct {
	ID              string            `json:"id"`
	Status          ParticipantStatus `json:"status"`
	StartedAt       time.Time         `json:"started_at"`
	CompletedAt     time.Time         `json:"completed_at,omitempty"`
	DurationSeconds float64           `json:"duration_seconds"`
	TaskResults     []TaskResult      `json:"task_results"`
}

// Completed reports whether the participant finished every task.
func (p Participant) Completed() bool {
	return p.Status == StatusCompleted
}

// TaskResult is one participant's outcome for one task.
type TaskResult struct {
	// TaskIndex matches Task.Index (1-based).
	TaskIndex  int  `json:"task_index"`
	Successful bool `json:"successful"`
	// DirectPathTaken is nil when the source data did not record directness
	// explicitly; the classifier then falls back to a path-shape heuristic
	// for skips and treats the result as indirect otherwise.
	DirectPathTaken       *bool   `json:"direct_path_taken,omitempty"`
	Skipped               bool    `json:"skipped"`
	CompletionTimeSeconds float64 `json:"completion_time_seconds"`
	// PathTaken is the raw delimiter-ambiguous path string as captured.
	// Empty means the participant skipped before navigating anywhere.
	PathTaken string `json:"path_taken"`
	// ConfidenceRating is 1..7, nil when the participant gave none.
	ConfidenceRating *int `json:"confidence_rating,omitempty"`
}

// IsDirect reports the recorded directness flag, treating unrecorded as false.
func (r TaskResult) IsDirect() bool {
	return r.DirectPathTaken != nil && *r.DirectPathTaken
}

// ResultsForTask returns every result across all participants whose TaskIndex
// matches the given 1-based index. Order follows participant order.
func ResultsForTask(participants []Participant, taskIndex int) []TaskResult {
	var out []TaskResult
	for _, p := range participants {
		for _, r := range p.TaskResults {
			if r.TaskIndex == taskIndex {
				out = append(out, r)
			}
		}
	}
	return out
}

// AllResults flattens every task result across all participants. Participants
// who completed more tasks contribute more entries; study-wide rates are
// deliberately weighted this way.
func AllResults(participants []Participant) []TaskResult {
	var out []TaskResult
	for _, p := range participants {
		out = append(out, p.TaskResults...)
	}
	return out
}
