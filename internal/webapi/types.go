package webapi

import "github.com/canopyux/canopy/internal/models"

// TaskSummary is the API response for one task in the list view.
type TaskSummary struct {
	TaskIndex      int     `json:"task_index"`
	Description    string  `json:"description"`
	ExpectedAnswer string  `json:"expected_answer"`
	Score          int     `json:"score"`
	SuccessRate    float64 `json:"success_rate"`
	DirectnessRate float64 `json:"directness_rate"`
	ResultCount    int     `json:"result_count"`
}

// TaskDetail is the full per-task response: summary plus the complete
// statistics bundle.
type TaskDetail struct {
	TaskSummary
	Statistics models.TaskStatistics `json:"statistics"`
}

// StudyResponse is the study-level overview response.
type StudyResponse struct {
	Name      string               `json:"name"`
	Overview  models.OverviewStats `json:"overview"`
	TaskCount int                  `json:"task_count"`
}

// GraphNodeResponse is one node of the navigation graph.
type GraphNodeResponse struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	ParentID  string `json:"parent_id,omitempty"`
	RightPath int    `json:"right_path"`
	WrongPath int    `json:"wrong_path"`
	Back      int    `json:"back"`
	Nominated int    `json:"nominated"`
	Skipped   int    `json:"skipped"`
	Total     int    `json:"total"`
}

// GraphEdgeResponse is one traversal edge of the navigation graph.
type GraphEdgeResponse struct {
	Source        string `json:"source"`
	Target        string `json:"target"`
	Value         int    `json:"value"`
	IsCorrectPath bool   `json:"is_correct_path"`
}

// GraphResponse is the per-task navigation graph response.
type GraphResponse struct {
	TaskIndex int                 `json:"task_index"`
	Root      string              `json:"root"`
	Nodes     []GraphNodeResponse `json:"nodes"`
	Edges     []GraphEdgeResponse `json:"edges"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
