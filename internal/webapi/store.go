package webapi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/canopyux/canopy/internal/analysis"
	"github.com/canopyux/canopy/internal/dataset"
	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/navgraph"
	"github.com/canopyux/canopy/internal/study"
)

// ErrTaskNotFound is returned when a task index does not match any task in
// the loaded study.
var ErrTaskNotFound = errors.New("task not found")

// StudyStore provides the dashboard's view of one analyzed study.
type StudyStore interface {
	// Study returns the study-level overview.
	Study() (*StudyResponse, error)
	// ListTasks returns headline stats for every task, in task order.
	ListTasks() ([]TaskSummary, error)
	// GetTask returns the full statistics bundle for one task.
	GetTask(index int) (*TaskDetail, error)
	// GetGraph returns the navigation graph for one task.
	GetGraph(index int) (*GraphResponse, error)
}

// FileStore loads a study and its results from disk and computes analysis
// lazily on first request. Reload discards the cache so a running server
// picks up new result files.
type FileStore struct {
	studyPath   string
	resultsPath string

	mu           sync.RWMutex
	loaded       bool
	st           *study.Study
	participants []models.Participant
	overview     models.OverviewStats
	taskStats    []models.TaskStatistics
}

// NewFileStore creates a FileStore over the given study and results files.
func NewFileStore(studyPath, resultsPath string) *FileStore {
	return &FileStore{studyPath: studyPath, resultsPath: resultsPath}
}

func (fs *FileStore) load() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	st, err := study.Load(fs.studyPath)
	if err != nil {
		return fmt.Errorf("loading study: %w", err)
	}
	participants, err := dataset.LoadResults(fs.resultsPath)
	if err != nil {
		return fmt.Errorf("loading results: %w", err)
	}

	fs.st = st
	fs.participants = participants
	fs.overview = analysis.ComputeOverview(participants)
	fs.taskStats = analysis.ComputeAllTaskStatistics(st.Tasks, participants, st.Tree)
	fs.loaded = true
	return nil
}

func (fs *FileStore) ensureLoaded() error {
	fs.mu.RLock()
	if fs.loaded {
		fs.mu.RUnlock()
		return nil
	}
	fs.mu.RUnlock()
	return fs.load()
}

// Reload forces a fresh read of the study and result files.
func (fs *FileStore) Reload() error {
	return fs.load()
}

// Study returns the study-level overview.
func (fs *FileStore) Study() (*StudyResponse, error) {
	if err := fs.ensureLoaded(); err != nil {
		return nil, err
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	return &StudyResponse{
		Name:      fs.st.Name,
		Overview:  fs.overview,
		TaskCount: len(fs.st.Tasks),
	}, nil
}

// ListTasks returns headline stats for every task, in task order.
func (fs *FileStore) ListTasks() ([]TaskSummary, error) {
	if err := fs.ensureLoaded(); err != nil {
		return nil, err
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	out := make([]TaskSummary, 0, len(fs.taskStats))
	for _, ts := range fs.taskStats {
		out = append(out, fs.taskSummary(ts))
	}
	return out, nil
}

// GetTask returns the full statistics bundle for one task.
func (fs *FileStore) GetTask(index int) (*TaskDetail, error) {
	if err := fs.ensureLoaded(); err != nil {
		return nil, err
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, ts := range fs.taskStats {
		if ts.TaskIndex == index {
			return &TaskDetail{
				TaskSummary: fs.taskSummary(ts),
				Statistics:  ts,
			}, nil
		}
	}
	return nil, ErrTaskNotFound
}

// GetGraph returns the navigation graph for one task.
func (fs *FileStore) GetGraph(index int) (*GraphResponse, error) {
	if err := fs.ensureLoaded(); err != nil {
		return nil, err
	}
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	task, ok := fs.st.TaskByIndex(index)
	if !ok {
		return nil, ErrTaskNotFound
	}

	g := navgraph.Build(task, fs.participants, fs.st.Tree)
	resp := &GraphResponse{
		TaskIndex: index,
		Root:      g.RootPath,
		Nodes:     []GraphNodeResponse{},
		Edges:     []GraphEdgeResponse{},
	}
	for _, n := range g.Nodes() {
		resp.Nodes = append(resp.Nodes, GraphNodeResponse{
			Name:      n.Name,
			Path:      n.Path,
			ParentID:  n.ParentID,
			RightPath: n.Stats.RightPath,
			WrongPath: n.Stats.WrongPath,
			Back:      n.Stats.Back,
			Nominated: n.Stats.Nominated,
			Skipped:   n.Stats.Skipped,
			Total:     n.Stats.Total,
		})
	}
	for _, e := range g.Edges() {
		resp.Edges = append(resp.Edges, GraphEdgeResponse{
			Source:        e.Source,
			Target:        e.Target,
			Value:         e.Value,
			IsCorrectPath: e.IsCorrectPath,
		})
	}
	return resp, nil
}

func (fs *FileStore) taskSummary(ts models.TaskStatistics) TaskSummary {
	s := TaskSummary{
		TaskIndex:      ts.TaskIndex,
		Score:          ts.Score,
		SuccessRate:    ts.SuccessRate,
		DirectnessRate: ts.DirectnessRate,
		ResultCount:    ts.ResultCount,
	}
	if task, ok := fs.st.TaskByIndex(ts.TaskIndex); ok {
		s.Description = task.Description
		s.ExpectedAnswer = task.ExpectedAnswer
	}
	return s
}

// Ensure FileStore satisfies StudyStore.
var _ StudyStore = (*FileStore)(nil)
