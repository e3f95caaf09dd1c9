package webapi

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const storeStudyYAML = `name: Store IA v2
tree:
  - name: Home
    children:
      - name: Products
        children:
          - name: Electronics
      - name: Deals
tasks:
  - description: Find a laptop charger
    expectedAnswer: Electronics
`

const storeResultsCSV = `participant_id,status,duration_seconds,task_index,successful,direct_path_taken,skipped,completion_time_seconds,path_taken,confidence_rating
p1,completed,300,1,true,true,false,12,Home/Products/Electronics,6
p2,completed,280,1,false,,false,30,Home/Deals,2
`

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	dir := t.TempDir()
	studyPath := filepath.Join(dir, "study.yaml")
	resultsPath := filepath.Join(dir, "results.csv")
	if err := os.WriteFile(studyPath, []byte(storeStudyYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(resultsPath, []byte(storeResultsCSV), 0644); err != nil {
		t.Fatal(err)
	}
	return NewFileStore(studyPath, resultsPath)
}

func TestFileStore_Study(t *testing.T) {
	fs := newTestFileStore(t)

	resp, err := fs.Study()
	if err != nil {
		t.Fatal(err)
	}
	if resp.Name != "Store IA v2" {
		t.Errorf("name = %q", resp.Name)
	}
	if resp.TaskCount != 1 {
		t.Errorf("task count = %d, want 1", resp.TaskCount)
	}
	if resp.Overview.TotalParticipants != 2 {
		t.Errorf("participants = %d, want 2", resp.Overview.TotalParticipants)
	}
}

func TestFileStore_Tasks(t *testing.T) {
	fs := newTestFileStore(t)

	tasks, err := fs.ListTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks", len(tasks))
	}
	if tasks[0].Description != "Find a laptop charger" {
		t.Errorf("description = %q", tasks[0].Description)
	}
	if tasks[0].SuccessRate != 50 {
		t.Errorf("success rate = %v, want 50", tasks[0].SuccessRate)
	}

	detail, err := fs.GetTask(1)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Statistics.Breakdown.Total != 2 {
		t.Errorf("breakdown total = %d, want 2", detail.Statistics.Breakdown.Total)
	}

	if _, err := fs.GetTask(42); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestFileStore_Graph(t *testing.T) {
	fs := newTestFileStore(t)

	graph, err := fs.GetGraph(1)
	if err != nil {
		t.Fatal(err)
	}
	if graph.Root != "/Home" {
		t.Errorf("root = %q", graph.Root)
	}
	if len(graph.Nodes) == 0 || len(graph.Edges) == 0 {
		t.Errorf("graph is empty: %d nodes, %d edges", len(graph.Nodes), len(graph.Edges))
	}

	if _, err := fs.GetGraph(42); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestFileStore_MissingFiles(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "nope.yaml"), filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := fs.Study(); err == nil {
		t.Error("expected error for missing study file")
	}
}

func TestFileStore_Reload(t *testing.T) {
	fs := newTestFileStore(t)
	if _, err := fs.Study(); err != nil {
		t.Fatal(err)
	}

	extra := storeResultsCSV + "p3,completed,100,1,true,false,false,20,Home/Products/Electronics,5\n"
	if err := os.WriteFile(fs.resultsPath, []byte(extra), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fs.Reload(); err != nil {
		t.Fatal(err)
	}

	resp, err := fs.Study()
	if err != nil {
		t.Fatal(err)
	}
	if resp.Overview.TotalParticipants != 3 {
		t.Errorf("participants after reload = %d, want 3", resp.Overview.TotalParticipants)
	}
}
