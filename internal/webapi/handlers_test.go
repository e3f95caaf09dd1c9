package webapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canopyux/canopy/internal/models"
)

// mockStore implements StudyStore for testing.
type mockStore struct {
	study    *StudyResponse
	tasks    []TaskSummary
	details  map[int]*TaskDetail
	graphs   map[int]*GraphResponse
	storeErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		study: &StudyResponse{Name: "Store IA v2", TaskCount: 2},
		tasks: []TaskSummary{
			{TaskIndex: 1, Description: "Find a charger", Score: 77},
			{TaskIndex: 2, Description: "Track an order", Score: 64},
		},
		details: map[int]*TaskDetail{
			1: {
				TaskSummary: TaskSummary{TaskIndex: 1, Description: "Find a charger", Score: 77},
				Statistics:  models.TaskStatistics{TaskIndex: 1, Score: 77},
			},
		},
		graphs: map[int]*GraphResponse{
			1: {
				TaskIndex: 1,
				Root:      "/Home",
				Nodes:     []GraphNodeResponse{{Name: "Home", Path: "/Home", Total: 5}},
				Edges:     []GraphEdgeResponse{},
			},
		},
	}
}

func (m *mockStore) Study() (*StudyResponse, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	return m.study, nil
}

func (m *mockStore) ListTasks() ([]TaskSummary, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	return m.tasks, nil
}

func (m *mockStore) GetTask(index int) (*TaskDetail, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	d, ok := m.details[index]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return d, nil
}

func (m *mockStore) GetGraph(index int) (*GraphResponse, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	g, ok := m.graphs[index]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return g, nil
}

func newTestServer(store StudyStore) *httptest.Server {
	mux := http.NewServeMux()
	RegisterRoutes(mux, store)
	return httptest.NewServer(mux)
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(newMockStore())
	defer srv.Close()

	var health HealthResponse
	getJSON(t, srv.URL+"/api/health", http.StatusOK, &health)
	if health.Status != "ok" {
		t.Errorf("status = %q, want ok", health.Status)
	}
}

func TestHandleStudy(t *testing.T) {
	srv := newTestServer(newMockStore())
	defer srv.Close()

	var study StudyResponse
	getJSON(t, srv.URL+"/api/study", http.StatusOK, &study)
	if study.Name != "Store IA v2" || study.TaskCount != 2 {
		t.Errorf("unexpected study response: %+v", study)
	}
}

func TestHandleTasks(t *testing.T) {
	srv := newTestServer(newMockStore())
	defer srv.Close()

	var tasks []TaskSummary
	getJSON(t, srv.URL+"/api/tasks", http.StatusOK, &tasks)
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].TaskIndex != 1 || tasks[0].Score != 77 {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
}

func TestHandleTaskDetail(t *testing.T) {
	srv := newTestServer(newMockStore())
	defer srv.Close()

	var detail TaskDetail
	getJSON(t, srv.URL+"/api/tasks/1", http.StatusOK, &detail)
	if detail.Statistics.Score != 77 {
		t.Errorf("unexpected detail: %+v", detail)
	}

	getJSON(t, srv.URL+"/api/tasks/99", http.StatusNotFound, nil)
	getJSON(t, srv.URL+"/api/tasks/abc", http.StatusBadRequest, nil)
	getJSON(t, srv.URL+"/api/tasks/0", http.StatusBadRequest, nil)
}

func TestHandleTaskGraph(t *testing.T) {
	srv := newTestServer(newMockStore())
	defer srv.Close()

	var graph GraphResponse
	getJSON(t, srv.URL+"/api/tasks/1/graph", http.StatusOK, &graph)
	if graph.Root != "/Home" || len(graph.Nodes) != 1 {
		t.Errorf("unexpected graph: %+v", graph)
	}

	getJSON(t, srv.URL+"/api/tasks/99/graph", http.StatusNotFound, nil)
}

func TestStoreErrorsReturn500(t *testing.T) {
	store := newMockStore()
	store.storeErr = errors.New("disk fell over")
	srv := newTestServer(store)
	defer srv.Close()

	for _, path := range []string{"/api/study", "/api/tasks", "/api/tasks/1", "/api/tasks/1/graph"} {
		var errResp ErrorResponse
		getJSON(t, srv.URL+path, http.StatusInternalServerError, &errResp)
		if errResp.Error == "" {
			t.Errorf("%s: empty error message", path)
		}
	}
}

func TestCORSMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORSMiddleware(inner, "http://localhost:5173")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allowed origin header = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected CORS header %q for disallowed origin", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS status = %d, want 204", rec.Code)
	}
}
