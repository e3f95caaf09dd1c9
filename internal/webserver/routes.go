package webserver

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/reporting"
	"github.com/canopyux/canopy/internal/webapi"
)

// registerRoutes sets up the API and the HTML report page on the given mux.
func registerRoutes(mux *http.ServeMux, cfg Config) {
	webapi.RegisterRoutes(mux, cfg.Store)
	mux.HandleFunc("GET /{$}", reportHandler(cfg.Store))
}

// reportHandler renders the markdown study report as an HTML page. The
// report is rebuilt per request so a store reload shows up immediately.
func reportHandler(store webapi.StudyStore) http.HandlerFunc {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))

	return func(w http.ResponseWriter, _ *http.Request) {
		study, err := store.Study()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		tasks, taskStats, err := collectTaskData(store)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		report := reporting.FormatMarkdown(study.Name, tasks, study.Overview, taskStats)

		var body bytes.Buffer
		if err := md.Convert([]byte(report), &body); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, pageTemplate, study.Name, body.String()) //nolint:errcheck
	}
}

func collectTaskData(store webapi.StudyStore) ([]models.Task, []models.TaskStatistics, error) {
	summaries, err := store.ListTasks()
	if err != nil {
		return nil, nil, err
	}

	tasks := make([]models.Task, 0, len(summaries))
	taskStats := make([]models.TaskStatistics, 0, len(summaries))
	for _, s := range summaries {
		detail, err := store.GetTask(s.TaskIndex)
		if err != nil {
			return nil, nil, err
		}
		tasks = append(tasks, models.Task{
			Index:          s.TaskIndex,
			Description:    s.Description,
			ExpectedAnswer: s.ExpectedAnswer,
		})
		taskStats = append(taskStats, detail.Statistics)
	}
	return tasks, taskStats, nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 56rem; margin: 2rem auto; padding: 0 1rem; font-family: system-ui, sans-serif; line-height: 1.5; color: #1a1a2e; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #cbd5e1; padding: 0.3rem 0.7rem; text-align: left; }
th { background: #f1f5f9; }
h2 { border-bottom: 1px solid #e2e8f0; padding-bottom: 0.3rem; margin-top: 2.5rem; }
</style>
</head>
<body>
%s
</body>
</html>
`
