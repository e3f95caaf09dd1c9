package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/canopyux/canopy/internal/dataset"
	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/projectconfig"
	"github.com/canopyux/canopy/internal/study"
)

// resolveInputPath fills an unset path with the first file under the
// configured directory that has one of the given extensions.
func resolveInputPath(path, configDir string, exts []string) string {
	if path != "" {
		return path
	}
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range exts {
			if filepath.Ext(e.Name()) == ext {
				return filepath.Join(configDir, e.Name())
			}
		}
	}
	return ""
}

// loadInputs loads the study and its results. Unset paths fall back to the
// first matching file under the project's configured directories.
func loadInputs(studyPath, resultsPath string) (*study.Study, []models.Participant, error) {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return nil, nil, err
	}

	studyPath = resolveInputPath(studyPath, cfg.Paths.Studies, []string{".yaml", ".yml"})
	if studyPath == "" {
		return nil, nil, fmt.Errorf("no study file given and none found under %s (use --study)", cfg.Paths.Studies)
	}
	resultsPath = resolveInputPath(resultsPath, cfg.Paths.Results, []string{".csv", ".json"})
	if resultsPath == "" {
		return nil, nil, fmt.Errorf("no results file given and none found under %s (use --results)", cfg.Paths.Results)
	}

	slog.Debug("loading inputs", "study", studyPath, "results", resultsPath)

	st, err := study.Load(studyPath)
	if err != nil {
		return nil, nil, err
	}
	participants, err := dataset.LoadResults(resultsPath)
	if err != nil {
		return nil, nil, err
	}
	if len(st.Tasks) == 0 {
		return nil, nil, fmt.Errorf("study %s defines no tasks", studyPath)
	}
	return st, participants, nil
}
