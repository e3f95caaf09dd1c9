// Package projectconfig provides the ProjectConfig struct and loader for
// .canopy.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file searched for by Load.
const ConfigFileName = ".canopy.yaml"

// Default values for project configuration. These are the single source of
// truth; New() references them and no other code should duplicate them.
const (
	DefaultStudiesDir = "studies/"
	DefaultResultsDir = "results/"
	DefaultReportsDir = "reports/"

	DefaultServerPort = 3000

	DefaultRootLabel = "Home"
)

// PathsConfig holds directory paths for studies, results, and reports.
type PathsConfig struct {
	Studies string `yaml:"studies,omitempty"`
	Results string `yaml:"results,omitempty"`
	Reports string `yaml:"reports,omitempty"`
}

// ServerConfig holds dashboard server settings.
type ServerConfig struct {
	Port      int   `yaml:"port,omitempty"`
	NoBrowser *bool `yaml:"no_browser,omitempty"`
}

// AnalysisConfig holds analysis defaults.
type AnalysisConfig struct {
	// RootLabel names the graph root when a study has no tree structure.
	RootLabel string `yaml:"root_label,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .canopy.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Studies: DefaultStudiesDir,
			Results: DefaultResultsDir,
			Reports: DefaultReportsDir,
		},
		Server: ServerConfig{
			Port:      DefaultServerPort,
			NoBrowser: boolPtr(false),
		},
		Analysis: AnalysisConfig{
			RootLabel: DefaultRootLabel,
		},
	}
}

// Load finds .canopy.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults. If no config
// file is found, returns defaults with a nil error. Real I/O errors (e.g.
// permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .canopy.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Studies != "" {
		dst.Paths.Studies = src.Paths.Studies
	}
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}
	if src.Paths.Reports != "" {
		dst.Paths.Reports = src.Paths.Reports
	}
	if src.Server.Port != 0 {
		dst.Server.Port = src.Server.Port
	}
	if src.Server.NoBrowser != nil {
		dst.Server.NoBrowser = src.Server.NoBrowser
	}
	if src.Analysis.RootLabel != "" {
		dst.Analysis.RootLabel = src.Analysis.RootLabel
	}
}

func boolPtr(b bool) *bool { return &b }
