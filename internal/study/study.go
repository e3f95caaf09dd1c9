// Package study loads and validates study definition files: the task list,
// expected answers, and the tree structure participants navigated.
package study

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/canopyux/canopy/internal/models"
)

// Study is one tree test's configuration. The participant results that go
// with it are loaded separately (see internal/dataset).
type Study struct {
	Name  string            `yaml:"name" json:"name"`
	Tree  []models.TreeNode `yaml:"tree,omitempty" json:"tree,omitempty"`
	Tasks []models.Task     `yaml:"tasks" json:"tasks"`
}

// Load reads a study YAML file. Task indexes are assigned from file order
// when the file leaves them unset; an explicit index wins so studies can be
// reordered without renumbering results.
func Load(path string) (*Study, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("study: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes study YAML bytes.
func Parse(data []byte) (*Study, error) {
	var s Study
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("study: parsing yaml: %w", err)
	}
	for i := range s.Tasks {
		if s.Tasks[i].Index == 0 {
			s.Tasks[i].Index = i + 1
		}
		if s.Tasks[i].ID == "" {
			s.Tasks[i].ID = fmt.Sprintf("task-%d", s.Tasks[i].Index)
		}
	}
	return &s, nil
}

// TaskByIndex returns the task with the given 1-based index.
func (s *Study) TaskByIndex(index int) (models.Task, bool) {
	for _, t := range s.Tasks {
		if t.Index == index {
			return t, true
		}
	}
	return models.Task{}, false
}
