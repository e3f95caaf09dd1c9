package models

import "strings"

// Task is a single tree-test task: a scenario description plus one or more
// accepted destination paths.
type Task struct {
	ID string `json:"id" yaml:"id"`
	// Index is 1-based; TaskResult.TaskIndex refers back to it.
	Index       int    `json:"index" yaml:"index"`
	Description string `json:"description" yaml:"description"`
	// ExpectedAnswer is a comma-separated list of slash-delimited paths,
	// e.g. "Home/Products/Electronics, Home/Deals/Electronics". A task may
	// have more than one accepted destination.
	ExpectedAnswer string `json:"expected_answer" yaml:"expectedAnswer"`
}

// ExpectedAnswers splits the comma-separated answer list into individual
// path strings, trimmed, with empty entries dropped.
func (t Task) ExpectedAnswers() []string {
	if strings.TrimSpace(t.ExpectedAnswer) == "" {
		return nil
	}
	parts := strings.Split(t.ExpectedAnswer, ",")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			answers = append(answers, p)
		}
	}
	return answers
}

// TreeNode is one node of the study's information hierarchy.
type TreeNode struct {
	Name     string     `json:"name" yaml:"name"`
	Link     string     `json:"link,omitempty" yaml:"link,omitempty"`
	Children []TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}
