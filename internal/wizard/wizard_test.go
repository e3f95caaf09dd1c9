package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopyux/canopy/internal/study"
)

func TestGenerateStudyYAML(t *testing.T) {
	spec := &StudySpec{
		Name:           "Store IA v2",
		RootLabel:      "Home",
		Sections:       []string{"Products", "Support"},
		TaskText:       "Find a laptop charger",
		ExpectedAnswer: "Home/Products/Electronics",
	}

	result, err := GenerateStudyYAML(spec)
	require.NoError(t, err)

	assert.Contains(t, result, "name: Store IA v2")
	assert.Contains(t, result, "- name: Home")
	assert.Contains(t, result, "- name: Products")
	assert.Contains(t, result, "- name: Support")
	assert.Contains(t, result, "description: Find a laptop charger")
	assert.Contains(t, result, "expectedAnswer: Home/Products/Electronics")
}

func TestGenerateStudyYAML_ParsesAsStudy(t *testing.T) {
	spec := &StudySpec{
		Name:           "Intranet",
		RootLabel:      "Intranet",
		Sections:       []string{"HR", "IT"},
		TaskText:       "Request a new laptop",
		ExpectedAnswer: "Intranet/IT/Hardware",
	}

	result, err := GenerateStudyYAML(spec)
	require.NoError(t, err)

	s, err := study.Parse([]byte(result))
	require.NoError(t, err)
	assert.Equal(t, "Intranet", s.Name)
	require.Len(t, s.Tree, 1)
	assert.Len(t, s.Tree[0].Children, 2)
	require.Len(t, s.Tasks, 1)
	assert.Equal(t, 1, s.Tasks[0].Index)
	assert.Equal(t, "Intranet/IT/Hardware", s.Tasks[0].ExpectedAnswer)
}

func TestGenerateStudyYAML_NoSections(t *testing.T) {
	spec := &StudySpec{
		Name:           "Minimal",
		RootLabel:      "Home",
		TaskText:       "Do the thing",
		ExpectedAnswer: "Home/Thing",
	}

	result, err := GenerateStudyYAML(spec)
	require.NoError(t, err)
	assert.NotContains(t, result, "children:")

	_, err = study.Parse([]byte(result))
	require.NoError(t, err)
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "hello", []string{"hello"}},
		{"multiple", "a, b, c", []string{"a", "b", "c"}},
		{"with blanks", "a,, b, ,c", []string{"a", "b", "c"}},
		{"whitespace only", "  ,  ,  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
