// Package wizard runs the interactive form behind "canopy new" and renders
// the resulting study.yaml scaffold.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// StudySpec holds all fields collected during the interactive wizard.
type StudySpec struct {
	Name      string
	RootLabel string
	// Sections are the first-level nodes under the root. Deeper levels are
	// edited into the YAML by hand afterwards.
	Sections       []string
	TaskText       string
	ExpectedAnswer string
}

const studyYAMLTemplate = `name: {{ .Name }}
tree:
  - name: {{ .RootLabel }}
{{- if .Sections }}
    children:
{{- range .Sections }}
      - name: {{ . }}
{{- end }}
{{- end }}
tasks:
  - description: {{ .TaskText }}
    expectedAnswer: {{ .ExpectedAnswer }}
`

// RunStudyWizard runs an interactive huh form to collect study metadata.
// If initialName is non-empty, it pre-populates the name field.
func RunStudyWizard(in io.Reader, out io.Writer, initialName string) (*StudySpec, error) {
	var (
		name        = initialName
		rootLabel   = "Home"
		sectionsRaw string
		taskText    string
		answer      string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Study name").
				Description("Shown on the report and the dashboard").
				Placeholder("Store IA v2").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("study name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Root label").
				Description("Name of the tree's root node").
				Value(&rootLabel),
			huh.NewInput().
				Title("First-level sections").
				Description("Comma-separated top-level sections of the tree").
				Placeholder("Products, Support, About").
				Value(&sectionsRaw),
			huh.NewInput().
				Title("First task").
				Description("The scenario shown to participants").
				Placeholder("You need a charger for your laptop. Where would you look?").
				Value(&taskText).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task description is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Expected answer").
				Description("Slash-delimited path to the correct node").
				Placeholder("Home/Products/Electronics").
				Value(&answer).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("expected answer is required")
					}
					return nil
				}),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return &StudySpec{
		Name:           strings.TrimSpace(name),
		RootLabel:      strings.TrimSpace(rootLabel),
		Sections:       splitAndTrim(sectionsRaw),
		TaskText:       strings.TrimSpace(taskText),
		ExpectedAnswer: strings.TrimSpace(answer),
	}, nil
}

// GenerateStudyYAML renders a study.yaml scaffold from the given spec.
func GenerateStudyYAML(spec *StudySpec) (string, error) {
	tmpl, err := template.New("study").Parse(studyYAMLTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
