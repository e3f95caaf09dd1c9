package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/canopyux/canopy/internal/projectconfig"
	"github.com/canopyux/canopy/internal/wizard"
)

func newNewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <study-name>",
		Short: "Scaffold a new study",
		Long: `Create a new study YAML file under the configured studies directory.

When running in a terminal (TTY), launches an interactive wizard that
collects the study name, tree sections, and the first task. In
non-interactive environments (CI, pipes), a default scaffold is written
for editing by hand.`,
		Args: cobra.ExactArgs(1),
		RunE: newCommandE,
	}
	return cmd
}

func newCommandE(cmd *cobra.Command, args []string) error {
	studyName := args[0]
	if err := validateStudyName(studyName); err != nil {
		return err
	}

	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	var content string
	// Check TTY from the command's input stream, not os.Stdin directly.
	inReader := cmd.InOrStdin()
	isTTY := false
	if f, ok := inReader.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	if isTTY {
		spec, err := wizard.RunStudyWizard(cmd.InOrStdin(), cmd.OutOrStdout(), studyName)
		if err != nil {
			return err
		}
		content, err = wizard.GenerateStudyYAML(spec)
		if err != nil {
			return err
		}
	} else {
		content = defaultStudyYAML(studyName, cfg.Analysis.RootLabel)
	}

	if err := os.MkdirAll(cfg.Paths.Studies, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Paths.Studies, err)
	}
	path := filepath.Join(cfg.Paths.Studies, studyName+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path) //nolint:errcheck
	return nil
}

// validateStudyName rejects names with path-traversal characters or empty names.
func validateStudyName(name string) error {
	if name == "" {
		return fmt.Errorf("study name must not be empty")
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.Contains(cleaned, "/") || strings.Contains(cleaned, "\\") {
		return fmt.Errorf("study name %q contains invalid path characters", name)
	}
	return nil
}

func defaultStudyYAML(name, rootLabel string) string {
	return fmt.Sprintf(`name: %s
tree:
  - name: %s
    children:
      - name: Section A
      - name: Section B
tasks:
  - description: Describe the first scenario participants should attempt
    expectedAnswer: %s/Section A
`, name, rootLabel, rootLabel)
}
