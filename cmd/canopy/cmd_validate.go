package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/canopyux/canopy/internal/study"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate study and results files against their schemas",
		Long: `Validate study YAML files and results JSON files against their schemas.

Each argument is validated independently; the file extension decides
which schema applies. Exits with code 1 if any file fails validation.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				problems, err := validateOne(path)
				if err != nil {
					return err
				}
				if len(problems) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "ok    %s\n", path) //nolint:errcheck
					continue
				}
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s\n", path) //nolint:errcheck
				for _, p := range problems {
					fmt.Fprintf(cmd.OutOrStdout(), "      %s\n", p) //nolint:errcheck
				}
			}
			if failed > 0 {
				return &ValidationFailureError{
					Message: fmt.Sprintf("%d of %d file(s) failed validation", failed, len(args)),
				}
			}
			return nil
		},
	}
	return cmd
}

func validateOne(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return study.ValidateFile(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return study.ValidateResultsBytes(data), nil
	default:
		return nil, fmt.Errorf("cannot validate %s: want .yaml, .yml, or .json", path)
	}
}
