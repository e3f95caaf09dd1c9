package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canopyux/canopy/internal/reporting"
)

func newExportCommand() *cobra.Command {
	var studyPath, resultsPath, outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full analysis as a tar.gz archive",
		Long: `Export the study's analysis as a gzipped tarball containing the
markdown report, a per-task CSV, and the raw analysis JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, participants, err := loadInputs(studyPath, resultsPath)
			if err != nil {
				return err
			}
			result, err := runAnalysis(st.Name, st.Tasks, participants, st.Tree)
			if err != nil {
				return err
			}

			report := reporting.FormatMarkdown(st.Name, st.Tasks, result.Overview, result.Tasks)
			analysisJSON, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding analysis: %w", err)
			}

			if err := reporting.ExportBundle(outputPath, report, result.Tasks, analysisJSON); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Export written to %s\n", outputPath) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVarP(&studyPath, "study", "s", "", "Path to the study YAML file")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Path to the results file (.csv or .json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "canopy-export.tar.gz", "Archive path to write")

	return cmd
}
