package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/canopyux/canopy/internal/reporting"
)

func newReportCommand() *cobra.Command {
	var studyPath, resultsPath, outputPath string
	var html bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the full study report",
		Long: `Render the full study report as markdown: the study overview followed
by one section per task with outcome tables, destinations, first-click
behavior, and confidence ratings.

Use --html to render HTML instead of markdown.`,
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
			out := []byte(report)
			if html {
				out, err = renderHTML(report)
				if err != nil {
					return err
				}
			}

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(out)) //nolint:errcheck
				return nil
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVarP(&studyPath, "study", "s", "", "Path to the study YAML file")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Path to the results file (.csv or .json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&html, "html", false, "Render HTML instead of markdown")

	return cmd
}

func renderHTML(markdown string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}
