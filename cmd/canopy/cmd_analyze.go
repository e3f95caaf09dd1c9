package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/canopyux/canopy/internal/analysis"
	"github.com/canopyux/canopy/internal/models"
	"github.com/canopyux/canopy/internal/reporting"
)

// analysisResult is the JSON document written by --output.
type analysisResult struct {
	Study    string                  `json:"study"`
	Overview models.OverviewStats    `json:"overview"`
	Tasks    []models.TaskStatistics `json:"tasks"`
}

func newAnalyzeCommand() *cobra.Command {
	var studyPath, resultsPath, outputPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute statistics for a study's results",
		Long: `Compute the full statistics bundle for a study: outcome classification,
success and directness rates with confidence margins, completion times,
destination breakdowns, and confidence ratings.

Prints a per-task summary table. Use --output to write the complete
analysis as JSON for downstream tooling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, participants, err := loadInputs(studyPath, resultsPath)
			if err != nil {
				return err
			}

			result, err := runAnalysis(st.Name, st.Tasks, participants, st.Tree)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d participants, %d task results\n", //nolint:errcheck
				result.Study, result.Overview.TotalParticipants, result.Overview.TotalResults)
			fmt.Fprintf(cmd.OutOrStdout(), "Overall score: %d (success %.0f%%, directness %.0f%%)\n\n", //nolint:errcheck
				result.Overview.OverallScore, result.Overview.SuccessRate, result.Overview.DirectnessRate)
			fmt.Fprintln(cmd.OutOrStdout(), reporting.TaskSummaryTable(result.Tasks)) //nolint:errcheck

			if outputPath != "" {
				if err := writeAnalysisJSON(outputPath, result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Analysis written to %s\n", outputPath) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&studyPath, "study", "s", "", "Path to the study YAML file")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Path to the results file (.csv or .json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write full analysis JSON to this file")

	return cmd
}

// runAnalysis computes the overview and all per-task bundles. Tasks are
// analyzed concurrently; each bundle is independent of the others.
func runAnalysis(name string, tasks []models.Task, participants []models.Participant, tree []models.TreeNode) (*analysisResult, error) {
	result := &analysisResult{
		Study:    name,
		Overview: analysis.ComputeOverview(participants),
		Tasks:    make([]models.TaskStatistics, len(tasks)),
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, task := range tasks {
		g.Go(func() error {
			result.Tasks[i] = analysis.ComputeTaskStatistics(task, participants, tree)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].TaskIndex < result.Tasks[j].TaskIndex
	})
	return result, nil
}

func writeAnalysisJSON(path string, result *analysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding analysis: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
