package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canopyux/canopy/internal/navgraph"
)

// graphDocument is the JSON shape written by the graph command.
type graphDocument struct {
	Study     string           `json:"study"`
	TaskIndex int              `json:"task_index"`
	Root      string           `json:"root"`
	Nodes     []*navgraph.Node `json:"nodes"`
	Edges     []*navgraph.Edge `json:"edges"`
}

func newGraphCommand() *cobra.Command {
	var studyPath, resultsPath, outputPath string
	var taskIndex int

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the navigation graph for one task",
		Long: `Build the weighted navigation graph for one task: every node the
participants visited, how many stayed on an expected path at each step,
and the traversal counts along each edge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, participants, err := loadInputs(studyPath, resultsPath)
			if err != nil {
				return err
			}
			task, ok := st.TaskByIndex(taskIndex)
			if !ok {
				return fmt.Errorf("study has no task with index %d", taskIndex)
			}

			g := navgraph.Build(task, participants, st.Tree)
			doc := graphDocument{
				Study:     st.Name,
				TaskIndex: taskIndex,
				Root:      g.RootPath,
				Nodes:     g.Nodes(),
				Edges:     g.Edges(),
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding graph: %w", err)
			}
			data = append(data, '\n')

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data)) //nolint:errcheck
				return nil
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outputPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Graph written to %s\n", outputPath) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVarP(&studyPath, "study", "s", "", "Path to the study YAML file")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Path to the results file (.csv or .json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the graph JSON to this file instead of stdout")
	cmd.Flags().IntVarP(&taskIndex, "task", "t", 1, "Task index to build the graph for")

	return cmd
}
