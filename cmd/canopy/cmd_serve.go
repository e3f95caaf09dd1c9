package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/canopyux/canopy/internal/projectconfig"
	"github.com/canopyux/canopy/internal/webapi"
	"github.com/canopyux/canopy/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var studyPath, resultsPath string
	var port int
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the study dashboard",
		Long: `Serve the study dashboard: an HTML report at / and a JSON API under
/api for custom frontends.

Endpoints:
  GET /api/health              Health check
  GET /api/study               Study overview
  GET /api/tasks               Per-task headline stats
  GET /api/tasks/{index}       Full statistics for one task
  GET /api/tasks/{index}/graph Navigation graph for one task

The port and browser behavior default from .canopy.yaml when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := projectconfig.Load(".")
			if err != nil {
				return err
			}
			if port == 0 {
				port = cfg.Server.Port
			}
			if !noBrowser && cfg.Server.NoBrowser != nil {
				noBrowser = *cfg.Server.NoBrowser
			}

			studyPath = resolveInputPath(studyPath, cfg.Paths.Studies, []string{".yaml", ".yml"})
			if studyPath == "" {
				return fmt.Errorf("no study file given and none found under %s (use --study)", cfg.Paths.Studies)
			}
			resultsPath = resolveInputPath(resultsPath, cfg.Paths.Results, []string{".csv", ".json"})
			if resultsPath == "" {
				return fmt.Errorf("no results file given and none found under %s (use --results)", cfg.Paths.Results)
			}

			store := webapi.NewFileStore(studyPath, resultsPath)
			srv, err := webserver.New(webserver.Config{
				Port:      port,
				Store:     store,
				NoBrowser: noBrowser,
				Logger:    slog.Default(),
			})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&studyPath, "study", "s", "", "Path to the study YAML file")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Path to the results file (.csv or .json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (defaults from .canopy.yaml)")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open a browser")

	return cmd
}
