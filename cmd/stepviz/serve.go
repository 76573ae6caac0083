package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/internal/server"
)

const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Stream algorithm runs over HTTP",
	Long: `Starts an HTTP server that streams snapshots as NDJSON:

  GET  /api/algorithms
  GET  /api/sort/{algorithm}?values=5,3,1&speed=2
  GET  /api/search/{algorithm}?values=...&target=7
  POST /api/pathfind/{algorithm}   text grid body, or empty with ?maze=
  POST /api/graph/{algorithm}      JSON nodes/edges or kind/size, start, end
  GET  /healthz
  GET  /metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("listen") {
			env.cfg.Listen, _ = cmd.Flags().GetString("listen")
			if err := env.cfg.Validate(); err != nil {
				return err
			}
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		srv := &http.Server{
			Addr:              env.cfg.Listen,
			Handler:           server.New(env.cfg, server.WithLogger(env.logger), server.WithRegistry(reg)).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			env.logger.Info("listening", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return err
		case <-cmd.Context().Done():
			env.logger.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				env.logger.Warn("graceful shutdown incomplete", "error", err)
				return srv.Close()
			}
			if err := <-serverErrors; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "address to listen on")
}
