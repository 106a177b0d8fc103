package app

import (
	"fmt"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/server"
)

var serveFlagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scorer as a JSON HTTP API",
	Long: `Serve starts an HTTP server exposing the scorer:

  POST /api/v1/analyse   {"text": "...", "role": "...", "company": "..."}
  GET  /api/v1/roles     Role names with their keyword counts
  GET  /healthz          Liveness check
  GET  /metrics          Prometheus metrics

Every response carries an X-Request-Id header; send one to correlate logs.

Examples:
  lettergrade serve
  lettergrade serve --addr :9000 --log-json`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlagAddr, "addr", "", "Listen address (default: serve.addr from config, 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	addr := env.cfg.Serve.Addr
	if serveFlagAddr != "" {
		addr = serveFlagAddr
	}
	addr = server.Addr(addr)

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	srv := server.New(env.engine, server.Options{
		MaxInputChars: env.cfg.MaxInputChars,
		Version:       appVersion,
		Logger:        env.log,
	})

	fmt.Fprintf(cmd.OutOrStdout(), "lettergrade serving on %s\n", addr)
	return srv.Run(ctx, addr)
}
