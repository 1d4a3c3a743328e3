package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpiface "github.com/coldwatch/walletrisk/internal/interfaces/http"
	"github.com/coldwatch/walletrisk/internal/risk"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the risk read-out over HTTP",
		Long:  "Expose dashboard, report, stress, fee, and counterparty endpoints plus Prometheus metrics for the configured snapshot source.",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "127.0.0.1:8087", "Listen address")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig(cmd)
	if err != nil {
		return err
	}

	agg, err := risk.NewAggregator(cfg, nil)
	if err != nil {
		return err
	}

	addr := mustString(cmd, "addr")
	server := httpiface.NewServer(addr, agg, buildProvider(cmd))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
