package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/risk"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Build the weighted risk dashboard",
		Long:  "Combine value-at-risk, UTXO health, and fee pressure into one weighted overall risk score with a narrative summary.",
		RunE:  runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig(cmd)
	if err != nil {
		return err
	}

	agg, err := risk.NewAggregator(cfg, nil)
	if err != nil {
		return err
	}

	wallet, market, err := buildProvider(cmd).Snapshots()
	if err != nil {
		return err
	}

	dash, err := agg.BuildDashboard(wallet, market)
	if err != nil {
		return err
	}

	log.Info().
		Float64("overall_risk", dash.OverallRisk).
		Str("category", dash.Category).
		Msg("dashboard built")
	return emit(cmd, dash)
}
