package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/risk"
	"github.com/coldwatch/walletrisk/internal/snapshot"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the detailed risk report",
		Long:  "The dashboard plus volatility metrics and the full stress-test output, with generation timestamps.",
		RunE:  runReport,
	}
	cmd.Flags().String("scenarios", "", "Stress scenarios YAML (built-in reference scenarios when empty)")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig(cmd)
	if err != nil {
		return err
	}

	scenarios, err := snapshot.LoadScenarios(mustString(cmd, "scenarios"))
	if err != nil {
		return err
	}

	agg, err := risk.NewAggregator(cfg, scenarios)
	if err != nil {
		return err
	}

	wallet, market, err := buildProvider(cmd).Snapshots()
	if err != nil {
		return err
	}

	rep, err := agg.BuildDetailedReport(wallet, market)
	if err != nil {
		return err
	}

	log.Info().
		Str("report_id", rep.Meta.ID).
		Float64("overall_risk", rep.Dashboard.OverallRisk).
		Str("most_severe_scenario", rep.StressTest.MostSevereScenario).
		Msg("detailed report built")
	return emit(cmd, rep)
}
