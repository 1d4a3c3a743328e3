package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/risk"
	"github.com/coldwatch/walletrisk/internal/snapshot"
)

func newStressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run stress scenarios against the wallet",
		Long:  "Evaluate portfolio value and liquidity under named adverse scenarios and report the most severe outcome.",
		RunE:  runStress,
	}
	cmd.Flags().String("scenarios", "", "Stress scenarios YAML (built-in reference scenarios when empty)")
	return cmd
}

func runStress(cmd *cobra.Command, args []string) error {
	scenarios, err := snapshot.LoadScenarios(mustString(cmd, "scenarios"))
	if err != nil {
		return err
	}

	wallet, market, err := buildProvider(cmd).Snapshots()
	if err != nil {
		return err
	}

	result := risk.NewStressTester(scenarios).Run(wallet, market)
	log.Info().
		Int("scenarios", len(result.Scenarios)).
		Str("most_severe", result.MostSevereScenario).
		Msg("stress test complete")
	return emit(cmd, result)
}
