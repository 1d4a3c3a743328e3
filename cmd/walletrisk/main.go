package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	appName = "walletrisk"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Banking-style risk metrics for a Bitcoin wallet position",
		Version: version,
		Long: `walletrisk computes a structured risk read-out for a single Bitcoin
wallet position from wallet and market snapshots: value-at-risk, UTXO
liquidity health, counterparty risk, fee strategy, stress scenarios, and a
weighted overall risk dashboard.

Snapshots come from JSON files (--wallet/--market) or, for offline use,
from a deterministic seeded fixture (--seed).`,
	}

	addSnapshotFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("config", "", "Path to risk config YAML (defaults apply when empty)")
	rootCmd.PersistentFlags().String("out", "", "Write JSON output to this file instead of stdout")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress informational logging")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newStressCmd())
	rootCmd.AddCommand(newFeeCmd())
	rootCmd.AddCommand(newCounterpartyCmd())
	rootCmd.AddCommand(newServeCmd())

	cobra.OnInitialize(func() {
		if quiet, _ := rootCmd.PersistentFlags().GetBool("quiet"); quiet {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// addSnapshotFlags registers the snapshot source flags shared by every
// command.
func addSnapshotFlags(flags *pflag.FlagSet) {
	flags.String("wallet", "", "Path to wallet snapshot JSON")
	flags.String("market", "", "Path to market snapshot JSON")
	flags.Int64("seed", 1, "Fixture seed used when no snapshot files are given")
	flags.Int("days", 30, "Fixture price history length in days")
}
