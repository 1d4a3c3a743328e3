package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/config"
	"github.com/coldwatch/walletrisk/internal/report"
	"github.com/coldwatch/walletrisk/internal/snapshot"
)

// loadEngineConfig reads --config, or returns validated defaults.
func loadEngineConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	log.Info().Str("path", path).Msg("loaded risk config")
	return cfg, nil
}

// buildProvider picks file snapshots when both paths are given, otherwise
// the seeded fixture.
func buildProvider(cmd *cobra.Command) snapshot.Provider {
	walletPath, _ := cmd.Flags().GetString("wallet")
	marketPath, _ := cmd.Flags().GetString("market")
	if walletPath != "" && marketPath != "" {
		return snapshot.FileProvider{WalletPath: walletPath, MarketPath: marketPath}
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	days, _ := cmd.Flags().GetInt("days")
	log.Info().Int64("seed", seed).Msg("using fixture snapshots")
	return snapshot.FixtureProvider{Seed: seed, Days: days}
}

// mustString reads a registered string flag.
func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// emit writes v to --out when set, stdout otherwise.
func emit(cmd *cobra.Command, v any) error {
	out, _ := cmd.Flags().GetString("out")
	if out != "" {
		if err := report.Save(out, v); err != nil {
			return err
		}
		log.Info().Str("path", out).Msg("report written")
		return nil
	}
	return report.Write(os.Stdout, v)
}
