package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/risk"
)

func newFeeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Recommend a transaction fee rate",
		Long:  "Pick a fee tier from urgency and mempool congestion, with surcharge and wait advisories.",
		RunE:  runFee,
	}
	cmd.Flags().String("urgency", "medium", "Urgency level (very_high|high|medium|low|very_low)")
	return cmd
}

func runFee(cmd *cobra.Command, args []string) error {
	_, market, err := buildProvider(cmd).Snapshots()
	if err != nil {
		return err
	}

	urgency := mustString(cmd, "urgency")
	rec := risk.NewFeeOptimizer().Recommend(urgency, market)
	log.Info().
		Str("urgency", string(rec.Urgency)).
		Str("tier", rec.Tier).
		Int("sat_vb", rec.RecommendedRate).
		Msg("fee recommendation")
	return emit(cmd, rec)
}
