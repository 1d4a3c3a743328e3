package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/coldwatch/walletrisk/internal/risk"
)

func newCounterpartyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counterparty <address>",
		Short: "Score the risk of sending to an address",
		Long:  "Look the address up in the wallet's address book and score it from transaction history and label.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCounterparty,
	}
}

func runCounterparty(cmd *cobra.Command, args []string) error {
	wallet, _, err := buildProvider(cmd).Snapshots()
	if err != nil {
		return err
	}

	result := risk.NewCounterpartyAssessor().Assess(args[0], wallet)
	log.Info().
		Str("address", result.Address).
		Float64("risk_score", result.RiskScore).
		Str("category", result.Category).
		Msg("counterparty assessed")
	return emit(cmd, result)
}
