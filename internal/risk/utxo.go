package risk

import (
	"fmt"

	"github.com/coldwatch/walletrisk/internal/models"
)

// UTXO-set health thresholds.
const (
	settledConfirmations = 6
	largeUtxoBTC         = 0.1
	dustUtxoBTC          = 0.01
)

// UtxoHealthResult scores the liquidity shape of the unspent-output set.
// FragmentationScore is a penalty: higher means more fragmented.
type UtxoHealthResult struct {
	HealthScore        float64  `json:"health_score"`
	Category           string   `json:"category"` // "good" | "average" | "poor"
	FragmentationScore float64  `json:"fragmentation_score"`
	ConfirmationScore  float64  `json:"confirmation_score"`
	SizeScore          float64  `json:"size_distribution_score"`
	UtxoCount          int      `json:"utxo_count"`
	SettledCount       int      `json:"settled_count"` // confirmations >= 6
	TotalValueBTC      float64  `json:"total_value_btc"`
	Recommendations    []string `json:"recommendations"`
}

// UtxoHealthAnalyzer scores fragmentation, confirmation depth, and size
// spread of a wallet's UTXO set. Stateless.
type UtxoHealthAnalyzer struct{}

func NewUtxoHealthAnalyzer() *UtxoHealthAnalyzer {
	return &UtxoHealthAnalyzer{}
}

// Analyze returns the three sub-scores and their mean. An empty UTXO set
// cannot be scored and is rejected.
func (a *UtxoHealthAnalyzer) Analyze(wallet models.WalletSnapshot) (*UtxoHealthResult, error) {
	utxos := wallet.UTXOs
	if len(utxos) == 0 {
		return nil, fmt.Errorf("utxo health: %w", ErrEmptyUtxoSet)
	}

	var fragmentation float64
	switch {
	case len(utxos) > 10:
		fragmentation = 0.7
	case len(utxos) > 5:
		fragmentation = 0.3
	}

	minConf := utxos[0].Confirmations
	settled := 0
	total := 0.0
	hasLarge, hasSmall := false, false
	for _, u := range utxos {
		if u.Confirmations < minConf {
			minConf = u.Confirmations
		}
		if u.Confirmations >= settledConfirmations {
			settled++
		}
		if u.Amount > largeUtxoBTC {
			hasLarge = true
		}
		if u.Amount < dustUtxoBTC {
			hasSmall = true
		}
		total += u.Amount
	}

	var confirmation float64
	switch {
	case minConf >= settledConfirmations:
		confirmation = 1.0
	case minConf >= 1:
		confirmation = 0.5
	}

	var size float64
	switch {
	case hasLarge && hasSmall:
		size = 1.0
	case hasLarge:
		size = 0.7
	}

	health := (fragmentation + confirmation + size) / 3

	category := "poor"
	switch {
	case health > 0.7:
		category = "good"
	case health > 0.4:
		category = "average"
	}

	var recs []string
	if fragmentation > 0.5 {
		recs = append(recs, "Consolidate small UTXOs to reduce fragmentation and future fee cost")
	}
	if confirmation < 0.7 {
		recs = append(recs, "Wait for more confirmations before relying on recent outputs")
	}
	if size < 0.5 {
		recs = append(recs, "Create larger UTXOs to improve spendable liquidity")
	}

	return &UtxoHealthResult{
		HealthScore:        health,
		Category:           category,
		FragmentationScore: fragmentation,
		ConfirmationScore:  confirmation,
		SizeScore:          size,
		UtxoCount:          len(utxos),
		SettledCount:       settled,
		TotalValueBTC:      total,
		Recommendations:    recs,
	}, nil
}
