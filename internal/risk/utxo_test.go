package risk

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwatch/walletrisk/internal/models"
)

func makeUtxos(count, confirmations int, amount float64) []models.UTXO {
	utxos := make([]models.UTXO, count)
	for i := range utxos {
		utxos[i] = models.UTXO{
			TxID:          fmt.Sprintf("tx%03d", i),
			OutputIndex:   0,
			Amount:        amount,
			Confirmations: confirmations,
			AgeDays:       float64(confirmations) / 144,
		}
	}
	return utxos
}

func TestUtxoHealth_ReferenceSet(t *testing.T) {
	// 12 UTXOs, min confirmations 8, amounts spanning 0.005 to 0.3.
	utxos := makeUtxos(12, 8, 0.05)
	utxos[0].Amount = 0.3
	utxos[1].Amount = 0.005

	result, err := NewUtxoHealthAnalyzer().Analyze(models.WalletSnapshot{UTXOs: utxos})
	require.NoError(t, err)

	assert.InDelta(t, 0.7, result.FragmentationScore, 1e-9)
	assert.InDelta(t, 1.0, result.ConfirmationScore, 1e-9)
	assert.InDelta(t, 1.0, result.SizeScore, 1e-9)
	assert.InDelta(t, 0.9, result.HealthScore, 1e-9)
	assert.Equal(t, "good", result.Category)
	assert.Equal(t, 12, result.UtxoCount)
	assert.Equal(t, 12, result.SettledCount)
}

func TestUtxoHealth_ConfirmationScoreBounds(t *testing.T) {
	a := NewUtxoHealthAnalyzer()

	// Any set with minimum confirmations >= 6 scores 1.0.
	for _, conf := range []int{6, 7, 100} {
		result, err := a.Analyze(models.WalletSnapshot{UTXOs: makeUtxos(3, conf, 0.05)})
		require.NoError(t, err)
		assert.Equal(t, 1.0, result.ConfirmationScore, "confirmations=%d", conf)
	}

	// An all-zero-confirmation set scores 0.
	result, err := a.Analyze(models.WalletSnapshot{UTXOs: makeUtxos(3, 0, 0.05)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.ConfirmationScore)

	// One unconfirmed output drags the whole set down: min rules.
	utxos := makeUtxos(4, 50, 0.05)
	utxos[2].Confirmations = 0
	result, err = a.Analyze(models.WalletSnapshot{UTXOs: utxos})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.ConfirmationScore)
	assert.Equal(t, 3, result.SettledCount)
}

func TestUtxoHealth_FragmentationTiers(t *testing.T) {
	a := NewUtxoHealthAnalyzer()

	cases := []struct {
		count    int
		expected float64
	}{
		{1, 0}, {5, 0}, {6, 0.3}, {10, 0.3}, {11, 0.7}, {40, 0.7},
	}
	for _, tc := range cases {
		result, err := a.Analyze(models.WalletSnapshot{UTXOs: makeUtxos(tc.count, 10, 0.05)})
		require.NoError(t, err)
		assert.InDelta(t, tc.expected, result.FragmentationScore, 1e-9, "count=%d", tc.count)
	}
}

func TestUtxoHealth_SizeDistribution(t *testing.T) {
	a := NewUtxoHealthAnalyzer()

	// Only mid-sized outputs: no spread credit at all.
	result, err := a.Analyze(models.WalletSnapshot{UTXOs: makeUtxos(3, 10, 0.05)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.SizeScore)

	// A large output alone earns partial credit.
	result, err = a.Analyze(models.WalletSnapshot{UTXOs: makeUtxos(3, 10, 0.5)})
	require.NoError(t, err)
	assert.InDelta(t, 0.7, result.SizeScore, 1e-9)
}

func TestUtxoHealth_Recommendations(t *testing.T) {
	// Fragmented, unconfirmed, badly sized: all three recommendations fire.
	result, err := NewUtxoHealthAnalyzer().Analyze(models.WalletSnapshot{UTXOs: makeUtxos(15, 0, 0.05)})
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 3)
	assert.Equal(t, "poor", result.Category)
}

func TestUtxoHealth_EmptySet(t *testing.T) {
	_, err := NewUtxoHealthAnalyzer().Analyze(models.WalletSnapshot{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyUtxoSet))
}
