package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureProvider_Deterministic(t *testing.T) {
	first, firstMarket, err := FixtureProvider{Seed: 42}.Snapshots()
	require.NoError(t, err)
	second, secondMarket, err := FixtureProvider{Seed: 42}.Snapshots()
	require.NoError(t, err)

	assert.Equal(t, first.Balance, second.Balance)
	assert.Equal(t, first.UTXOs, second.UTXOs)
	assert.Equal(t, firstMarket.CurrentPrice, secondMarket.CurrentPrice)

	other, _, err := FixtureProvider{Seed: 43}.Snapshots()
	require.NoError(t, err)
	assert.NotEqual(t, first.Balance, other.Balance)
}

func TestFixtureProvider_WellFormed(t *testing.T) {
	wallet, market, err := FixtureProvider{Seed: 7, Days: 45}.Snapshots()
	require.NoError(t, err)

	require.Len(t, market.PriceHistory, 45)
	for _, pt := range market.PriceHistory {
		assert.Greater(t, pt.Price, 0.0)
	}
	assert.Equal(t, market.PriceHistory[44].Price, market.CurrentPrice)

	assert.NotEmpty(t, wallet.UTXOs)
	total := 0.0
	for _, u := range wallet.UTXOs {
		assert.GreaterOrEqual(t, u.Amount, 0.0)
		assert.GreaterOrEqual(t, u.Confirmations, 0)
		total += u.Amount
	}
	assert.InDelta(t, total, wallet.Balance, 1e-9)
	assert.NotEmpty(t, wallet.AddressBook)
	assert.NotEmpty(t, wallet.TransactionHistory)
}

func TestFileProvider_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	wallet, market, err := FixtureProvider{Seed: 9}.Snapshots()
	require.NoError(t, err)

	walletPath := filepath.Join(dir, "wallet.json")
	marketPath := filepath.Join(dir, "market.json")
	writeJSON(t, walletPath, wallet)
	writeJSON(t, marketPath, market)

	gotWallet, gotMarket, err := FileProvider{WalletPath: walletPath, MarketPath: marketPath}.Snapshots()
	require.NoError(t, err)
	assert.Equal(t, wallet.Balance, gotWallet.Balance)
	assert.Equal(t, len(wallet.UTXOs), len(gotWallet.UTXOs))
	assert.Equal(t, market.CurrentPrice, gotMarket.CurrentPrice)
}

func TestFileProvider_RejectsBadData(t *testing.T) {
	dir := t.TempDir()
	wallet, market, err := FixtureProvider{Seed: 9}.Snapshots()
	require.NoError(t, err)

	market.PriceHistory[0].Price = -5
	walletPath := filepath.Join(dir, "wallet.json")
	marketPath := filepath.Join(dir, "market.json")
	writeJSON(t, walletPath, wallet)
	writeJSON(t, marketPath, market)

	_, _, err = FileProvider{WalletPath: walletPath, MarketPath: marketPath}.Snapshots()
	assert.Error(t, err)
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, _, err := FileProvider{WalletPath: "missing.json", MarketPath: "missing.json"}.Snapshots()
	assert.Error(t, err)
}

func TestLoadScenarios(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	body := "scenarios:\n" +
		"  - name: flash_crash\n    price_change: -0.25\n    fee_multiplier: 4\n    description: rapid deleveraging\n" +
		"  - name: halving_rally\n    price_change: 0.3\n    fee_multiplier: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "flash_crash", scenarios[0].Name)
	assert.Equal(t, -0.25, scenarios[0].PriceChange)

	// Empty path means "use built-ins".
	scenarios, err = LoadScenarios("")
	require.NoError(t, err)
	assert.Nil(t, scenarios)
}

func TestLoadScenarios_RejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: []\n"), 0o644))
	_, err := LoadScenarios(path)
	assert.Error(t, err)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

var _ Provider = FixtureProvider{}
var _ Provider = FileProvider{}
