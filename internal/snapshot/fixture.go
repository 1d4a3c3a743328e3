package snapshot

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/coldwatch/walletrisk/internal/models"
)

// FixtureProvider generates a plausible offline snapshot pair from a seed.
// The same seed always yields the same snapshots.
type FixtureProvider struct {
	Seed int64
	Days int // price history length; 30 when zero
}

// Snapshots builds a synthetic wallet and market.
func (p FixtureProvider) Snapshots() (models.WalletSnapshot, models.MarketSnapshot, error) {
	days := p.Days
	if days <= 0 {
		days = 30
	}
	rng := rand.New(rand.NewSource(p.Seed))
	now := time.Now().UTC().Truncate(24 * time.Hour)

	// Random walk around a 60k price with ~3% daily moves.
	history := make([]models.PricePoint, 0, days)
	price := 60000.0
	for i := 0; i < days; i++ {
		price *= 1 + (rng.Float64()-0.5)*0.06
		history = append(history, models.PricePoint{
			Timestamp: now.AddDate(0, 0, i-days+1),
			Price:     price,
			Volume:    20e9 * (0.5 + rng.Float64()),
		})
	}
	current := history[len(history)-1].Price

	utxoCount := 4 + rng.Intn(10)
	utxos := make([]models.UTXO, 0, utxoCount)
	balance := 0.0
	for i := 0; i < utxoCount; i++ {
		amount := 0.002 + rng.Float64()*0.4
		balance += amount
		utxos = append(utxos, models.UTXO{
			TxID:          fmt.Sprintf("%016x", rng.Uint64()),
			OutputIndex:   uint32(rng.Intn(3)),
			Amount:        amount,
			Confirmations: rng.Intn(2000),
			AgeDays:       rng.Float64() * 400,
		})
	}

	history2 := make([]models.Transaction, 0, 8)
	for i := 0; i < 8; i++ {
		amount := (rng.Float64() - 0.4) * 0.5
		history2 = append(history2, models.Transaction{
			TxID:      fmt.Sprintf("%016x", rng.Uint64()),
			Timestamp: now.AddDate(0, 0, -rng.Intn(90)),
			Amount:    amount,
			Fee:       0.00002 + rng.Float64()*0.0002,
		})
	}

	wallet := models.WalletSnapshot{
		Balance:            balance,
		UTXOs:              utxos,
		TransactionHistory: history2,
		AddressBook: []models.AddressBookEntry{
			{Address: "bc1qcoldvault0", Label: models.LabelSavings, TransactionCount: 14},
			{Address: "bc1qexchhot1", Label: models.LabelExchange, TransactionCount: 7},
			{Address: "bc1qfriendpay2", Label: models.LabelPersonal, TransactionCount: 3},
			{Address: "bc1qshopfront3", Label: models.LabelMerchant, TransactionCount: 1},
		},
	}

	base := 4 + rng.Float64()*20
	market := models.MarketSnapshot{
		PriceHistory: history,
		CurrentPrice: current,
		FeeEstimates: models.FeeEstimates{
			Fastest:  base * 5,
			HalfHour: base * 3,
			Hour:     base * 2,
			Economy:  base,
			Minimum:  1,
		},
		NetworkStats: models.NetworkStats{
			MempoolSize:        2000 + rng.Intn(28000),
			Hashrate:           6e20 * (0.9 + rng.Float64()*0.2),
			Difficulty:         9e13 * (0.9 + rng.Float64()*0.2),
			UnconfirmedTxCount: 1000 + rng.Intn(20000),
		},
	}

	return wallet, market, nil
}
