// Package snapshot supplies wallet and market state to the risk engine.
// The engine depends only on the snapshot types, never on where they came
// from: a fixture generator here, a live-node adapter in production.
package snapshot

import (
	"github.com/coldwatch/walletrisk/internal/models"
)

// Provider yields one wallet/market snapshot pair per call.
type Provider interface {
	Snapshots() (models.WalletSnapshot, models.MarketSnapshot, error)
}
