package risk

import "errors"

var (
	// ErrInsufficientData is returned when fewer than two price points are
	// available for volatility or VaR estimation.
	ErrInsufficientData = errors.New("insufficient price history: need at least 2 points")

	// ErrEmptyUtxoSet is returned when there are no UTXOs to score.
	ErrEmptyUtxoSet = errors.New("empty UTXO set")
)
