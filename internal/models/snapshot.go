package models

import "time"

// UTXO is one unspent transaction output. Multiple UTXOs may share a TxID
// as long as their output index differs.
type UTXO struct {
	TxID          string  `json:"txid"`
	OutputIndex   uint32  `json:"output_index"`
	Amount        float64 `json:"amount"` // BTC
	Confirmations int     `json:"confirmations"`
	AgeDays       float64 `json:"age_days"`
}

// Transaction is one historical wallet transaction. It is carried on the
// snapshot for future extension; no scorer consumes it today.
type Transaction struct {
	TxID      string    `json:"txid"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"` // signed, BTC
	Fee       float64   `json:"fee"`    // BTC
}

// AddressBookEntry is a known counterparty. Address is unique per entry.
type AddressBookEntry struct {
	Address          string       `json:"address"`
	Label            AddressLabel `json:"label"`
	TransactionCount int          `json:"transaction_count"`
}

// WalletSnapshot is an immutable point-in-time view of wallet state.
// Scorers never mutate it.
type WalletSnapshot struct {
	Balance            float64            `json:"balance"` // BTC
	UTXOs              []UTXO             `json:"utxos"`
	TransactionHistory []Transaction      `json:"transaction_history"`
	AddressBook        []AddressBookEntry `json:"address_book"`
}

// PricePoint is one observation in a price history, oldest first.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"` // USD, > 0
	Volume    float64   `json:"volume"`
}

// FeeEstimates maps confirmation targets to fee rates in sat/vB.
type FeeEstimates struct {
	Fastest  float64 `json:"fastest"`
	HalfHour float64 `json:"half_hour"`
	Hour     float64 `json:"hour"`
	Economy  float64 `json:"economy"`
	Minimum  float64 `json:"minimum"`
}

// Rates returns the estimates as an ordered tier list, fastest first.
func (f FeeEstimates) Rates() []float64 {
	return []float64{f.Fastest, f.HalfHour, f.Hour, f.Economy, f.Minimum}
}

// NetworkStats is a snapshot of network-level conditions. Only MempoolSize
// feeds the scoring paths; the rest is carried for display.
type NetworkStats struct {
	MempoolSize        int     `json:"mempool_size"`
	Hashrate           float64 `json:"hashrate"`
	Difficulty         float64 `json:"difficulty"`
	UnconfirmedTxCount int     `json:"unconfirmed_tx_count"`
}

// MarketSnapshot is an immutable point-in-time view of market state.
type MarketSnapshot struct {
	PriceHistory []PricePoint `json:"price_history"`
	CurrentPrice float64      `json:"current_price"`
	FeeEstimates FeeEstimates `json:"fee_estimates"`
	NetworkStats NetworkStats `json:"network_stats"`
}
