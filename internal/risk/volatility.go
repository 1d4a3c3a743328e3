package risk

import (
	"fmt"
	"math"

	"github.com/coldwatch/walletrisk/internal/models"
)

const annualizationFactor = 365

// VolatilityResult carries return-volatility metrics over the supplied
// price history.
type VolatilityResult struct {
	DailyVolatility      float64 `json:"daily_volatility"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	MaxDrawdown          float64 `json:"max_drawdown"`
	Assessment           string  `json:"assessment"` // "above-average" | "average"
	SampleSize           int     `json:"sample_size"`
}

// VolatilityAnalyzer derives realized volatility and drawdown from price
// history. Stateless; safe for concurrent use.
type VolatilityAnalyzer struct {
	threshold float64 // annualized volatility above this reads "above-average"
}

// NewVolatilityAnalyzer uses the given annualized-volatility threshold,
// falling back to the reference default of 0.8 when non-positive.
func NewVolatilityAnalyzer(threshold float64) *VolatilityAnalyzer {
	if threshold <= 0 {
		threshold = 0.8
	}
	return &VolatilityAnalyzer{threshold: threshold}
}

// Analyze computes daily and annualized return volatility and the maximum
// drawdown over the history. At least two price points are required.
func (a *VolatilityAnalyzer) Analyze(market models.MarketSnapshot) (*VolatilityResult, error) {
	history := market.PriceHistory
	if len(history) < 2 {
		return nil, fmt.Errorf("volatility: %w", ErrInsufficientData)
	}

	returns := dailyReturns(history)
	daily := sampleStdDev(returns)
	annualized := daily * math.Sqrt(annualizationFactor)

	peak := history[0].Price
	var maxDrawdown float64
	for _, p := range history {
		if p.Price > peak {
			peak = p.Price
		}
		if dd := (peak - p.Price) / peak; dd > maxDrawdown {
			maxDrawdown = dd
		}
	}

	assessment := "average"
	if annualized >= a.threshold {
		assessment = "above-average"
	}

	return &VolatilityResult{
		DailyVolatility:      daily,
		AnnualizedVolatility: annualized,
		MaxDrawdown:          maxDrawdown,
		Assessment:           assessment,
		SampleSize:           len(returns),
	}, nil
}
