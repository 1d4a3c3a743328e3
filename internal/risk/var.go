package risk

import (
	"fmt"
	"math"
	"sort"

	"github.com/coldwatch/walletrisk/internal/config"
	"github.com/coldwatch/walletrisk/internal/models"
)

// VaRResult is a historical-simulation value-at-risk estimate.
type VaRResult struct {
	ConfidenceLevel float64 `json:"confidence_level"`
	TimeframeDays   float64 `json:"timeframe_days"`
	ValueAtRiskPct  float64 `json:"value_at_risk_pct"` // horizon-scaled loss fraction
	ValueAtRiskUSD  float64 `json:"value_at_risk_usd"`
	ValueAtRiskBTC  float64 `json:"value_at_risk_btc"`
	PortfolioValue  float64 `json:"portfolio_value_usd"`
	RiskLevel       string  `json:"risk_level"` // "high" | "medium" | "low"
	Narrative       string  `json:"narrative"`
	SampleSize      int     `json:"sample_size"`
}

// VaRCalculator estimates the loss percentile of the empirical return
// distribution. No distributional assumption is made: the loss at the
// requested confidence is read directly off the sorted historical returns.
type VaRCalculator struct {
	confidence float64
}

// NewVaRCalculator validates and captures the confidence level from
// configuration. Confidence outside (0,1) is rejected here, before any
// index arithmetic can run out of bounds.
func NewVaRCalculator(confidence float64) (*VaRCalculator, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("%w: got %.4f", config.ErrInvalidConfidenceLevel, confidence)
	}
	return &VaRCalculator{confidence: confidence}, nil
}

// Calculate derives VaR over timeframeDays for the wallet's full balance.
// Horizon scaling uses the square-root-of-time rule.
func (c *VaRCalculator) Calculate(wallet models.WalletSnapshot, market models.MarketSnapshot, timeframeDays float64) (*VaRResult, error) {
	if len(market.PriceHistory) < 2 {
		return nil, fmt.Errorf("var: %w", ErrInsufficientData)
	}
	if timeframeDays <= 0 {
		timeframeDays = 1
	}

	returns := dailyReturns(market.PriceHistory)
	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted) // worst loss first

	n := len(sorted)
	k := int(math.Floor(float64(n) * (1 - c.confidence)))
	if k > n-1 {
		k = n - 1
	}

	varPct := math.Abs(sorted[k])
	scaled := varPct * math.Sqrt(timeframeDays)

	portfolioValue := wallet.Balance * market.CurrentPrice
	varUSD := portfolioValue * scaled
	varBTC := wallet.Balance * scaled

	level := "low"
	switch {
	case scaled > 0.10:
		level = "high"
	case scaled > 0.05:
		level = "medium"
	}

	narrative := fmt.Sprintf(
		"At %.0f%% confidence the portfolio is not expected to lose more than %.2f%% ($%.2f) over %.0f day(s); historical risk level: %s.",
		c.confidence*100, scaled*100, varUSD, timeframeDays, level)

	return &VaRResult{
		ConfidenceLevel: c.confidence,
		TimeframeDays:   timeframeDays,
		ValueAtRiskPct:  scaled,
		ValueAtRiskUSD:  varUSD,
		ValueAtRiskBTC:  varBTC,
		PortfolioValue:  portfolioValue,
		RiskLevel:       level,
		Narrative:       narrative,
		SampleSize:      n,
	}, nil
}
