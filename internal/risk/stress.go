package risk

import (
	"github.com/coldwatch/walletrisk/internal/models"
)

// Representative transaction size used to price scenario exit costs.
const stressTxVBytes = 225

// Scenario is one named adverse market condition.
type Scenario struct {
	Name          string  `json:"name" yaml:"name"`
	PriceChange   float64 `json:"price_change" yaml:"price_change"` // fractional, can be negative
	FeeMultiplier float64 `json:"fee_multiplier" yaml:"fee_multiplier"`
	Description   string  `json:"description" yaml:"description"`
}

// DefaultScenarios are the three reference stress conditions.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "market_crash", PriceChange: -0.40, FeeMultiplier: 3, Description: "Sharp 40% price drop with fee pressure from panic exits"},
		{Name: "fee_spike", PriceChange: -0.05, FeeMultiplier: 10, Description: "Mempool flood drives fees 10x with mild price weakness"},
		{Name: "extended_bear", PriceChange: -0.70, FeeMultiplier: 0.5, Description: "Prolonged 70% drawdown with a quiet, cheap fee market"},
	}
}

// ScenarioResult is the portfolio and liquidity outcome of one scenario.
type ScenarioResult struct {
	Scenario          Scenario `json:"scenario"`
	NewPrice          float64  `json:"new_price_usd"`
	NewPortfolioValue float64  `json:"new_portfolio_value_usd"`
	ValueChangeUSD    float64  `json:"value_change_usd"`
	ExitFeeUSD        float64  `json:"exit_fee_usd"`
	ExitFeePctOfValue float64  `json:"exit_fee_pct_of_value"`
	LiquidityScore    float64  `json:"liquidity_score"`
	LiquidityCategory string   `json:"liquidity_category"` // "high" | "medium" | "low"
	Recommendations   []string `json:"recommendations"`
}

// StressTestResult covers every requested scenario plus the most severe one,
// judged by post-scenario portfolio value with first-occurrence tie-break.
type StressTestResult struct {
	Scenarios          []ScenarioResult `json:"scenarios"`
	MostSevereScenario string           `json:"most_severe_scenario"`
	BaselineValueUSD   float64          `json:"baseline_value_usd"`
}

// StressTester replays named adverse scenarios against the wallet. Stateless.
type StressTester struct {
	scenarios []Scenario
}

// NewStressTester runs the given scenarios, or the three reference scenarios
// when none are supplied.
func NewStressTester(scenarios []Scenario) *StressTester {
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}
	return &StressTester{scenarios: scenarios}
}

// Run evaluates every scenario against the snapshot pair.
func (s *StressTester) Run(wallet models.WalletSnapshot, market models.MarketSnapshot) *StressTestResult {
	baseline := wallet.Balance * market.CurrentPrice
	results := make([]ScenarioResult, 0, len(s.scenarios))

	severeIdx := 0
	for i, sc := range s.scenarios {
		r := s.evaluate(sc, wallet, market)
		results = append(results, r)
		if r.NewPortfolioValue < results[severeIdx].NewPortfolioValue {
			severeIdx = i
		}
	}

	return &StressTestResult{
		Scenarios:          results,
		MostSevereScenario: results[severeIdx].Scenario.Name,
		BaselineValueUSD:   baseline,
	}
}

func (s *StressTester) evaluate(sc Scenario, wallet models.WalletSnapshot, market models.MarketSnapshot) ScenarioResult {
	newPrice := market.CurrentPrice * (1 + sc.PriceChange)
	newValue := wallet.Balance * newPrice
	baseline := wallet.Balance * market.CurrentPrice

	// Exit cost: one representative transaction at the stressed hour rate,
	// converted at the post-scenario price.
	feeSats := market.FeeEstimates.Hour * stressTxVBytes * sc.FeeMultiplier
	feeUSD := feeSats / 1e8 * newPrice
	feePct := 0.0
	if newValue > 0 {
		feePct = feeUSD / newValue * 100
	}

	liquidity := 1.0
	switch {
	case sc.PriceChange < -0.3:
		liquidity -= 0.4
	case sc.PriceChange < -0.1:
		liquidity -= 0.2
	}
	switch {
	case sc.FeeMultiplier > 5:
		liquidity -= 0.4
	case sc.FeeMultiplier > 2:
		liquidity -= 0.2
	}
	liquidity = clamp01(liquidity)

	category := "low"
	switch {
	case liquidity > 0.7:
		category = "high"
	case liquidity > 0.4:
		category = "medium"
	}

	var recs []string
	if sc.PriceChange < -0.3 {
		recs = append(recs, "Consider hedging or staging exits before a deep drawdown materializes")
	}
	if sc.FeeMultiplier > 5 {
		recs = append(recs, "Consolidate UTXOs while fees are cheap to avoid paying spike rates")
	}
	if liquidity <= 0.4 {
		recs = append(recs, "Keep a liquid reserve outside the wallet for this scenario")
	}

	return ScenarioResult{
		Scenario:          sc,
		NewPrice:          newPrice,
		NewPortfolioValue: newValue,
		ValueChangeUSD:    newValue - baseline,
		ExitFeeUSD:        feeUSD,
		ExitFeePctOfValue: feePct,
		LiquidityScore:    liquidity,
		LiquidityCategory: category,
		Recommendations:   recs,
	}
}
