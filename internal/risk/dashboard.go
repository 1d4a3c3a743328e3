package risk

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/coldwatch/walletrisk/internal/config"
	"github.com/coldwatch/walletrisk/internal/models"
)

// EngineVersion is stamped into report metadata.
const EngineVersion = "v1.0.0"

// ReportMeta identifies one engine evaluation.
type ReportMeta struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Engine      string    `json:"engine"`
}

// Dashboard is the weighted composite risk view.
type Dashboard struct {
	OverallRisk     float64            `json:"overall_risk"`
	Category        string             `json:"category"` // "high" | "medium" | "low"
	Parts           map[string]float64 `json:"parts"`    // price, utxo, fee sub-risks in [0,1]
	Summary         string             `json:"summary"`
	Recommendations []string           `json:"recommendations"`
	VaR             *VaRResult         `json:"value_at_risk"`
	UtxoHealth      *UtxoHealthResult  `json:"utxo_health"`
	FeeOutlook      *FeeRecommendation `json:"fee_outlook"`
	Meta            ReportMeta         `json:"meta"`
}

// DetailedReport bundles the dashboard with volatility metrics and the full
// stress-test output.
type DetailedReport struct {
	Dashboard  *Dashboard        `json:"dashboard"`
	Volatility *VolatilityResult `json:"volatility"`
	StressTest *StressTestResult `json:"stress_test"`
	Meta       ReportMeta        `json:"meta"`
}

// Aggregator blends price, UTXO, and fee risk into one score. Sub-scorer
// failures abort the dashboard: a partial score with a silently substituted
// component would misstate overall risk, so the first error propagates.
type Aggregator struct {
	cfg        config.Config
	varCalc    *VaRCalculator
	utxo       *UtxoHealthAnalyzer
	fees       *FeeOptimizer
	volatility *VolatilityAnalyzer
	stress     *StressTester
}

// NewAggregator wires the sub-scorers from one validated configuration.
func NewAggregator(cfg config.Config, scenarios []Scenario) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	varCalc, err := NewVaRCalculator(cfg.ConfidenceLevel)
	if err != nil {
		return nil, err
	}
	return &Aggregator{
		cfg:        cfg,
		varCalc:    varCalc,
		utxo:       NewUtxoHealthAnalyzer(),
		fees:       NewFeeOptimizer(),
		volatility: NewVolatilityAnalyzer(cfg.VolatilityThreshold),
		stress:     NewStressTester(scenarios),
	}, nil
}

// BuildDashboard combines a one-day VaR, UTXO health, and mempool pressure
// under the configured weights.
func (a *Aggregator) BuildDashboard(wallet models.WalletSnapshot, market models.MarketSnapshot) (*Dashboard, error) {
	vr, err := a.varCalc.Calculate(wallet, market, 1)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	uh, err := a.utxo.Analyze(wallet)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	// Urgency very_low probes whether spending can wait out congestion; the
	// wait advisory only exists on that path.
	fee := a.fees.Recommend(string(models.UrgencyVeryLow), market)

	priceRisk := vr.ValueAtRiskPct * 10
	if priceRisk > 1 {
		priceRisk = 1
	}
	utxoRisk := 1 - uh.HealthScore
	feeRisk := 0.3
	if fee.MempoolStatus == "congested" {
		feeRisk = 0.7
	}

	w := a.cfg.Weights
	overall := w.Price*priceRisk + w.UTXO*utxoRisk + w.Fee*feeRisk

	category := "low"
	switch {
	case overall > 0.7:
		category = "high"
	case overall > 0.4:
		category = "medium"
	}

	summary := fmt.Sprintf("Overall risk is %s (%.2f).", category, overall)
	switch {
	case priceRisk > 0.6:
		summary += " Price risk is the dominant driver."
	case utxoRisk > 0.6:
		summary += " UTXO liquidity is the dominant driver."
	case feeRisk > 0.6:
		summary += " Fee market pressure is the dominant driver."
	}

	var recs []string
	if priceRisk > 0.5 {
		recs = append(recs, "Consider hedging a portion of the position against near-term price risk")
	}
	if utxoRisk > 0.5 {
		recs = append(recs, uh.Recommendations...)
	}
	if feeRisk > 0.5 && fee.Advisory != "" {
		recs = append(recs, fee.Advisory)
	}

	return &Dashboard{
		OverallRisk: overall,
		Category:    category,
		Parts: map[string]float64{
			"price": priceRisk,
			"utxo":  utxoRisk,
			"fee":   feeRisk,
		},
		Summary:         summary,
		Recommendations: recs,
		VaR:             vr,
		UtxoHealth:      uh,
		FeeOutlook:      fee,
		Meta:            newReportMeta(),
	}, nil
}

// BuildDetailedReport extends the dashboard with volatility metrics and the
// full stress-test output.
func (a *Aggregator) BuildDetailedReport(wallet models.WalletSnapshot, market models.MarketSnapshot) (*DetailedReport, error) {
	dash, err := a.BuildDashboard(wallet, market)
	if err != nil {
		return nil, err
	}
	vol, err := a.volatility.Analyze(market)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &DetailedReport{
		Dashboard:  dash,
		Volatility: vol,
		StressTest: a.stress.Run(wallet, market),
		Meta:       newReportMeta(),
	}, nil
}

func newReportMeta() ReportMeta {
	return ReportMeta{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Engine:      EngineVersion,
	}
}
