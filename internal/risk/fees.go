package risk

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/coldwatch/walletrisk/internal/models"
)

// Mempool congestion thresholds (transaction counts).
const (
	congestedMempool = 15000
	surchargeMempool = 20000
)

// urgencyPlan pairs a confirmation deadline with a fee multiplier.
type urgencyPlan struct {
	maxWaitBlocks int
	feeMultiplier float64
}

// urgencyPlans is the fixed urgency table. Recommendations are monotone:
// fees never increase as urgency decreases on a fixed fee schedule.
var urgencyPlans = map[models.UrgencyLevel]urgencyPlan{
	models.UrgencyVeryHigh: {maxWaitBlocks: 1, feeMultiplier: 1.1},
	models.UrgencyHigh:     {maxWaitBlocks: 3, feeMultiplier: 1.0},
	models.UrgencyMedium:   {maxWaitBlocks: 6, feeMultiplier: 1.0},
	models.UrgencyLow:      {maxWaitBlocks: 12, feeMultiplier: 0.9},
	models.UrgencyVeryLow:  {maxWaitBlocks: 24, feeMultiplier: 0.8},
}

// FeeRecommendation is the optimizer's output for one urgency level.
type FeeRecommendation struct {
	Urgency             models.UrgencyLevel `json:"urgency"`
	Tier                string              `json:"tier"` // fastest | half_hour | hour | economy
	BaseRate            float64             `json:"base_rate_sat_vb"`
	RecommendedRate     int                 `json:"recommended_rate_sat_vb"`
	EstimatedWait       string              `json:"estimated_wait_minutes"`
	MempoolStatus       string              `json:"mempool_status"`        // "congested" | "normal"
	FeeMarketVolatility string              `json:"fee_market_volatility"` // "high" | "normal"
	CongestionSurcharge bool                `json:"congestion_surcharge"`
	Advisory            string              `json:"advisory,omitempty"`
}

// FeeOptimizer recommends a fee rate given urgency and mempool congestion.
// Stateless.
type FeeOptimizer struct{}

func NewFeeOptimizer() *FeeOptimizer {
	return &FeeOptimizer{}
}

// Recommend picks a fee tier from the urgency deadline, applies the urgency
// multiplier and, under a congested mempool at high urgency, a further 1.2x
// surcharge. Both multiplications round up to the next whole sat/vB.
func (o *FeeOptimizer) Recommend(urgency string, market models.MarketSnapshot) *FeeRecommendation {
	level := models.NormalizeUrgency(urgency)
	plan := urgencyPlans[level]
	estimates := market.FeeEstimates
	mempool := market.NetworkStats.MempoolSize

	var tier string
	var rate float64
	var wait string
	switch {
	case plan.maxWaitBlocks <= 1:
		tier, rate, wait = "fastest", estimates.Fastest, "10-20"
	case plan.maxWaitBlocks <= 3:
		tier, rate, wait = "half_hour", estimates.HalfHour, "20-40"
	case plan.maxWaitBlocks <= 6:
		tier, rate, wait = "hour", estimates.Hour, "40-60"
	default:
		tier, rate, wait = "economy", estimates.Economy, "60-180"
	}

	recommended := math.Ceil(rate * plan.feeMultiplier)

	surcharge := false
	if mempool > surchargeMempool && (level == models.UrgencyVeryHigh || level == models.UrgencyHigh) {
		recommended = math.Ceil(recommended * 1.2)
		surcharge = true
	}

	status := "normal"
	if mempool > congestedMempool {
		status = "congested"
	}

	advisory := ""
	if level == models.UrgencyVeryLow && mempool > congestedMempool {
		advisory = "Mempool is congested; delay non-urgent transactions until it clears"
	}

	return &FeeRecommendation{
		Urgency:             level,
		Tier:                tier,
		BaseRate:            rate,
		RecommendedRate:     int(recommended),
		EstimatedWait:       wait,
		MempoolStatus:       status,
		FeeMarketVolatility: feeMarketVolatility(estimates),
		CongestionSurcharge: surcharge,
		Advisory:            advisory,
	}
}

// feeMarketVolatility compares the widest and tightest estimates. A zero
// minimum makes the ratio undefined; by policy that reads as "high" rather
// than rejecting the fee schedule.
func feeMarketVolatility(estimates models.FeeEstimates) string {
	rates := estimates.Rates()
	min, max := rates[0], rates[0]
	for _, r := range rates[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}
	if min == 0 {
		log.Warn().Msg("zero minimum fee estimate; treating fee market volatility as high")
		return "high"
	}
	if max/min > 10 {
		return "high"
	}
	return "normal"
}
