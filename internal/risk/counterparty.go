package risk

import (
	"github.com/coldwatch/walletrisk/internal/models"
)

// labelAdjustments discounts risk by counterparty kind. Self-custody savings
// addresses are inherently lower-risk; exchanges earn a smaller discount over
// unknown addresses. Labels absent from the table carry no adjustment.
var labelAdjustments = map[models.AddressLabel]float64{
	models.LabelSavings:  0.3,
	models.LabelExchange: 0.1,
}

// historyTiers discounts risk by prior transaction count. Exactly one tier
// applies, the first whose threshold is exceeded.
var historyTiers = []struct {
	minTxCount int
	discount   float64
}{
	{10, 0.4},
	{5, 0.3},
	{2, 0.2},
	{-1, 0.1},
}

// CounterpartyResult is a per-address risk profile.
type CounterpartyResult struct {
	Address        string  `json:"address"`
	Known          bool    `json:"known"`
	RiskScore      float64 `json:"risk_score"`
	Category       string  `json:"category"` // "low" | "moderate" | "elevated"
	Rationale      string  `json:"rationale"`
	Recommendation string  `json:"recommendation"`
}

// CounterpartyAssessor scores a target address against the wallet's address
// book. Stateless.
type CounterpartyAssessor struct{}

func NewCounterpartyAssessor() *CounterpartyAssessor {
	return &CounterpartyAssessor{}
}

// Assess looks up the address by exact match (first match wins) and applies
// history and label discounts. Unknown addresses get a fixed elevated profile.
func (a *CounterpartyAssessor) Assess(address string, wallet models.WalletSnapshot) *CounterpartyResult {
	var entry *models.AddressBookEntry
	for i := range wallet.AddressBook {
		if wallet.AddressBook[i].Address == address {
			entry = &wallet.AddressBook[i]
			break
		}
	}

	if entry == nil {
		return &CounterpartyResult{
			Address:        address,
			Known:          false,
			RiskScore:      0.7,
			Category:       "elevated",
			Rationale:      "no prior history",
			Recommendation: recommendationFor("elevated"),
		}
	}

	score := 1.0
	for _, tier := range historyTiers {
		if entry.TransactionCount > tier.minTxCount {
			score -= tier.discount
			break
		}
	}
	score -= labelAdjustments[entry.Label]
	score = clamp01(score)

	category := "elevated"
	switch {
	case score < 0.3:
		category = "low"
	case score < 0.6:
		category = "moderate"
	}

	return &CounterpartyResult{
		Address:        address,
		Known:          true,
		RiskScore:      score,
		Category:       category,
		Rationale:      "scored from address-book history and label",
		Recommendation: recommendationFor(category),
	}
}

func recommendationFor(category string) string {
	switch category {
	case "low":
		return "Established counterparty; standard checks apply"
	case "moderate":
		return "Verify the address out-of-band before sending large amounts"
	default:
		return "Send a small test transaction first and confirm receipt"
	}
}
