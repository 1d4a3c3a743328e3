package models

// AddressLabel is a closed set of counterparty kinds. Risk adjustments key off
// the label through lookup tables, never string comparisons at scoring sites.
type AddressLabel string

const (
	LabelSavings  AddressLabel = "savings"
	LabelExchange AddressLabel = "exchange"
	LabelMerchant AddressLabel = "merchant"
	LabelPersonal AddressLabel = "personal"
	LabelUnknown  AddressLabel = "unknown"
)

// ParseAddressLabel normalizes free-form label text into the closed set.
// Unrecognized labels map to LabelUnknown rather than failing.
func ParseAddressLabel(s string) AddressLabel {
	switch AddressLabel(s) {
	case LabelSavings, LabelExchange, LabelMerchant, LabelPersonal:
		return AddressLabel(s)
	default:
		return LabelUnknown
	}
}

// UrgencyLevel expresses how quickly a transaction must confirm.
type UrgencyLevel string

const (
	UrgencyVeryHigh UrgencyLevel = "very_high"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
	UrgencyVeryLow  UrgencyLevel = "very_low"
)

// NormalizeUrgency maps unrecognized urgency values to UrgencyMedium.
// Bad input here is advisory, not an error.
func NormalizeUrgency(s string) UrgencyLevel {
	switch UrgencyLevel(s) {
	case UrgencyVeryHigh, UrgencyHigh, UrgencyMedium, UrgencyLow, UrgencyVeryLow:
		return UrgencyLevel(s)
	default:
		return UrgencyMedium
	}
}

// RiskTolerance is the caller's appetite setting from configuration.
type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

// Valid reports whether t is one of the three recognized tolerance levels.
func (t RiskTolerance) Valid() bool {
	return t == ToleranceLow || t == ToleranceMedium || t == ToleranceHigh
}
