package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coldwatch/walletrisk/internal/models"
)

// ErrInvalidConfidenceLevel is returned when confidence_level falls outside
// the open interval (0, 1).
var ErrInvalidConfidenceLevel = errors.New("confidence level must be in (0, 1)")

// RiskWeights are the dashboard blend weights. They must sum to 1.0.
type RiskWeights struct {
	Price float64 `yaml:"price"` // weight of VaR-derived price risk
	UTXO  float64 `yaml:"utxo"`  // weight of UTXO health risk
	Fee   float64 `yaml:"fee"`   // weight of mempool/fee risk
}

// Sum returns the total weight mass.
func (w RiskWeights) Sum() float64 {
	return w.Price + w.UTXO + w.Fee
}

// Config is the engine configuration. It is an explicit immutable value
// passed into every engine call; there is no process-wide default state.
type Config struct {
	ConfidenceLevel      float64              `yaml:"confidence_level"`       // VaR confidence, in (0,1)
	HistoricalWindowDays int                  `yaml:"historical_window_days"` // informational; full history is used
	RiskTolerance        models.RiskTolerance `yaml:"risk_tolerance"`

	// MinConfirmationsByRisk maps tolerance to the minimum confirmations
	// required before treating funds as settled. Informational for future
	// gating logic; not consumed by the scorers.
	MinConfirmationsByRisk map[models.RiskTolerance]int `yaml:"min_confirmations_by_risk"`

	// VolatilityThreshold is the annualized volatility above which the
	// volatility assessment reads "above-average".
	VolatilityThreshold float64 `yaml:"volatility_threshold"`

	Weights RiskWeights `yaml:"weights"`
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		ConfidenceLevel:      0.95,
		HistoricalWindowDays: 30,
		RiskTolerance:        models.ToleranceMedium,
		MinConfirmationsByRisk: map[models.RiskTolerance]int{
			models.ToleranceLow:    6,
			models.ToleranceMedium: 3,
			models.ToleranceHigh:   1,
		},
		VolatilityThreshold: 0.8,
		Weights:             RiskWeights{Price: 0.5, UTXO: 0.3, Fee: 0.2},
	}
}

// Validate rejects configurations that the scorers cannot safely consume.
func (c Config) Validate() error {
	if c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1 {
		return fmt.Errorf("%w: got %.4f", ErrInvalidConfidenceLevel, c.ConfidenceLevel)
	}
	if !c.RiskTolerance.Valid() {
		return fmt.Errorf("unknown risk tolerance %q", c.RiskTolerance)
	}
	if c.VolatilityThreshold <= 0 {
		return fmt.Errorf("volatility threshold must be positive, got %.4f", c.VolatilityThreshold)
	}
	if math.Abs(c.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("risk weights must sum to 1.0, got %.6f", c.Weights.Sum())
	}
	for tol, min := range c.MinConfirmationsByRisk {
		if !tol.Valid() {
			return fmt.Errorf("unknown risk tolerance %q in min_confirmations_by_risk", tol)
		}
		if min < 0 {
			return fmt.Errorf("min confirmations for %s must be non-negative, got %d", tol, min)
		}
	}
	return nil
}

// Load reads a Config from a YAML file. Absent fields keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read risk config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse risk config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid risk config %s: %w", path, err)
	}
	return cfg, nil
}
