package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldwatch/walletrisk/internal/models"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.95, cfg.ConfidenceLevel)
	assert.Equal(t, 30, cfg.HistoricalWindowDays)
	assert.Equal(t, models.ToleranceMedium, cfg.RiskTolerance)
	assert.Equal(t, 1.0, cfg.Weights.Sum())
	assert.Equal(t, 6, cfg.MinConfirmationsByRisk[models.ToleranceLow])
	assert.Equal(t, 3, cfg.MinConfirmationsByRisk[models.ToleranceMedium])
	assert.Equal(t, 1, cfg.MinConfirmationsByRisk[models.ToleranceHigh])
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"confidence zero", func(c *Config) { c.ConfidenceLevel = 0 }},
		{"confidence one", func(c *Config) { c.ConfidenceLevel = 1 }},
		{"confidence negative", func(c *Config) { c.ConfidenceLevel = -0.5 }},
		{"bad tolerance", func(c *Config) { c.RiskTolerance = "reckless" }},
		{"weights off", func(c *Config) { c.Weights.Fee = 0.4 }},
		{"negative min conf", func(c *Config) { c.MinConfirmationsByRisk[models.ToleranceLow] = -1 }},
		{"zero vol threshold", func(c *Config) { c.VolatilityThreshold = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ConfidenceSentinel(t *testing.T) {
	cfg := Default()
	cfg.ConfidenceLevel = 2
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfidenceLevel))
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.yaml")
	body := []byte("confidence_level: 0.99\nrisk_tolerance: low\nweights:\n  price: 0.6\n  utxo: 0.2\n  fee: 0.2\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.99, cfg.ConfidenceLevel)
	assert.Equal(t, models.ToleranceLow, cfg.RiskTolerance)
	assert.Equal(t, 0.6, cfg.Weights.Price)
	// Untouched fields keep their defaults.
	assert.Equal(t, 30, cfg.HistoricalWindowDays)
	assert.Equal(t, 0.8, cfg.VolatilityThreshold)
}

func TestLoad_RejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confidence_level: 3.0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfidenceLevel))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
