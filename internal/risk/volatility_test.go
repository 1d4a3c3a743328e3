package risk

import (
	"math"
	"testing"
	"time"

	"github.com/coldwatch/walletrisk/internal/models"
)

func pricePoints(prices ...float64) []models.PricePoint {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	pts := make([]models.PricePoint, len(prices))
	for i, p := range prices {
		pts[i] = models.PricePoint{Timestamp: base.AddDate(0, 0, i), Price: p, Volume: 1000}
	}
	return pts
}

func TestVolatility_ReferenceSeries(t *testing.T) {
	a := NewVolatilityAnalyzer(0.8)
	market := models.MarketSnapshot{PriceHistory: pricePoints(100, 90, 95, 80, 85), CurrentPrice: 85}

	result, err := a.Analyze(market)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SampleSize != 4 {
		t.Errorf("expected 4 returns, got %d", result.SampleSize)
	}

	// Peak runs 100, 100, 100, 100, 100; worst trough is 80.
	if math.Abs(result.MaxDrawdown-0.2) > 1e-9 {
		t.Errorf("expected max drawdown 0.200, got %.4f", result.MaxDrawdown)
	}

	if result.DailyVolatility <= 0 {
		t.Error("expected positive daily volatility")
	}

	expected := result.DailyVolatility * math.Sqrt(365)
	if math.Abs(result.AnnualizedVolatility-expected) > 1e-9 {
		t.Errorf("annualized volatility %.6f does not match daily x sqrt(365) = %.6f",
			result.AnnualizedVolatility, expected)
	}
}

func TestVolatility_Assessment(t *testing.T) {
	// Wild swings push annualized volatility far above the 0.8 threshold.
	a := NewVolatilityAnalyzer(0.8)
	market := models.MarketSnapshot{PriceHistory: pricePoints(100, 150, 75, 140, 70)}

	result, err := a.Analyze(market)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Assessment != "above-average" {
		t.Errorf("expected above-average assessment, got %s", result.Assessment)
	}

	// A flat series has zero volatility.
	flat, err := a.Analyze(models.MarketSnapshot{PriceHistory: pricePoints(100, 100, 100)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flat.DailyVolatility != 0 || flat.Assessment != "average" {
		t.Errorf("expected zero volatility and average assessment, got %.4f / %s",
			flat.DailyVolatility, flat.Assessment)
	}
}

func TestVolatility_MonotonePeakDrawdown(t *testing.T) {
	a := NewVolatilityAnalyzer(0.8)

	// Strictly rising prices never draw down.
	result, err := a.Analyze(models.MarketSnapshot{PriceHistory: pricePoints(50, 60, 70, 80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaxDrawdown != 0 {
		t.Errorf("expected zero drawdown on a rising series, got %.4f", result.MaxDrawdown)
	}
}

func TestVolatility_InsufficientData(t *testing.T) {
	a := NewVolatilityAnalyzer(0.8)

	for _, history := range [][]models.PricePoint{nil, pricePoints(100)} {
		if _, err := a.Analyze(models.MarketSnapshot{PriceHistory: history}); err == nil {
			t.Errorf("expected error for %d price points", len(history))
		}
	}
}

func TestVolatility_TwoPointsSingleReturn(t *testing.T) {
	// One return has no sample dispersion; volatility reads 0, not NaN.
	a := NewVolatilityAnalyzer(0.8)
	result, err := a.Analyze(models.MarketSnapshot{PriceHistory: pricePoints(100, 90)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DailyVolatility != 0 || math.IsNaN(result.AnnualizedVolatility) {
		t.Errorf("expected zero volatility for a single return, got %.4f", result.DailyVolatility)
	}
	if math.Abs(result.MaxDrawdown-0.1) > 1e-9 {
		t.Errorf("expected drawdown 0.100, got %.4f", result.MaxDrawdown)
	}
}
