package risk

import (
	"math"

	"github.com/coldwatch/walletrisk/internal/models"
)

// dailyReturns computes simple returns between consecutive price points,
// oldest first. len(history) points yield len(history)-1 returns.
func dailyReturns(history []models.PricePoint) []float64 {
	if len(history) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Price
		returns = append(returns, (history[i].Price-prev)/prev)
	}
	return returns
}

// sampleStdDev is the n-1 standard deviation. A single observation has no
// measurable dispersion and yields 0.
func sampleStdDev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(n)

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// clamp01 pins v to the closed interval [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
