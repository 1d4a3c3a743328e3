package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds the Prometheus metrics exported by the read-out
// server.
type MetricsRegistry struct {
	registry *prometheus.Registry

	Evaluations    *prometheus.CounterVec
	EvaluationTime *prometheus.HistogramVec
	OverallRisk    prometheus.Gauge
	RiskParts      *prometheus.GaugeVec
}

// NewMetricsRegistry creates and registers all walletrisk metrics on a
// dedicated registry.
func NewMetricsRegistry() *MetricsRegistry {
	m := &MetricsRegistry{
		registry: prometheus.NewRegistry(),

		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletrisk_evaluations_total",
				Help: "Total engine evaluations by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),

		EvaluationTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletrisk_evaluation_duration_seconds",
				Help:    "Engine evaluation duration in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"endpoint"},
		),

		OverallRisk: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "walletrisk_overall_risk",
				Help: "Most recent overall risk score (0.0 to 1.0)",
			},
		),

		RiskParts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "walletrisk_risk_part",
				Help: "Most recent sub-risk scores by component",
			},
			[]string{"component"},
		),
	}

	m.registry.MustRegister(m.Evaluations, m.EvaluationTime, m.OverallRisk, m.RiskParts)
	return m
}

// Handler exposes the registry in Prometheus text format.
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveDashboard records the latest composite score.
func (m *MetricsRegistry) ObserveDashboard(overall float64, parts map[string]float64) {
	m.OverallRisk.Set(overall)
	for component, value := range parts {
		m.RiskParts.WithLabelValues(component).Set(value)
	}
}
