// Package http serves the engine's risk read-out as JSON. It is driver
// plumbing: snapshots come from a Provider, the engine stays pure.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/coldwatch/walletrisk/internal/risk"
	"github.com/coldwatch/walletrisk/internal/snapshot"
)

// Server exposes dashboard, report, stress, fee, and counterparty endpoints
// over one snapshot provider.
type Server struct {
	addr     string
	agg      *risk.Aggregator
	provider snapshot.Provider
	metrics  *MetricsRegistry
	srv      *http.Server
}

// NewServer wires the router. The provider is consulted on every request so
// a live adapter can serve fresh snapshots.
func NewServer(addr string, agg *risk.Aggregator, provider snapshot.Provider) *Server {
	s := &Server{
		addr:     addr,
		agg:      agg,
		provider: provider,
		metrics:  NewMetricsRegistry(),
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/risk/dashboard", s.handleDashboard).Methods(http.MethodGet)
	r.HandleFunc("/risk/report", s.handleReport).Methods(http.MethodGet)
	r.HandleFunc("/risk/stress", s.handleStress).Methods(http.MethodGet)
	r.HandleFunc("/risk/fees", s.handleFees).Methods(http.MethodGet)
	r.HandleFunc("/risk/counterparty/{address}", s.handleCounterparty).Methods(http.MethodGet)
	r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.Info().Str("addr", s.addr).Msg("risk read-out server listening")
	return s.srv.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Router returns the request handler, exported for tests.
func (s *Server) Router() http.Handler {
	return s.srv.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"engine": risk.EngineVersion,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	wallet, market, err := s.provider.Snapshots()
	if err != nil {
		s.fail(w, "dashboard", err)
		return
	}

	dash, err := s.agg.BuildDashboard(wallet, market)
	if err != nil {
		s.fail(w, "dashboard", err)
		return
	}

	s.metrics.Evaluations.WithLabelValues("dashboard", "ok").Inc()
	s.metrics.EvaluationTime.WithLabelValues("dashboard").Observe(time.Since(start).Seconds())
	s.metrics.ObserveDashboard(dash.OverallRisk, dash.Parts)
	s.writeJSON(w, http.StatusOK, dash)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	wallet, market, err := s.provider.Snapshots()
	if err != nil {
		s.fail(w, "report", err)
		return
	}

	rep, err := s.agg.BuildDetailedReport(wallet, market)
	if err != nil {
		s.fail(w, "report", err)
		return
	}

	s.metrics.Evaluations.WithLabelValues("report", "ok").Inc()
	s.metrics.EvaluationTime.WithLabelValues("report").Observe(time.Since(start).Seconds())
	s.metrics.ObserveDashboard(rep.Dashboard.OverallRisk, rep.Dashboard.Parts)
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleStress(w http.ResponseWriter, r *http.Request) {
	wallet, market, err := s.provider.Snapshots()
	if err != nil {
		s.fail(w, "stress", err)
		return
	}

	result := risk.NewStressTester(nil).Run(wallet, market)
	s.metrics.Evaluations.WithLabelValues("stress", "ok").Inc()
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleFees(w http.ResponseWriter, r *http.Request) {
	_, market, err := s.provider.Snapshots()
	if err != nil {
		s.fail(w, "fees", err)
		return
	}

	urgency := r.URL.Query().Get("urgency")
	rec := risk.NewFeeOptimizer().Recommend(urgency, market)
	s.metrics.Evaluations.WithLabelValues("fees", "ok").Inc()
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCounterparty(w http.ResponseWriter, r *http.Request) {
	wallet, _, err := s.provider.Snapshots()
	if err != nil {
		s.fail(w, "counterparty", err)
		return
	}

	address := mux.Vars(r)["address"]
	result := risk.NewCounterpartyAssessor().Assess(address, wallet)
	s.metrics.Evaluations.WithLabelValues("counterparty", "ok").Inc()
	s.writeJSON(w, http.StatusOK, result)
}

// fail maps engine errors to status codes: data-sufficiency problems mean
// the snapshot is unscorable, everything else is internal.
func (s *Server) fail(w http.ResponseWriter, endpoint string, err error) {
	s.metrics.Evaluations.WithLabelValues(endpoint, "error").Inc()
	log.Error().Err(err).Str("endpoint", endpoint).Msg("evaluation failed")

	status := http.StatusInternalServerError
	if errors.Is(err, risk.ErrInsufficientData) || errors.Is(err, risk.ErrEmptyUtxoSet) {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}
