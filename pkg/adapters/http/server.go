// Package http exposes the sanitization pipeline over HTTP: one sanitize
// endpoint, run history when a run store is configured, liveness and
// prometheus metrics.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/datashield"
	"github.com/aretw0/datashield/pkg/config"
	"github.com/aretw0/datashield/pkg/domain"
	"github.com/aretw0/datashield/pkg/ports"
)

// Server handles sanitize requests. The run store is optional; without it
// run history endpoints return 404.
type Server struct {
	logger *slog.Logger
	runs   ports.RunStore
}

// Option configures the server.
type Option func(*Server)

// WithRunStore enables run history persistence.
func WithRunStore(runs ports.RunStore) Option {
	return func(s *Server) { s.runs = runs }
}

// NewHandler creates the HTTP handler for the sanitization service.
func NewHandler(logger *slog.Logger, opts ...Option) http.Handler {
	s := &Server{logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/v1/sanitize", s.handleSanitize)
	r.Get("/v1/runs", s.handleListRuns)
	r.Get("/v1/runs/{id}", s.handleGetRun)

	return enableCORS(r)
}

// SanitizeRequest is the sanitize endpoint's body. Config is a loose map
// so clients can send exactly the fields they care about.
type SanitizeRequest struct {
	Config map[string]any  `json:"config"`
	Model  json.RawMessage `json:"model"`
}

// SanitizeResponse carries the sanitized graph and the run feedback.
type SanitizeResponse struct {
	Model   *domain.Node     `json:"model"`
	Report  *domain.Report   `json:"report,omitempty"`
	Stats   domain.PassStats `json:"stats"`
	Message string           `json:"message"`
}

func (s *Server) handleSanitize(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req SanitizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	var cfg config.Config
	if err := mapstructure.Decode(req.Config, &cfg); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid config: %w", err))
		return
	}
	if err := cfg.Validate(); err != nil {
		s.finishRun(r, cfg, domain.RunFailed, err.Error(), nil, domain.PassStats{}, started)
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	var root domain.Node
	if err := json.Unmarshal(req.Model, &root); err != nil {
		s.fail(w, http.StatusUnprocessableEntity, fmt.Errorf("undecodable model: %w", err))
		return
	}

	result, err := datashield.Sanitize(&root, cfg, datashield.WithLogger(s.logger))
	if err != nil {
		s.finishRun(r, cfg, domain.RunFailed, err.Error(), nil, domain.PassStats{}, started)
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	if result.Report != nil {
		affectedTotal.WithLabelValues(result.Report.Category).
			Add(float64(len(result.Report.ObjectIDs)))
	}

	s.finishRun(r, cfg, domain.RunSucceeded, result.Message, result.Report, result.Stats, started)

	writeJSON(w, http.StatusOK, SanitizeResponse{
		Model:   &root,
		Report:  result.Report,
		Stats:   result.Stats,
		Message: result.Message,
	})
}

// finishRun settles the metrics for one pass, successful or not, and
// persists the run record when a store is configured.
func (s *Server) finishRun(r *http.Request, cfg config.Config, status, message string, report *domain.Report, stats domain.PassStats, started time.Time) {
	runsTotal.WithLabelValues(string(cfg.Mode), status).Inc()
	runDuration.Observe(time.Since(started).Seconds())

	if s.runs == nil {
		return
	}
	record := &domain.RunRecord{
		ID:         fmt.Sprintf("run-%d", started.UnixNano()),
		Mode:       string(cfg.Mode),
		Status:     status,
		Message:    message,
		Report:     report,
		Stats:      stats,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if err := s.runs.SaveRun(r.Context(), record); err != nil {
		s.logger.Warn("failed to persist run record", "run", record.ID, "err", err)
	}
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		http.NotFound(w, r)
		return
	}
	ids, err := s.runs.ListRuns(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": ids})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.runs == nil {
		http.NotFound(w, r)
		return
	}
	record, err := s.runs.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "status", status, "err", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
