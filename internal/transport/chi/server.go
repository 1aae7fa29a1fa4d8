package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/domain"
	"github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/metrics"
	advisoruc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/advisor"
	healthuc "github.com/data-blitz-demos/digikey-AgenticAI-demo/internal/usecase/health"
)

// Error codes exposed in error responses.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeUnauthorized       = "unauthorized"
	codeCatalogUnavailable = "catalog_unavailable"
	codeInternalError      = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the advisor API over chi.
type Server struct {
	advisor       *advisoruc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(advisor *advisoruc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		advisor: advisor,
		health:  health,
		logger:  logger,
	}
	// ErrMalformedQuery is deliberately absent: a malformed store query is an
	// internal invariant violation and falls through to 500.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/chat", s.Chat)
	r.Post("/api/search", s.DirectSearch)
	r.Get("/api/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Chat handles POST /api/chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.advisor.Chat(r.Context(), req.Message, req.Limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	if result.Outcome.Warning() != "" {
		metrics.ExtractionFallbacksTotal.Inc()
		s.logger.Warn("assistant extraction degraded, rule-based intent served")
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Mode:     string(result.Outcome.Mode()),
		Intent:   intentToDTO(result.Outcome.Intent()),
		Products: productsToDTO(result.Products),
		Answer:   result.Answer,
		Warning:  warningToDTO(result.Outcome.Warning()),
	})
}

// DirectSearch handles POST /api/search.
func (s *Server) DirectSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.advisor.DirectSearch(r.Context(), req.Query, req.Limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Source:   string(result.Outcome.Mode()),
		Query:    req.Query,
		Products: productsToDTO(result.Products),
		Warning:  warningToDTO(result.Outcome.Warning()),
	})
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
