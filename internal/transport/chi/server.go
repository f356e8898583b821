package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/newsrank/internal/domain"
	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/version"
	healthuc "github.com/kailas-cloud/newsrank/internal/usecase/health"
	rankuc "github.com/kailas-cloud/newsrank/internal/usecase/rank"
)

const defaultMaxBodyBytes = 5 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Ranker ranks articles.
type Ranker interface {
	Rank(ctx context.Context, articles []article.Article, interests string) (rankuc.Result, error)
}

// HealthReporter reports capabilities and backend health.
type HealthReporter interface {
	Check(ctx context.Context) healthuc.Report
}

// Server serves the ranking HTTP API.
type Server struct {
	ranker        Ranker
	health        HealthReporter
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(ranker Ranker, health HealthReporter, logger *zap.Logger) *Server {
	s := &Server{
		ranker:       ranker,
		health:       health,
		logger:       logger,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNoArticles, http.StatusBadRequest, codeNoArticles, false),
		sentinelHandler(domain.ErrInvalidArticle, http.StatusBadRequest, codeBadRequest, true),
		sentinelHandler(domain.ErrScoring, http.StatusInternalServerError, codeRankingFailed, true),
	}
	return s
}

// WithMaxBodyBytes limits the accepted request body size.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Routes registers the API handlers on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/rank", s.Rank)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// Rank handles POST /rank.
func (s *Server) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeBadRequest, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.ranker.Rank(r.Context(), req.Articles, req.Interests)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RankResponse{
		Ranked: res.Articles,
		Method: res.Method.String(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	resp := HealthResponse{
		Status:                string(report.Status),
		Method:                report.Method.String(),
		StatisticalAvailable:  report.Capabilities.StatisticalAvailable,
		ModelBackendAvailable: report.Capabilities.ModelBackendAvailable,
		ModelLoaded:           report.Capabilities.ModelLoaded(),
		Checks:                checks,
		Version:               version.Version,
	}
	if report.Capabilities.Model != nil {
		resp.Model = report.Capabilities.Model.Name
	}

	writeJSON(w, http.StatusOK, resp)
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
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler maps a sentinel to a status. detailed exposes the full error text.
func sentinelHandler(sentinel error, status int, code string, detailed bool) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		if detailed {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
