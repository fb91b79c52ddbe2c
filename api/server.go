// Package api - Thin HTTP layer over the suggestion engine
// The API only decodes requests, calls the engine and encodes responses.
// It never prices anything itself.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"margin-suggest/core/engine"
	"margin-suggest/core/warnings"
	"margin-suggest/internal/config"
	apperrors "margin-suggest/internal/errors"
)

// MaxBatchSize caps the products accepted by one batch request
const MaxBatchSize = 500

// Server is the API server
type Server struct {
	engine  *engine.Engine
	cfg     config.ServerConfig
	logger  *zap.Logger
	metrics *Metrics
	version string
	router  chi.Router
}

// NewServer creates the API server. A nil logger discards logs.
func NewServer(eng *engine.Engine, cfg config.ServerConfig, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:  eng,
		cfg:     cfg,
		logger:  logger,
		version: engine.Version,
	}
	if cfg.EnableMetrics {
		s.metrics = NewMetrics()
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.accessLog)
	r.Use(s.recoverer)
	r.Use(limitBody(s.cfg.MaxBodySize))

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/suggestions", s.handleSuggest)
		r.Post("/suggestions/batch", s.handleBatch)
		r.Get("/strategies", s.handleStrategies)
		r.Get("/categories", s.handleCategories)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, CodeNotFound, "no route for "+r.Method+" "+r.URL.Path)
	})
	return r
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer wraps the API in an http.Server configured from cfg
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
	}
}

// handleSuggest handles POST /api/v1/suggestions
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestRequest
	if !s.decode(w, r, &req) {
		return
	}

	if strictMode(r) {
		if err := warnings.Validate(req.Product); err != nil {
			s.writeError(w, r, StatusFor(err), CodeInvalidProduct, err.Error())
			return
		}
	}

	result := s.engine.GetSuggestions(req.Product, req.Options)
	if s.metrics != nil {
		s.metrics.ObserveSuggestion(result)
	}
	s.writeJSON(w, http.StatusOK, result)
}

// handleBatch handles POST /api/v1/suggestions/batch
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req BatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	switch {
	case len(req.Products) == 0:
		s.writeError(w, r, http.StatusBadRequest, CodeValidation, "products must not be empty")
		return
	case len(req.Products) > MaxBatchSize:
		s.writeError(w, r, http.StatusBadRequest, CodeValidation,
			"at most "+strconv.Itoa(MaxBatchSize)+" products per batch")
		return
	}

	if strictMode(r) {
		for i, p := range req.Products {
			if err := warnings.Validate(p); err != nil {
				s.writeError(w, r, StatusFor(err), CodeInvalidProduct,
					"products["+strconv.Itoa(i)+"]: "+err.Error())
				return
			}
		}
	}

	results, err := s.engine.SuggestBatch(r.Context(), req.Products, req.Options)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.writeError(w, r, http.StatusServiceUnavailable, CodeCancelled, err.Error())
			return
		}
		ierr := apperrors.Internal("batch suggestion failed", err)
		s.writeError(w, r, StatusFor(ierr), CodeInternal, ierr.Error())
		return
	}

	if s.metrics != nil {
		s.metrics.ObserveBatch(len(req.Products))
		for _, res := range results {
			s.metrics.ObserveSuggestion(res)
		}
	}
	s.writeJSON(w, http.StatusOK, BatchResponse{
		Results:    results,
		Count:      len(results),
		DurationMs: time.Since(start).Milliseconds(),
	})
}

// handleStrategies handles GET /api/v1/strategies
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"strategies": s.engine.GetStrategies(),
	})
}

// handleCategories handles GET /api/v1/categories
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": s.engine.Categories(),
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"version":     s.version,
		"engine":      "margin-suggest",
		"api_version": "v1",
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, r, http.StatusRequestEntityTooLarge, CodeBodyTooLarge,
				"request body exceeds "+strconv.FormatInt(maxErr.Limit, 10)+" bytes")
			return false
		}
		s.writeError(w, r, http.StatusBadRequest, CodeInvalidJSON, err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	s.writeJSON(w, status, ErrorEnvelope{Error: ErrorBody{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

// StatusFor maps an application error to an HTTP status
func StatusFor(err error) int {
	switch apperrors.TypeOf(err) {
	case apperrors.TypeInput:
		return http.StatusUnprocessableEntity
	case apperrors.TypeNotFound:
		return http.StatusNotFound
	case apperrors.TypeCatalog, apperrors.TypeConfig:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func strictMode(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("strict"))
	return err == nil && v
}
