// Package chi wires the HTTP API onto a chi router.
package chi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harvest-cloud/marketdex/internal/domain"
	domsearch "github.com/harvest-cloud/marketdex/internal/domain/search"
	healthuc "github.com/harvest-cloud/marketdex/internal/usecase/health"
	marketuc "github.com/harvest-cloud/marketdex/internal/usecase/market"
	searchuc "github.com/harvest-cloud/marketdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers for the market directory API.
type Server struct {
	search        *searchuc.Service
	markets       *marketuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	markets *marketuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		markets: markets,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrBadGeo, http.StatusBadRequest, codeBadGeo),
		sentinelHandler(domain.ErrMarketNotFound, http.StatusNotFound, codeMarketNotFound),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/api/markets", s.SearchMarkets)
	r.Get("/api/markets/{slug}", s.GetMarket)
	r.Get("/api/states", s.ListStates)
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// SearchMarkets handles GET /api/markets.
//
// Malformed inputs degrade to defaults inside Normalize; only a partial geo
// triple produces a 400 and only a store failure produces a 500.
func (s *Server) SearchMarkets(w http.ResponseWriter, r *http.Request) {
	spec, err := domsearch.Normalize(r.URL.Query())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.search.Search(r.Context(), &spec)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToAPI(page))
}

// GetMarket handles GET /api/markets/{slug}.
func (s *Server) GetMarket(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "market slug is required")
		return
	}

	m, err := s.markets.GetBySlug(r.Context(), slug)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, marketToAPI(&m, nil))
}

// ListStates handles GET /api/states.
func (s *Server) ListStates(w http.ResponseWriter, r *http.Request) {
	counts, err := s.markets.StateCounts(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := statesResponse{Data: make([]apiState, len(counts))}
	for i, c := range counts {
		resp.Data[i] = apiState{Code: c.StateCode, Name: c.StateName, Markets: c.Markets}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToAPI(report))
}

// handleDomainError walks the sentinel chain, falling back to a logged 500.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, handle := range s.errorHandlers {
		if handle(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// sentinelHandler maps one sentinel error to an HTTP status and code.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if errors.Is(err, sentinel) {
			writeError(w, status, code, err.Error())
			return true
		}
		return false
	}
}
