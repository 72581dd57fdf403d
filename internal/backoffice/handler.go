// Package backoffice serves the dashboard HTTP API consumed by the
// publisher backoffice frontend.
package backoffice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/rigorous-io/swit-backoffice/internal/analytics"
	"github.com/rigorous-io/swit-backoffice/internal/core/domain"
	apperrors "github.com/rigorous-io/swit-backoffice/internal/core/errors"
	"github.com/rigorous-io/swit-backoffice/internal/platform/config"
	"github.com/rigorous-io/swit-backoffice/internal/platform/observability"
)

// Endpoint labels used for metrics.
const (
	endpointSwitters        = "switters"
	endpointCompetingBrands = "competing_brands"
)

// Service is the analytics surface the handler depends on, implemented by
// *analytics.Engine.
type Service interface {
	ResolveScope(ctx context.Context, websiteID string) (*analytics.Scope, error)
	Switters(ctx context.Context, scope *analytics.Scope, period domain.Period, timezone string) (*analytics.SwittersReport, error)
	CompetingBrands(ctx context.Context, scope *analytics.Scope) (*analytics.BrandRanking, error)
}

// Handler serves the backoffice dashboard endpoints.
type Handler struct {
	cfg     *config.Config
	service Service
	logger  *zerolog.Logger

	// IP-based rate limiting
	limiters   map[string]*rate.Limiter
	limitersMu sync.Mutex
}

// NewHandler creates a backoffice handler.
func NewHandler(cfg *config.Config, service Service, logger *zerolog.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		service:  service,
		logger:   logger,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Routes mounts the dashboard endpoints on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.rateLimitMiddleware)
	r.Use(h.authMiddleware)

	r.Route("/bo/dashboard/websites/{websiteID}", func(r chi.Router) {
		r.Get("/analytics/switters", h.handleSwitters)
		r.Get("/rankings/competing-brands", h.handleCompetingBrands)
	})

	return r
}

// handleSwitters serves GET /bo/dashboard/websites/{websiteID}/analytics/switters.
func (h *Handler) handleSwitters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		observability.DashboardRequestDuration.WithLabelValues(endpointSwitters).Observe(time.Since(start).Seconds())
	}()

	ctx := r.Context()

	loc, err := parseTimezone(r, h.cfg.DefaultTimezone)
	if err != nil {
		h.writeDomainError(w, endpointSwitters, err)
		return
	}

	period, err := parsePeriod(r, loc, h.cfg.DefaultPeriodDays)
	if err != nil {
		h.writeDomainError(w, endpointSwitters, err)
		return
	}

	scope, err := h.service.ResolveScope(ctx, chi.URLParam(r, "websiteID"))
	if err != nil {
		h.writeDomainError(w, endpointSwitters, err)
		return
	}

	report, err := h.service.Switters(ctx, scope, period, loc.String())
	if err != nil {
		h.writeDomainError(w, endpointSwitters, err)
		return
	}

	observability.DashboardRequests.WithLabelValues(endpointSwitters, statusOK).Inc()
	writeJSON(w, http.StatusOK, report)
}

// handleCompetingBrands serves GET /bo/dashboard/websites/{websiteID}/rankings/competing-brands.
//
// The timezone and period are parsed for parity with the other dashboard
// endpoints, but the ranking itself runs over all-time activity.
func (h *Handler) handleCompetingBrands(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defer func() {
		observability.DashboardRequestDuration.WithLabelValues(endpointCompetingBrands).Observe(time.Since(start).Seconds())
	}()

	ctx := r.Context()

	loc, err := parseTimezone(r, h.cfg.DefaultTimezone)
	if err != nil {
		h.writeDomainError(w, endpointCompetingBrands, err)
		return
	}

	if _, err := parsePeriod(r, loc, h.cfg.DefaultPeriodDays); err != nil {
		h.writeDomainError(w, endpointCompetingBrands, err)
		return
	}

	scope, err := h.service.ResolveScope(ctx, chi.URLParam(r, "websiteID"))
	if err != nil {
		h.writeDomainError(w, endpointCompetingBrands, err)
		return
	}

	ranking, err := h.service.CompetingBrands(ctx, scope)
	if err != nil {
		h.writeDomainError(w, endpointCompetingBrands, err)
		return
	}

	observability.DashboardRequests.WithLabelValues(endpointCompetingBrands, statusOK).Inc()
	writeJSON(w, http.StatusOK, ranking)
}

// Metric status labels.
const (
	statusOK          = "ok"
	statusClientError = "client_error"
	statusServerError = "server_error"
)

// writeDomainError maps engine and parsing errors onto HTTP statuses.
func (h *Handler) writeDomainError(w http.ResponseWriter, endpoint string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInexistentWebsite):
		observability.DashboardRequests.WithLabelValues(endpoint, statusClientError).Inc()
		writeError(w, http.StatusNotFound, "website does not exist")
	case errors.Is(err, apperrors.ErrNoArticlesToSell):
		observability.DashboardRequests.WithLabelValues(endpoint, statusClientError).Inc()
		writeError(w, http.StatusUnprocessableEntity, "website has no articles to sell")
	case errors.Is(err, apperrors.ErrInvalidID),
		errors.Is(err, apperrors.ErrInvalidPeriod),
		errors.Is(err, apperrors.ErrInvalidTimezone):
		observability.DashboardRequests.WithLabelValues(endpoint, statusClientError).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		observability.DashboardRequests.WithLabelValues(endpoint, statusServerError).Inc()
		h.logger.Error().Err(err).Str("endpoint", endpoint).Msg("dashboard request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

const headerContentType = "Content-Type"

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set(headerContentType, "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
