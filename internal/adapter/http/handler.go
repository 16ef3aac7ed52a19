// Package http provides the HTTP handler layer for the reservation API.
// It handles request parsing, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/document"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/middleware"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/response"
	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/usecase"
)

// CatalogReader is the catalog data the API exposes.
type CatalogReader interface {
	Stations() []domain.Station
	Trains() []domain.Train
	Stats() catalog.Stats
}

// HandlerDeps are the collaborators of a Handler.
type HandlerDeps struct {
	Catalog  CatalogReader
	Search   usecase.SearchUseCase
	Booking  *usecase.BookingService
	Sessions *usecase.SessionRegistry
	Renderer *document.TicketRenderer
	Logger   *logger.Logger
}

// Handler serves the reservation API.
type Handler struct {
	catalog  CatalogReader
	search   usecase.SearchUseCase
	booking  *usecase.BookingService
	sessions *usecase.SessionRegistry
	renderer *document.TicketRenderer
	log      *logger.Logger
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) *Handler {
	h := &Handler{
		catalog:  deps.Catalog,
		search:   deps.Search,
		booking:  deps.Booking,
		sessions: deps.Sessions,
		renderer: deps.Renderer,
		log:      deps.Logger,
	}
	if h.log == nil {
		h.log = logger.Nop()
	}
	if h.renderer == nil {
		h.renderer = document.NewTicketRenderer(nil)
	}
	return h
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	stats := h.catalog.Stats()
	return response.Health(c, response.HealthResponse{
		Stations: stats.Stations,
		Trains:   stats.Trains,
		Sessions: h.sessions.Len(),
		Tickets:  len(h.booking.Tickets()),
	})
}

// ListStations handles GET /api/v1/stations
//
// @Summary List stations
// @Tags catalog
// @Produce json
// @Success 200 {object} StationsResponse
// @Router /api/v1/stations [get]
func (h *Handler) ListStations(c echo.Context) error {
	stations := h.catalog.Stations()
	return response.OK(c, &StationsResponse{Stations: stations, Total: len(stations)})
}

// ListTrains handles GET /api/v1/trains
//
// @Summary List trains
// @Tags catalog
// @Produce json
// @Success 200 {object} TrainsResponse
// @Router /api/v1/trains [get]
func (h *Handler) ListTrains(c echo.Context) error {
	return response.OK(c, &TrainsResponse{Trains: h.catalog.Trains(), Stats: h.catalog.Stats()})
}

// SearchTrains handles POST /api/v1/trains/search
//
// @Summary Search trains
// @Description Direct trains between two stations in a class, with mocked availability and fares. Stateless.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body SearchTrainsRequest true "Search query"
// @Success 200 {object} domain.SearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/trains/search [post]
func (h *Handler) SearchTrains(c echo.Context) error {
	var req SearchTrainsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.search.Search(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// handleError maps domain errors to HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	var validationErrs *domain.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return response.ValidationError(c, validationErrs.ToMap())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return response.RequestCancelled(c)
	case domain.IsInvalidRequest(err),
		errors.Is(err, domain.ErrInvalidSeat),
		errors.Is(err, domain.ErrClassNotOffered):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsNotFound(err):
		return response.NotFound(c, err.Error())
	case domain.IsConflict(err):
		return response.Conflict(c, err.Error())
	}

	h.log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Str("route", c.Path()).
		Msg("request failed")
	return response.InternalServerError(c)
}
