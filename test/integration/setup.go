// Package integration provides helpers and integration tests for the reservation system.
// Integration tests drive the full HTTP surface over real stores: use cases,
// repositories, storage drivers and middleware working together.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/document"
	httpAdapter "github.com/rail-reserve/railway-reservation-system/internal/adapter/http"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/http/middleware"
	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/memory"
	"github.com/rail-reserve/railway-reservation-system/internal/catalog"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
	"github.com/rail-reserve/railway-reservation-system/internal/repository"
	"github.com/rail-reserve/railway-reservation-system/internal/usecase"
)

// Now is the fixed wall clock of every test server: 14:05 IST.
var Now = time.Date(2026, 10, 19, 8, 35, 0, 0, time.UTC)

// JourneyDate is the travel date used by the default requests.
const JourneyDate = "2026-11-02"

// Options configures a TestServer. Zero values select in-memory defaults.
type Options struct {
	Store   domain.KeyValueStore
	Catalog *catalog.Catalog
	Retry   *retry.Config
	PNR     domain.PNRGenerator
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Booking  *usecase.BookingService
	Sessions *usecase.SessionRegistry
	Logs     *bytes.Buffer
}

// NewTestServer wires the application the way cmd/server does, over opts.
func NewTestServer(t *testing.T, opts Options) *TestServer {
	t.Helper()
	ctx := context.Background()

	if opts.Store == nil {
		opts.Store = memory.New()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Retry == nil {
		opts.Retry = &retry.NoRetry
	}

	logs := &bytes.Buffer{}
	log := logger.NewWithOutput(logger.Config{Level: "debug", Format: "json"}, &syncWriter{w: logs})

	repoCfg := &repository.Config{Retry: opts.Retry, Logger: log}
	occupancy, err := repository.NewOccupancyStore(ctx, opts.Store, repoCfg)
	require.NoError(t, err)
	tickets, err := repository.NewTicketStore(ctx, opts.Store, repoCfg)
	require.NoError(t, err)

	clock := timeutil.NewMockClock(Now)
	search := usecase.NewSearchUseCase(opts.Catalog, usecase.NewAvailabilityGenerator(nil), log)
	booking := usecase.NewBookingService(usecase.BookingDeps{
		Catalog:   opts.Catalog,
		Search:    search,
		Occupancy: occupancy,
		Tickets:   tickets,
		PNR:       opts.PNR,
		Clock:     clock,
		Logger:    log,
	})
	sessions := usecase.NewSessionRegistry(clock, 0)

	handler := httpAdapter.NewHandler(httpAdapter.HandlerDeps{
		Catalog:  opts.Catalog,
		Search:   search,
		Booking:  booking,
		Sessions: sessions,
		Renderer: document.NewTicketRenderer(opts.Catalog),
		Logger:   log,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger, middleware.RecoveryConfig{DisablePrintStack: true})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Booking:  booking,
		Sessions: sessions,
		Logs:     logs,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body io.Reader = http.NoBody
	if req.Body != nil {
		data, _ := json.Marshal(req.Body)
		body = bytes.NewReader(data)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Decode unmarshals the response body into v.
func (r Response) Decode(t *testing.T, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, v), string(r.Body))
}

// ErrorCode returns the code field of an error response.
func (r Response) ErrorCode(t *testing.T) string {
	t.Helper()
	var out struct {
		Code string `json:"code"`
	}
	r.Decode(t, &out)
	return out.Code
}

// SearchBody builds a search request body.
func SearchBody(from, to, cls string, pax int) map[string]interface{} {
	return map[string]interface{}{
		"from": from,
		"to":   to,
		"date": JourneyDate,
		"cls":  cls,
		"pax":  pax,
	}
}

// CreateSession starts a session and returns its id.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	require.Equal(t, http.StatusCreated, resp.Code, string(resp.Body))

	var out httpAdapter.SessionResponse
	resp.Decode(t, &out)
	return out.ID
}

// SessionPath returns the path of a session sub-resource.
func SessionPath(id, format string, args ...interface{}) string {
	return "/api/v1/sessions/" + id + fmt.Sprintf(format, args...)
}

// SelectRajdhani creates a session searching NDLS->BCT 3A for pax and
// selecting coach of train 12952.
func (ts *TestServer) SelectRajdhani(t *testing.T, pax int, coach string) string {
	t.Helper()
	id := ts.CreateSession(t)

	resp := ts.Do(Request{Method: http.MethodPost, Path: SessionPath(id, "/search"), Body: SearchBody("NDLS", "BCT", "3A", pax)})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	resp = ts.Do(Request{Method: http.MethodPost, Path: SessionPath(id, "/selection"), Body: map[string]string{"trainNo": "12952", "coach": coach}})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	return id
}

// Toggle toggles a seat on a session.
func (ts *TestServer) Toggle(id, seat string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: SessionPath(id, "/seats/%s/toggle", seat)})
}

// Checkout opens checkout on a session.
func (ts *TestServer) Checkout(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: SessionPath(id, "/checkout")})
}

// Pay confirms payment on a session.
func (ts *TestServer) Pay(id string) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: SessionPath(id, "/payment")})
}

// Book toggles seats, checks out and pays, returning the issued ticket.
func (ts *TestServer) Book(t *testing.T, id string, seats ...string) httpAdapter.TicketResponse {
	t.Helper()
	for _, seat := range seats {
		resp := ts.Toggle(id, seat)
		require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))
	}
	resp := ts.Checkout(id)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	resp = ts.Pay(id)
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	var out httpAdapter.PaymentResponse
	resp.Decode(t, &out)
	return out.Ticket
}

// SeatMap fetches the seat map of a session.
func (ts *TestServer) SeatMap(t *testing.T, id string) *domain.SeatMap {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodGet, Path: SessionPath(id, "/seats")})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	var out httpAdapter.SeatMapResponse
	resp.Decode(t, &out)
	return out.SeatMap
}

// Tickets lists the issued tickets.
func (ts *TestServer) Tickets(t *testing.T) httpAdapter.TicketsResponse {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/tickets"})
	require.Equal(t, http.StatusOK, resp.Code, string(resp.Body))

	var out httpAdapter.TicketsResponse
	resp.Decode(t, &out)
	return out
}

// syncWriter serializes log writes from concurrent requests.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
