package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "client-id-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id-42", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-id-42", GetRequestID(c))
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", 500))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, RequestID()(func(c echo.Context) error { return nil })(c))
	assert.Len(t, GetRequestID(c), 36)
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

func TestRequestLogger_LogsSessionRoute(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.POST("/api/v1/sessions/:id/checkout", func(c echo.Context) error {
		return c.JSON(http.StatusConflict, map[string]string{"code": "conflict"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc-123/checkout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	entry := lines[0]
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/sessions/:id/checkout", entry["route"])
	assert.Equal(t, "abc-123", entry["session_id"])
	assert.Equal(t, float64(http.StatusConflict), entry["status"])
	assert.NotEmpty(t, entry["request_id"])
	assert.Contains(t, entry, "duration_ms")
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:      "success is info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "info",
		},
		{
			name:      "returned echo error is handled and logged",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLevel: "warn",
		},
		{
			name:      "plain error becomes 500",
			handler:   func(c echo.Context) error { return errors.New("boom") },
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(zerolog.New(&buf)))
			e.GET("/api/v1/tickets/:pnr", tt.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tickets/ABCDEFGH", nil))

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "ABCDEFGH", lines[0]["pnr"])
		})
	}
}

func TestRecover_Returns500OnPanic(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(Recover(zerolog.New(&buf)))
	e.GET("/panic", func(c echo.Context) error {
		panic("seat map exploded")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "seat map exploded", lines[0]["panic"])
	assert.Contains(t, lines[0], "stack")
}

func TestRecover_HandlesErrorPanic(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(Recover(zerolog.New(&buf)))
	e.GET("/panic", func(c echo.Context) error {
		panic(errors.New("nil store"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "nil store", logLines(t, &buf)[0]["panic"])
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RecoverWithConfig(zerolog.New(&buf), RecoveryConfig{DisablePrintStack: true}))
	e.GET("/panic", func(c echo.Context) error { panic("x") })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.NotContains(t, logLines(t, &buf)[0], "stack")
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	e := echo.New()
	e.Use(Recover(zerolog.Nop()))
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "fine") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
}

func TestSetup_PanicIsLoggedAs500WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&buf), RecoveryConfig{DisablePrintStack: true})
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get(RequestIDHeader))

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Panic recovered", lines[0]["message"])
	assert.Equal(t, "req-7", lines[0]["request_id"])
	assert.Equal(t, "HTTP request", lines[1]["message"])
	assert.Equal(t, float64(http.StatusInternalServerError), lines[1]["status"])
}
