package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos/config"
	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func newEcho(logger *slog.Logger, debug bool) *echo.Echo {
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	logger, _ := newBufferLogger()
	e := newEcho(logger, false)

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestID_ReplacesOversizedHeader(t *testing.T) {
	logger, _ := newBufferLogger()
	e := newEcho(logger, false)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLogger_WritesAccessLine(t *testing.T) {
	logger, buf := newBufferLogger()
	e := newEcho(logger, true)
	e.GET("/api/v1/basket", func(c echo.Context) error {
		deliverycontext.SetSession(c, uuid.New(), entity.RoleStaff)

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/basket", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `msg="HTTP Request"`)
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "route=/api/v1/basket")
	assert.Contains(t, out, "role=staff")
	assert.Contains(t, out, "status=200")
}

func TestLogger_SkipsQuietPaths(t *testing.T) {
	logger, buf := newBufferLogger()
	e := newEcho(logger, true)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}

func TestLogger_DisabledOutsideDebug(t *testing.T) {
	logger, buf := newBufferLogger()
	e := newEcho(logger, false)
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, buf.String())
}

func TestLogger_ReportsHandledErrorStatus(t *testing.T) {
	logger, buf := newBufferLogger()
	e := newEcho(logger, true)
	e.GET("/boom", func(c echo.Context) error { return echo.ErrBadGateway })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "status=502")
}

func TestIsValidRequestID(t *testing.T) {
	assert.True(t, isValidRequestID("req-123"))
	assert.False(t, isValidRequestID(""))
	assert.False(t, isValidRequestID("has space"))
	assert.False(t, isValidRequestID("line\nbreak"))
	assert.False(t, isValidRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}
