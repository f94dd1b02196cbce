package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fileauth/config"
	deliverycontext "fileauth/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	logger, _ := newBufferLogger()
	e := echo.New()

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "short id", header: "client-id-1", reused: true},
		{name: "oversized id", header: strings.Repeat("x", maxRequestIDLength+1), reused: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			assert.Equal(t, tt.reused, rec.Header().Get(deliverycontext.HeaderXRequestID) == tt.header)
		})
	}
}

func TestLoggerMiddleware_LogsStatusFromError(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestLoggerMiddleware_SkipsHealth(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}
