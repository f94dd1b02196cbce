package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fileauth/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestClaims(t *testing.T) {
	c := newEchoContext()

	_, ok := GetClaims(c)
	assert.False(t, ok)

	claims := &service.Claims{Username: "alice", Role: "editor"}
	SetClaims(c, claims)

	got, ok := GetClaims(c)
	require.True(t, ok)
	assert.Same(t, claims, got)

	fromCtx, ok := GetClaimsFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, "alice", fromCtx.Username)
}
