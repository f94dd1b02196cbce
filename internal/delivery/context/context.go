// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"fileauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	// KeyClaims holds the verified token claims of the caller.
	KeyClaims ContextKey = "claims"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating one when
// the request ID middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetClaims stores the caller's claims on both the echo context and the
// request context.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyClaims, claims)))
}

// GetClaims returns the claims set by the authentication middleware.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyClaims)).(*service.Claims)

	return claims, ok && claims != nil
}

// GetClaimsFromContext returns the caller's claims outside echo handlers.
func GetClaimsFromContext(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(KeyClaims).(*service.Claims)

	return claims, ok && claims != nil
}
