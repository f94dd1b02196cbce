package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fileauth/config"
	"fileauth/internal/delivery/api/validator"
	deliverycontext "fileauth/internal/delivery/context"
	"fileauth/internal/domain/entity"
	"fileauth/internal/domain/service"
	"fileauth/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{Auth: &config.AuthConfig{
		CookieName: "airflow_jwt",
		LoginURL:   "/auth/login",
		TokenTTL:   10 * time.Hour,
	}}
}

func testTokenService(t *testing.T) service.TokenService {
	t.Helper()

	tokens, err := auth.NewJWTServiceWithOptions("handler-secret", time.Hour)
	require.NoError(t, err)

	return tokens
}

// newContext builds an echo context with a JSON or form body.
func newContext(method, target, contentType, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withClaims(c echo.Context, username string, role entity.Role) {
	deliverycontext.SetClaims(c, &service.Claims{
		Username: username,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
	})
}
