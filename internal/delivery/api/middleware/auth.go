package middleware

import (
	"log/slog"
	"strings"

	"fileauth/config"
	deliverycontext "fileauth/internal/delivery/context"
	"fileauth/internal/domain/entity"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/policy"
	"fileauth/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderForwardedMethod carries the original method when a reverse proxy
// delegates authorization decisions to this service.
const HeaderForwardedMethod = "X-Forwarded-Method"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Policy       *policy.Policy
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware verifies access tokens and enforces the role policy.
// Tokens are self-contained: the credential store is not consulted per request.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	policy     *policy.Policy
	cookieName string
	logger     *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		policy:     params.Policy,
		cookieName: params.Config.Auth.CookieName,
		logger:     params.Logger,
	}
}

// Authenticate accepts a Bearer token, falling back to the session cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := m.extractToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return err
		}
		if !claims.UserRole().IsValid() {
			return domainerrors.ErrTokenInvalid.WrapMessage("unknown role " + claims.Role)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) (string, error) {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", domainerrors.ErrTokenInvalid.WrapMessage("authorization header must be a Bearer token")
		}

		return strings.TrimSpace(token), nil
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", domainerrors.ErrTokenInvalid.WrapMessage("no access token")
}

// Authorize evaluates the policy for the resource type named by the route
// parameter. The instance id, when routed, is passed as request details.
// It must be used after Authenticate.
func (m *AuthMiddleware) Authorize(resourceParam string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrTokenInvalid.WrapMessage("no authenticated caller")
			}

			resource := policy.ResourceType(c.Param(resourceParam))
			method := RequestMethod(c)
			if !m.policy.IsAuthorized(resource, method, claims.UserRole(), c.Param("id")) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Info("Access denied",
					slog.String("username", claims.Username),
					slog.String("role", claims.Role),
					slog.String("resource", string(resource)),
					slog.String("method", method),
				)

				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireRole rejects callers below the given role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := deliverycontext.GetClaims(c)
			if !ok {
				return domainerrors.ErrTokenInvalid.WrapMessage("no authenticated caller")
			}
			if !policy.HasMinimumRole(claims.UserRole(), required) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequestMethod returns the method to authorize: the forwarded method when a
// proxy supplied one, otherwise the request's own.
func RequestMethod(c echo.Context) string {
	if forwarded := c.Request().Header.Get(HeaderForwardedMethod); forwarded != "" {
		return strings.ToUpper(forwarded)
	}

	return c.Request().Method
}

// GetClaims returns the authenticated caller's claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	return deliverycontext.GetClaims(c)
}

// GetUsername returns the authenticated caller's username.
func GetUsername(c echo.Context) (string, bool) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return "", false
	}

	return claims.Username, true
}

// IsSecureRequest reports whether the client reached us over HTTPS, directly
// or through a TLS-terminating proxy.
func IsSecureRequest(c echo.Context) bool {
	return c.Scheme() == "https" || strings.EqualFold(c.Request().Header.Get(echo.HeaderXForwardedProto), "https")
}
