package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fileauth/config"
	"fileauth/internal/delivery/api/middleware"
	"fileauth/internal/delivery/api/response"
	deliverycontext "fileauth/internal/delivery/context"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/policy"
	"fileauth/internal/domain/service"
	"fileauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgMissingCredentials = "Username and password required"
	msgInvalidCredentials = "Invalid username or password"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC       usecase.AuthUsecase
	TokenService service.TokenService
	Policy       *policy.Policy
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthHandler serves token issuance and the browser session endpoints.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	tokenSvc   service.TokenService
	policy     *policy.Policy
	cookieName string
	loginURL   string
	logger     *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:     params.AuthUC,
		tokenSvc:   params.TokenService,
		policy:     params.Policy,
		cookieName: params.Config.Auth.CookieName,
		loginURL:   params.Config.Auth.LoginURL,
		logger:     params.Logger,
	}
}

// TokenRequest is accepted as JSON or as a login form.
type TokenRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"-" form:"next"`
}

// TokenResponse follows the OAuth2 token response shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MenuResponse lists the menu entries visible to the caller.
type MenuResponse struct {
	Role  string   `json:"role"`
	Items []string `json:"items"`
}

// Token exchanges credentials for an access token. API clients get the
// token in the body; form posts from a browser get a session cookie and a
// redirect instead.
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	browser := isFormRequest(c)
	if req.Next == "" {
		req.Next = c.QueryParam("next")
	}

	if req.Username == "" || req.Password == "" {
		if browser {
			return h.redirectToLogin(c, msgMissingCredentials)
		}

		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), msgMissingCredentials)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username:   req.Username,
		Password:   req.Password,
		RemoteAddr: c.RealIP(),
	})
	if err != nil {
		if browser && errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return h.redirectToLogin(c, msgInvalidCredentials)
		}

		return errors.WithStack(err)
	}

	if browser {
		c.SetCookie(h.sessionCookie(c, output.AccessToken, int(output.ExpiresIn)))

		return c.Redirect(http.StatusSeeOther, safeRedirectTarget(req.Next))
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
	})
}

// Logout clears the session cookie and sends the browser to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		// Best effort: an expired or forged cookie is still cleared, just not audited.
		if claims, err := h.tokenSvc.Verify(cookie.Value); err == nil {
			h.authUC.Logout(c.Request().Context(), usecase.LogoutInput{
				Username:   claims.Username,
				RemoteAddr: c.RealIP(),
			})
		}
	}

	expired := h.sessionCookie(c, "", -1)
	expired.Expires = time.Unix(0, 0)
	c.SetCookie(expired)

	return c.Redirect(http.StatusSeeOther, h.loginURL)
}

// Me returns the identity carried by the caller's token.
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	me := MeResponse{
		Username:  claims.Username,
		Role:      claims.Role,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}
	if claims.ExpiresAt != nil {
		me.ExpiresAt = claims.ExpiresAt.UTC()
	}

	return response.Success(c, http.StatusOK, me)
}

// Menu filters the menu for the caller's role. A comma separated items query
// replaces the default menu.
func (h *AuthHandler) Menu(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	items := policy.DefaultMenu
	if raw := c.QueryParam("items"); raw != "" {
		items = strings.Split(raw, ",")
	}

	return response.Success(c, http.StatusOK, MenuResponse{
		Role:  claims.Role,
		Items: policy.FilterMenuItems(claims.UserRole(), items),
	})
}

func (h *AuthHandler) sessionCookie(c echo.Context, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   middleware.IsSecureRequest(c),
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) redirectToLogin(c echo.Context, message string) error {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Redirecting to login", slog.String("reason", message))

	separator := "?"
	if strings.Contains(h.loginURL, "?") {
		separator = "&"
	}

	return c.Redirect(http.StatusSeeOther, h.loginURL+separator+url.Values{"error": {message}}.Encode())
}

func isFormRequest(c echo.Context) bool {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	return strings.HasPrefix(contentType, echo.MIMEApplicationForm) || strings.HasPrefix(contentType, echo.MIMEMultipartForm)
}

// safeRedirectTarget only allows local absolute paths so the login form
// cannot be used as an open redirect.
func safeRedirectTarget(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}

	return next
}
