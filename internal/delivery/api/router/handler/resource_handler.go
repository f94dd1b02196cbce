package handler

import (
	"log/slog"
	"net/http"

	"fileauth/internal/delivery/api/middleware"
	"fileauth/internal/delivery/api/response"
	domainerrors "fileauth/internal/domain/errors"
	"fileauth/internal/domain/policy"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResourceHandlerParams holds dependencies for ResourceHandler, injected by Fx.
type ResourceHandlerParams struct {
	fx.In

	Policy *policy.Policy
	Logger *slog.Logger
}

// ResourceHandler answers authorization questions for the host platform.
type ResourceHandler struct {
	policy *policy.Policy
	logger *slog.Logger
}

func NewResourceHandler(params ResourceHandlerParams) *ResourceHandler {
	return &ResourceHandler{
		policy: params.Policy,
		logger: params.Logger,
	}
}

// DecisionResponse is returned once a request has passed authorization.
type DecisionResponse struct {
	Allowed  bool   `json:"allowed"`
	Resource string `json:"resource"`
	Method   string `json:"method"`
	Details  string `json:"details,omitempty"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// BatchRequest asks several questions for the caller at once.
type BatchRequest struct {
	Requests []BatchItem `json:"requests" validate:"dive"`
}

type BatchItem struct {
	Resource string `json:"resource" validate:"required"`
	Method   string `json:"method" validate:"required"`
	Details  string `json:"details,omitempty"`
}

// ViewRequest asks about a built-in view (empty name) or a named custom view.
type ViewRequest struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}

// AllowedResponse carries a yes/no decision.
type AllowedResponse struct {
	Allowed bool `json:"allowed"`
}

// Decide runs behind Authorize, so reaching it means the request is allowed.
func (h *ResourceHandler) Decide(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	return response.Success(c, http.StatusOK, DecisionResponse{
		Allowed:  true,
		Resource: c.Param("resource"),
		Method:   middleware.RequestMethod(c),
		Details:  c.Param("id"),
		Username: claims.Username,
		Role:     claims.Role,
	})
}

// ListResources returns the resource types with their own rules.
func (h *ResourceHandler) ListResources(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.policy.Resources())
}

// Batch reports whether the caller may perform every listed action.
func (h *ResourceHandler) Batch(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid batch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	requests := make([]policy.Request, 0, len(req.Requests))
	for _, item := range req.Requests {
		requests = append(requests, policy.Request{
			Resource: policy.ResourceType(item.Resource),
			Method:   item.Method,
			Role:     claims.UserRole(),
			Details:  item.Details,
		})
	}

	return response.Success(c, http.StatusOK, AllowedResponse{Allowed: h.policy.IsAuthorizedBatch(requests)})
}

// View evaluates access to a UI view.
func (h *ResourceHandler) View(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrTokenInvalid
	}

	var req ViewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid view input")
	}

	var allowed bool
	if req.Name == "" {
		allowed = h.policy.IsAuthorizedView(claims.UserRole())
	} else {
		method := req.Method
		if method == "" {
			method = http.MethodGet
		}
		allowed = h.policy.IsAuthorizedCustomView(method, claims.UserRole(), req.Name)
	}

	return response.Success(c, http.StatusOK, AllowedResponse{Allowed: allowed})
}
