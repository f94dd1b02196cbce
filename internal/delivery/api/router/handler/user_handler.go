package handler

import (
	"log/slog"
	"net/http"

	"fileauth/internal/delivery/api/middleware"
	"fileauth/internal/delivery/api/response"
	"fileauth/internal/domain/entity"
	"fileauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves user administration for admins.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UserResponse is the public view of a user. The password hash is never exposed.
type UserResponse struct {
	Username  string         `json:"username"`
	Role      string         `json:"role"`
	Email     string         `json:"email,omitempty"`
	FirstName string         `json:"first_name,omitempty"`
	LastName  string         `json:"last_name,omitempty"`
	Active    bool           `json:"active"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// CreateUserRequest represents the request body for adding a user
type CreateUserRequest struct {
	Username  string         `json:"username" validate:"required"`
	Password  string         `json:"password" validate:"required"`
	Role      string         `json:"role" validate:"required,oneof=viewer editor admin"`
	Email     string         `json:"email" validate:"omitempty,email"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Active    *bool          `json:"active"`
	Metadata  map[string]any `json:"metadata"`
}

// UpdateUserRequest represents a partial update; omitted fields are unchanged.
type UpdateUserRequest struct {
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Active    *bool   `json:"active"`
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]UserResponse, 0, len(users))
	for _, user := range users {
		views = append(views, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, views)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor, _ := middleware.GetUsername(c)
	user, err := h.userUC.CreateUser(c.Request().Context(), actor, usecase.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    req.Active,
		Metadata:  req.Metadata,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid user input")
	}

	input := usecase.UpdateUserInput{
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Active:    req.Active,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	actor, _ := middleware.GetUsername(c)
	user, err := h.userUC.UpdateUser(c.Request().Context(), actor, c.Param("username"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, _ := middleware.GetUsername(c)
	if err := h.userUC.DeleteUser(c.Request().Context(), actor, c.Param("username")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		Username:  user.Username,
		Role:      string(user.Role),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Active:    user.Active,
		Metadata:  user.Metadata,
	}
}
