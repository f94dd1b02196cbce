// Package router contains routing for the API delivery.
package router

import (
	"fileauth/internal/delivery/api/middleware"
	"fileauth/internal/delivery/api/router/handler"
	"fileauth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ResourceHandler *handler.ResourceHandler
	UserHandler     *handler.UserHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	resourceHandler *handler.ResourceHandler
	userHandler     *handler.UserHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		resourceHandler: params.ResourceHandler,
		userHandler:     params.UserHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.GET("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.GET("/menu", r.authHandler.Menu, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Forward-auth decisions: the route itself is guarded by the policy.
	resourcesGroup := apiV1.Group("/resources")
	{
		resourcesGroup.GET("", r.resourceHandler.ListResources)
		authorize := r.authMiddleware.Authorize("resource")
		resourcesGroup.Any("/:resource", r.resourceHandler.Decide, authorize)
		resourcesGroup.Any("/:resource/:id", r.resourceHandler.Decide, authorize)
	}

	authorizeGroup := apiV1.Group("/authorize")
	{
		authorizeGroup.POST("/batch", r.resourceHandler.Batch)
		authorizeGroup.POST("/view", r.resourceHandler.View)
	}

	usersGroup := apiV1.Group("/users")
	usersGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:username", r.userHandler.GetUser)
		usersGroup.PATCH("/:username", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:username", r.userHandler.DeleteUser)
	}
}
