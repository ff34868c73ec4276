// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"authkit/internal/delivery/http/middleware"
	"authkit/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	AuthGate       *middleware.AuthGate
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	authGate       *middleware.AuthGate
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		authGate:       params.AuthGate,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/state", r.authHandler.State)
	}

	profileGroup := e.Group("/profiles")
	profileGroup.Use(r.authGate.Require)
	{
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.GET("/me", r.profileHandler.Me)
		profileGroup.GET("/search", r.profileHandler.Search)
		profileGroup.GET("/:id", r.profileHandler.Get)
		profileGroup.PATCH("/:id", r.profileHandler.Update)
	}
}
