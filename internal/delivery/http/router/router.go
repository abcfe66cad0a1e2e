// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campusconnect/internal/delivery/http/middleware"
	"campusconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StudentHandler *handler.StudentHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	studentHandler *handler.StudentHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		studentHandler: params.StudentHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	// Student account routes
	studentGroup := api.Group("/students")
	{
		studentGroup.POST("/signup", r.studentHandler.Signup)
		studentGroup.POST("/login", r.studentHandler.Login)
	}

	// Profile routes require authentication
	profileGroup := studentGroup.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.studentHandler.GetProfile)
		profileGroup.PUT("", r.studentHandler.UpdateProfile)
	}

	// Mounted route groups without behavior yet.
	api.Any("/clubs", handler.NotImplemented)
	api.Any("/clubs/*", handler.NotImplemented)
	api.Any("/admin", handler.NotImplemented)
	api.Any("/admin/*", handler.NotImplemented)
	api.Any("/events", handler.NotImplemented)
	api.Any("/events/*", handler.NotImplemented)
}
