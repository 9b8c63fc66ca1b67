// Package router registers the HTTP routes of the API.
package router

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public user routes
	api.POST("/users", r.userHandler.Register)
	api.POST("/users/login", r.userHandler.Login)

	currentGroup := api.Group("/users/current", r.authMiddleware.Authenticate)
	{
		currentGroup.GET("", r.userHandler.GetCurrent)
		currentGroup.PATCH("", r.userHandler.UpdateCurrent)
		currentGroup.DELETE("", r.userHandler.Logout)
	}

	contactsGroup := api.Group("/contacts", r.authMiddleware.Authenticate)
	{
		contactsGroup.POST("", r.contactHandler.Create)
		contactsGroup.GET("", r.contactHandler.Search)
		contactsGroup.GET("/:id", r.contactHandler.Get)
		contactsGroup.PUT("/:id", r.contactHandler.Update)
		contactsGroup.DELETE("/:id", r.contactHandler.Delete)
		contactsGroup.GET("/:id/qrcode", r.contactHandler.QRCode)
	}
}
