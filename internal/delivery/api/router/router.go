// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodcart/internal/delivery/api/middleware"
	"foodcart/internal/delivery/api/router/handler"
	"foodcart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler      *handler.OrderHandler
	CatalogHandler    *handler.CatalogHandler
	AssignmentHandler *handler.AssignmentHandler
	SessionHandler    *handler.SessionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler      *handler.OrderHandler
	catalogHandler    *handler.CatalogHandler
	assignmentHandler *handler.AssignmentHandler
	sessionHandler    *handler.SessionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:      params.OrderHandler,
		catalogHandler:    params.CatalogHandler,
		assignmentHandler: params.AssignmentHandler,
		sessionHandler:    params.SessionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
	}

	// Public storefront API
	apiV1 := e.Group("/api/v1")
	{
		apiV1.GET("/products", r.catalogHandler.ListProducts)
		apiV1.GET("/banners", r.catalogHandler.ListBanners)

		apiV1.POST("/orders", r.orderHandler.CreateOrder)
		apiV1.GET("/orders/:id", r.orderHandler.GetOrder)
		apiV1.GET("/orders/:id/qr", r.orderHandler.GetOrderQR)
	}

	// Manager panel requires a token with the "manager" role
	managerGroup := e.Group("/manager")
	managerGroup.Use(r.authMiddleware.Authenticate)
	managerGroup.Use(r.authMiddleware.RequireRole(entity.RoleManager))
	{
		managerGroup.GET("/orders", r.assignmentHandler.ListActiveOrders)
		managerGroup.GET("/orders/:id/restaurants", r.assignmentHandler.QualifyingRestaurants)
		managerGroup.POST("/orders/:id/restaurant", r.assignmentHandler.AssignRestaurant)
		managerGroup.POST("/orders/:id/status", r.assignmentHandler.AdvanceStatus)
		managerGroup.POST("/orders/:id/called", r.assignmentHandler.MarkCalled)

		managerGroup.GET("/restaurants", r.catalogHandler.ListRestaurants)
		managerGroup.GET("/products", r.catalogHandler.GetAvailabilityMatrix)
		managerGroup.PUT("/restaurants/:id/menu/:productId", r.catalogHandler.SetMenuAvailability)
	}
}
