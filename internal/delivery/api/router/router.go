// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pos/config"
	"pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NavigationHandler *handler.NavigationHandler
	BasketHandler     *handler.BasketHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Gatherer          prometheus.Gatherer
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	navigationHandler *handler.NavigationHandler
	basketHandler     *handler.BasketHandler
	authMiddleware    *middleware.AuthMiddleware
	gatherer          prometheus.Gatherer
	config            *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		navigationHandler: params.NavigationHandler,
		basketHandler:     params.BasketHandler,
		authMiddleware:    params.AuthMiddleware,
		gatherer:          params.Gatherer,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/navigation", r.navigationHandler.GetNavigation)

	basketGroup := apiV1.Group("/basket")
	{
		basketGroup.GET("", r.basketHandler.GetBasket)
		basketGroup.DELETE("", r.basketHandler.ClearBasket)
		basketGroup.POST("/items", r.basketHandler.AddItem)
		basketGroup.POST("/items/remove", r.basketHandler.RemoveSelected)
		basketGroup.PATCH("/items/:id", r.basketHandler.UpdateQuantity)
		basketGroup.DELETE("/items/:id", r.basketHandler.RemoveItem)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/navigation/:role", r.navigationHandler.PreviewNavigation)
	}
}
