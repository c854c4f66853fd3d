package router

import (
	"voluntree/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams defines the dependencies for the router
type RouterParams struct {
	fx.In

	MatchingHandler *handler.MatchingHandler
}

// Router holds all handlers and registers routes
type Router struct {
	matchingHandler *handler.MatchingHandler
}

// NewRouter creates a new router with all its dependencies
func NewRouter(params RouterParams) *Router {
	return &Router{
		matchingHandler: params.MatchingHandler,
	}
}

// RegisterRoutes sets up all the routes for the application
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	matching := e.Group("/matching")
	matching.POST("/actions", r.matchingHandler.HandleAction)
}
