package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip planner API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TripHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	// Trips group
	trips := api.Group("/trips")
	trips.POST("/plan", h.PlanTrip)

	// Blackout calendar
	api.GET("/blackouts", h.Blackouts)

	// Cache administration
	cacheGroup := api.Group("/cache")
	cacheGroup.POST("/clear", h.CacheClear)
	cacheGroup.GET("/stats", h.CacheStats)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TripHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	trips := api.Group("/trips")
	trips.POST("/plan", h.PlanTrip)

	api.GET("/blackouts", h.Blackouts)

	cacheGroup := api.Group("/cache")
	cacheGroup.POST("/clear", h.CacheClear)
	cacheGroup.GET("/stats", h.CacheStats)
}
