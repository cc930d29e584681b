package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // Echo web framework used to handle routing

    "github.com/iliyamo/court-reservation/internal/handler"
)

// RegisterRoutes wires the public API onto the provided Echo instance.
// The rate limiter guards every endpoint; the response cache applies
// only to the bookings listing, which is the one read-heavy route.
// Passing nil for either middleware skips it (e.g. when Redis is down).
func RegisterRoutes(e *echo.Echo, h *handler.BookingHandler, rateLimit, cache echo.MiddlewareFunc) {
    if rateLimit != nil {
        e.Use(rateLimit)
    }

    // Health check for load balancers and monitoring.
    e.GET("/healthz", handler.Health)

    // Quote a slot without reserving anything.
    e.POST("/price", h.Price)
    // Reserve a slot: availability checks, coach allocation, pricing
    // and the insert happen atomically inside the handler.
    e.POST("/book", h.Book)
    // List all persisted bookings.
    if cache != nil {
        e.GET("/bookings", h.List, cache)
    } else {
        e.GET("/bookings", h.List)
    }
}
