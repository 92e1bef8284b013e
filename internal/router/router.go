// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/handler"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance. Currently it exposes only a health
// check used by load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes.
// Unauthenticated operations live under /v1/auth, while protected
// endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("STAFF", "CUSTOMER"))
	auth.GET("/me", a.Me)
}

// RegisterCatalog registers unauthenticated browse endpoints: movie
// listing with filters, movie detail, the genre list and the theaters
// showing a movie. The optional middleware (rate limiting, response
// cache) is applied only here; the booking flow is never cached.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	g.GET("/movies", h.ListMovies)
	g.GET("/movies/:id", h.GetMovie)
	g.GET("/movies/:id/theaters", h.ListTheaters)
	g.GET("/genres", h.ListGenres)
}

// RegisterBooking registers the checkout flow under /v1. All routes
// require a valid JWT; customers and staff can both book seats.
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER", "STAFF"),
	)
	g.GET("/theaters/:id/seats", h.GetSeats)
	g.POST("/theaters/:id/seats/hold", h.HoldSeats)
	g.GET("/checkout", h.PaymentPage)
	g.POST("/checkout/session", h.CreateCheckoutSession)
	g.GET("/checkout/success", h.PaymentSuccess)
	g.GET("/checkout/failed", h.PaymentFailed)
	g.GET("/my-bookings", h.MyBookings)
}

// RegisterAdmin registers the staff-only reporting dashboard.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("STAFF"),
	)
	g.GET("/dashboard", h.Dashboard)
}
