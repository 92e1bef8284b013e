package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/config"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/repository"
)

// AdminHandler serves the staff-only reporting dashboard. It is
// read-only: every figure is derived from the bookings table.
type AdminHandler struct {
	Cfg         config.Config
	BookingRepo *repository.BookingRepo
}

// NewAdminHandler constructs a new AdminHandler.
func NewAdminHandler(cfg config.Config, bookingRepo *repository.BookingRepo) *AdminHandler {
	if bookingRepo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, BookingRepo: bookingRepo}
}

// Dashboard handles GET /v1/admin/dashboard. Revenue is the booking
// count times the fixed per-seat price; every completed seat was sold
// at that price, so no per-booking sum is needed. Popularity lists
// are sorted most-booked first.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	count, err := h.BookingRepo.CountAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to count bookings"})
	}
	popularMovies, err := h.BookingRepo.PopularMovies(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie stats"})
	}
	busiestTheaters, err := h.BookingRepo.BusiestTheaters(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load theater stats"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue":    int64(count) * h.Cfg.SeatPrice,
		"total_bookings":   count,
		"popular_movies":   popularMovies,
		"busiest_theaters": busiestTheaters,
	})
}
