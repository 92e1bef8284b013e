package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/checkout"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/config"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/mailer"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/payment"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/queue"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/repository"
	queue_publisher "github.com/SamruddhiKhandekar/bookmyseat/internal/service"
)

// BookingHandler groups everything the checkout flow needs: seat and
// booking persistence, the checkout intent store, the payment bridge
// and the confirmation mailer. All methods assume that JWT
// authentication and role validation has already been performed by
// middleware. Multi-step seat mutations run inside a transaction to
// guarantee atomicity.
type BookingHandler struct {
	Cfg         config.Config
	MovieRepo   *repository.MovieRepo   // movie lookups for payment and finalization
	TheaterRepo *repository.TheaterRepo // theater lookups
	SeatRepo    *repository.SeatRepo    // seat state transitions
	BookingRepo *repository.BookingRepo // permanent booking records
	UserRepo    *repository.UserRepo    // recipient address for confirmation mail
	Intents     checkout.Store          // transient per-user checkout state
	Payments    payment.SessionCreator  // remote checkout sessions
	Mail        mailer.Mailer           // confirmation mail transport
}

// NewBookingHandler constructs a new BookingHandler with the provided
// dependencies. All of them must be non-nil.
func NewBookingHandler(cfg config.Config, movieRepo *repository.MovieRepo, theaterRepo *repository.TheaterRepo, seatRepo *repository.SeatRepo, bookingRepo *repository.BookingRepo, userRepo *repository.UserRepo, intents checkout.Store, payments payment.SessionCreator, mail mailer.Mailer) *BookingHandler {
	if movieRepo == nil || theaterRepo == nil || seatRepo == nil || bookingRepo == nil || userRepo == nil || intents == nil || payments == nil || mail == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{
		Cfg:         cfg,
		MovieRepo:   movieRepo,
		TheaterRepo: theaterRepo,
		SeatRepo:    seatRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Intents:     intents,
		Payments:    payments,
		Mail:        mail,
	}
}

// holdWindow returns the configured seat hold expiry window.
func (h *BookingHandler) holdWindow() time.Duration {
	return time.Duration(h.Cfg.HoldTTLMin) * time.Minute
}

// SeatView is a seat in the selection response.
type SeatView struct {
	ID         uint64 `json:"id"`
	SeatNumber string `json:"seat_number"`
	IsReserved bool   `json:"is_reserved"`
	IsBooked   bool   `json:"is_booked"`
}

// GetSeats handles GET /v1/theaters/:id/seats. Before listing it
// sweeps expired holds for the theater so stale reservations do not
// linger past their window. The sweep is lazy: it runs whenever
// someone loads the seat selection, not on a timer.
func (h *BookingHandler) GetSeats(c echo.Context) error {
	theaterID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	ctx := c.Request().Context()
	theater, err := h.TheaterRepo.GetByID(ctx, theaterID)
	if err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	tx, err := h.SeatRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	cutoff := time.Now().UTC().Add(-h.holdWindow())
	if _, err := h.SeatRepo.ReleaseExpiredTx(ctx, tx, theaterID, cutoff); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cleanup expired holds"})
	}
	seats, err := h.SeatRepo.ListByTheaterTx(ctx, tx, theaterID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true
	items := make([]SeatView, 0, len(seats))
	for _, s := range seats {
		items = append(items, SeatView{ID: s.ID, SeatNumber: s.SeatNumber, IsReserved: s.IsReserved, IsBooked: s.IsBooked})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"theater":        echo.Map{"id": theater.ID, "name": theater.Name, "show_time": theater.ShowTime},
		"price_per_seat": h.Cfg.SeatPrice,
		"items":          items,
	})
}

// HoldSeats handles POST /v1/theaters/:id/seats/hold. It places a
// time-limited hold on the selected seats and records the checkout
// intent. The request body must contain a JSON object with a
// "seat_ids" array of positive integers; an empty selection is
// rejected without any state change. Hold acquisition is a single
// conditional update, so two concurrent checkouts can never hold the
// same seat.
func (h *BookingHandler) HoldSeats(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	theaterID, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theater id"})
	}
	var body struct {
		SeatIDs []uint64 `json:"seat_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.SeatIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seat selected"})
	}
	ctx := c.Request().Context()
	theater, err := h.TheaterRepo.GetByID(ctx, theaterID)
	if err != nil {
		if err == repository.ErrTheaterNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "theater not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// deduplicate seat IDs to avoid double counting in the total
	unique := make([]uint64, 0, len(body.SeatIDs))
	seen := make(map[uint64]struct{})
	for _, id := range body.SeatIDs {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seat selected"})
	}

	tx, err := h.SeatRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	now := time.Now().UTC()
	// expire stale holds first so a hold abandoned past its window
	// does not block a new checkout
	if _, err := h.SeatRepo.ReleaseExpiredTx(ctx, tx, theaterID, now.Add(-h.holdWindow())); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cleanup expired holds"})
	}
	unavailable, err := h.SeatRepo.HoldTx(ctx, tx, theaterID, unique, now)
	if err != nil {
		switch err {
		case repository.ErrSeatNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		case repository.ErrSeatUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{
				"error":       "some seats are unavailable",
				"unavailable": unavailable,
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to hold seats"})
		}
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	total := totalPrice(h.Cfg.SeatPrice, len(unique))
	intent := checkout.Intent{
		UserID:     userID,
		MovieID:    theater.MovieID,
		TheaterID:  theaterID,
		SeatIDs:    unique,
		TotalPrice: total,
		CreatedAt:  now,
	}
	if err := h.Intents.Put(ctx, intent); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store checkout"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"seat_ids":    unique,
		"total_price": total,
		"expires_at":  now.Add(h.holdWindow()).Format(time.RFC3339),
	})
}

// PaymentPage handles GET /v1/checkout. It returns the data the
// payment page needs. Without an in-progress checkout the client is
// redirected back to the catalog.
func (h *BookingHandler) PaymentPage(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	intent, err := h.Intents.Get(ctx, userID)
	if err != nil {
		if err == checkout.ErrNoIntent {
			return c.Redirect(http.StatusSeeOther, "/v1/movies")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load checkout"})
	}
	movie, err := h.MovieRepo.GetByID(ctx, intent.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"movie":       echo.Map{"id": movie.ID, "name": movie.Name},
		"seat_ids":    intent.SeatIDs,
		"total_price": intent.TotalPrice,
	})
}

// CreateCheckoutSession handles POST /v1/checkout/session. The amount
// and product name are recomputed from the stored intent and the
// movie row; nothing from the request body is trusted.
func (h *BookingHandler) CreateCheckoutSession(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	intent, err := h.Intents.Get(ctx, userID)
	if err != nil {
		if err == checkout.ErrNoIntent {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no checkout in progress"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load checkout"})
	}
	movie, err := h.MovieRepo.GetByID(ctx, intent.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}
	sessionID, err := h.Payments.CreateSession(ctx, payment.SessionRequest{
		MovieName:  movie.Name,
		Amount:     totalPrice(h.Cfg.SeatPrice, len(intent.SeatIDs)),
		Currency:   h.Cfg.Currency,
		SuccessURL: h.Cfg.BaseURL + "/v1/checkout/success",
		CancelURL:  h.Cfg.BaseURL + "/v1/checkout/failed",
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "failed to create payment session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": sessionID})
}

// PaymentSuccess handles GET /v1/checkout/success: the finalizer. It
// converts the held seats of the stored intent into permanent
// bookings inside one transaction, releases holds that expired while
// the user was paying, sends the confirmation mail and clears the
// intent. Invoked again after the intent is cleared it performs no
// mutation and redirects to the catalog.
func (h *BookingHandler) PaymentSuccess(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()
	intent, err := h.Intents.Get(ctx, userID)
	if err != nil {
		if err == checkout.ErrNoIntent {
			return c.Redirect(http.StatusSeeOther, "/v1/movies")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load checkout"})
	}
	// The intent is gone after this request no matter how it ends.
	defer func() { _ = h.Intents.Delete(ctx, userID) }()

	theater, err := h.TheaterRepo.GetByID(ctx, intent.TheaterID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load theater"})
	}
	movie, err := h.MovieRepo.GetByID(ctx, intent.MovieID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load movie"})
	}

	tx, err := h.SeatRepo.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	seats, err := h.SeatRepo.GetByIDsTx(ctx, tx, intent.SeatIDs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load seats"})
	}
	plan := planSeats(seats, intent.CreatedAt, time.Now().UTC(), h.holdWindow())
	if err := h.SeatRepo.ReleaseTx(ctx, tx, seatIDs(plan.Expired)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release expired holds"})
	}
	if len(plan.Book) > 0 {
		recs := make([]model.Booking, 0, len(plan.Book))
		for _, s := range plan.Book {
			recs = append(recs, model.Booking{
				UserID:    userID,
				SeatID:    s.ID,
				MovieID:   intent.MovieID,
				TheaterID: intent.TheaterID,
			})
		}
		if err := h.BookingRepo.CreateBulkTx(ctx, tx, recs); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create bookings"})
		}
		if err := h.SeatRepo.MarkBookedTx(ctx, tx, seatIDs(plan.Book)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update seat status"})
		}
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	booked := seatNumbers(plan.Book)
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load user"})
	}
	// Mail failure is deliberately not swallowed: the bookings stand,
	// but the request reports the delivery failure.
	if err := h.Mail.SendConfirmation(user.Email, mailer.Confirmation{
		MovieName:   movie.Name,
		TheaterName: theater.Name,
		ShowTime:    theater.ShowTime,
		SeatNumbers: booked,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to send confirmation mail"})
	}

	timeout := len(plan.Expired) > 0 || len(plan.Lost) > 0
	_ = queue_publisher.PublishBookingConfirmed(ctx, queue.BookingConfirmedEvent{
		UserID:          userID,
		MovieID:         movie.ID,
		MovieName:       movie.Name,
		TheaterID:       theater.ID,
		TheaterName:     theater.Name,
		ShowTime:        theater.ShowTime.Format(time.RFC3339),
		SeatNumbers:     booked,
		TotalPrice:      totalPrice(h.Cfg.SeatPrice, len(booked)),
		TimeoutOccurred: timeout,
		ConfirmedAt:     time.Now().UTC().Format(time.RFC3339),
	})

	if timeout {
		return c.JSON(http.StatusOK, echo.Map{
			"status":       "timeout",
			"seats":        booked,
			"movie_name":   movie.Name,
			"theater_name": theater.Name,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":       "success",
		"seats":        booked,
		"movie_name":   movie.Name,
		"theater_name": theater.Name,
	})
}

// PaymentFailed handles GET /v1/checkout/failed. The holds keep
// running down their window; nothing is mutated here.
func (h *BookingHandler) PaymentFailed(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "failed"})
}

// MyBookings handles GET /v1/my-bookings. It returns the customer's
// booking history, newest first.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.BookingRepo.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
