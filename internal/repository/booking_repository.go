package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

// BookingCount pairs an entity name with its number of bookings.
// The admin dashboard uses it for both per-movie and per-theater
// popularity listings.
type BookingCount struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Count uint64 `json:"bookings"`
}

// UserBookingRow is one row of a customer's booking history with the
// denormalized movie, theater and seat details joined in.
type UserBookingRow struct {
	ID          uint64    `json:"id"`
	MovieName   string    `json:"movie"`
	TheaterName string    `json:"theater"`
	ShowTime    time.Time `json:"show_time"`
	SeatNumber  string    `json:"seat_number"`
	BookedAt    time.Time `json:"booked_at"`
}

// BookingRepo provides data access to the bookings table. Bookings
// are insert-only from the application's point of view; nothing in
// the booking flow updates or deletes them.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the provided database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateBulkTx inserts one booking row per record within the provided
// transaction. Passing an empty slice has no effect and returns nil.
func (r *BookingRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, recs []model.Booking) error {
	if len(recs) == 0 {
		return nil
	}
	query := `INSERT INTO bookings (user_id, seat_id, movie_id, theater_id) VALUES `
	args := make([]any, 0, len(recs)*4)
	for i, b := range recs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, b.UserID, b.SeatID, b.MovieID, b.TheaterID)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// CountAll returns the total number of bookings. The dashboard
// multiplies this by the fixed per-seat price to compute revenue.
func (r *BookingRepo) CountAll(ctx context.Context) (uint64, error) {
	var n uint64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}

// PopularMovies returns every movie with its booking count, most
// booked first. Movies without bookings appear with a zero count.
func (r *BookingRepo) PopularMovies(ctx context.Context) ([]BookingCount, error) {
	const q = `SELECT m.id, m.name, COUNT(b.id) AS total
	           FROM movies m
	           LEFT JOIN bookings b ON b.movie_id = m.id
	           GROUP BY m.id, m.name
	           ORDER BY total DESC, m.name`
	return r.queryCounts(ctx, q)
}

// BusiestTheaters returns every theater with its booking count, most
// booked first.
func (r *BookingRepo) BusiestTheaters(ctx context.Context) ([]BookingCount, error) {
	const q = `SELECT t.id, t.name, COUNT(b.id) AS total
	           FROM theaters t
	           LEFT JOIN bookings b ON b.theater_id = t.id
	           GROUP BY t.id, t.name
	           ORDER BY total DESC, t.name`
	return r.queryCounts(ctx, q)
}

func (r *BookingRepo) queryCounts(ctx context.Context, q string) ([]BookingCount, error) {
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var counts []BookingCount
	for rows.Next() {
		var c BookingCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// ListByUser returns the booking history for one customer, newest
// first, with movie, theater and seat details joined in.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]UserBookingRow, error) {
	const q = `SELECT b.id, m.name, t.name, t.show_time, s.seat_number, b.booked_at
	           FROM bookings b
	           JOIN movies m ON m.id = b.movie_id
	           JOIN theaters t ON t.id = b.theater_id
	           JOIN seats s ON s.id = b.seat_id
	           WHERE b.user_id = ?
	           ORDER BY b.booked_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []UserBookingRow
	for rows.Next() {
		var row UserBookingRow
		if err := rows.Scan(&row.ID, &row.MovieName, &row.TheaterName, &row.ShowTime, &row.SeatNumber, &row.BookedAt); err != nil {
			return nil, err
		}
		items = append(items, row)
	}
	return items, rows.Err()
}
