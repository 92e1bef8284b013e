// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a checkout is finalized.
// It contains enough information for downstream consumers to log,
// notify, or feed analytics without querying the primary database.
// SeatNumbers lists only the seats that were actually booked; seats
// whose hold expired before finalization are excluded.
type BookingConfirmedEvent struct {
    UserID          uint64   `json:"user_id"`
    MovieID         uint64   `json:"movie_id"`
    MovieName       string   `json:"movie_name"`
    TheaterID       uint64   `json:"theater_id"`
    TheaterName     string   `json:"theater_name"`
    ShowTime        string   `json:"show_time"`
    SeatNumbers     []string `json:"seats"`
    TotalPrice      int64    `json:"total_price"`
    TimeoutOccurred bool     `json:"timeout_occurred"`
    ConfirmedAt     string   `json:"confirmed_at"`
}
