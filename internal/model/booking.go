package model

import "time"

// Booking is the permanent record created when a held seat survives
// payment.  Exactly one booking exists per seat per completed
// checkout; bookings are never updated or deleted by the booking
// flow.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – customer who paid for the seat.
//  SeatID    – seat that was booked.
//  MovieID   – movie the booking is for.
//  TheaterID – theater of the showing.
//  BookedAt  – when the booking was finalized.
type Booking struct {
    ID        uint64    // bookings.id
    UserID    uint64    // bookings.user_id
    SeatID    uint64    // bookings.seat_id
    MovieID   uint64    // bookings.movie_id
    TheaterID uint64    // bookings.theater_id
    BookedAt  time.Time // bookings.booked_at
}
