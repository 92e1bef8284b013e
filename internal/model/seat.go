package model

import "time"

// Seat describes one bookable seat in a theater.  A seat is in
// exactly one of three states: free, temporarily reserved (held
// during checkout) or permanently booked.  ReservedAt records when
// the current hold was taken; it is nil whenever the seat is not
// held.  A booked seat never carries reservation fields.
//
// Fields:
//  ID         – primary key identifier.
//  TheaterID  – theater to which this seat belongs.
//  SeatNumber – label shown to customers (e.g. "A1").
//  IsReserved – whether the seat is currently held.
//  ReservedAt – when the hold was taken (nil if not held).
//  IsBooked   – whether the seat has been permanently booked.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Seat struct {
    ID         uint64     // seats.id
    TheaterID  uint64     // seats.theater_id
    SeatNumber string     // seats.seat_number
    IsReserved bool       // seats.is_reserved
    ReservedAt *time.Time // seats.reserved_at (nullable)
    IsBooked   bool       // seats.is_booked
    CreatedAt  time.Time  // seats.created_at
    UpdatedAt  time.Time  // seats.updated_at
}

// HoldExpired reports whether the seat's hold has passed the given
// expiry window at the supplied instant.  A seat without an active
// hold never counts as expired.  Keeping the check here gives every
// caller (sweep, finalizer) the same definition of expiry.
func (s *Seat) HoldExpired(now time.Time, window time.Duration) bool {
    if !s.IsReserved || s.ReservedAt == nil {
        return false
    }
    return now.Sub(s.ReservedAt.UTC()) > window
}
