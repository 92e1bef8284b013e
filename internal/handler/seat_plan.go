package handler

import (
	"time"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

// seatPlan is the finalizer's classification of a checkout's seats.
// Expired seats are released and flagged as a timeout without failing
// the rest of the checkout. Lost seats are also flagged as a timeout
// but left untouched: their hold is gone already, and whatever state
// they carry now (free, or re-held by a later checkout) is not ours
// to mutate. Already-booked seats are skipped so a repeated callback
// cannot create a duplicate booking.
type seatPlan struct {
	Book    []model.Seat // held by this checkout, not expired, not yet booked
	Expired []model.Seat // still holding our stale hold; release it
	Lost    []model.Seat // hold swept away or taken over; do not touch
	Skipped []model.Seat // already booked, nothing to do
}

// planSeats classifies the selected seats at finalization time. A
// seat is bookable only while the hold taken at heldAt is still
// standing: a hold older than the window counts as lost even if no
// sweep has run yet, a seat that is no longer reserved was swept free
// after the window passed, and a seat that is reserved again even
// though the selection itself is older than the window belongs to a
// later checkout. Only the first of those still carries our hold, so
// only it is released. A seat that is already booked produces no
// second booking.
func planSeats(seats []model.Seat, heldAt, now time.Time, window time.Duration) seatPlan {
	stale := now.Sub(heldAt) > window
	var plan seatPlan
	for _, s := range seats {
		switch {
		case s.HoldExpired(now, window):
			plan.Expired = append(plan.Expired, s)
		case s.IsBooked:
			plan.Skipped = append(plan.Skipped, s)
		case !s.IsReserved || stale:
			plan.Lost = append(plan.Lost, s)
		default:
			plan.Book = append(plan.Book, s)
		}
	}
	return plan
}

// totalPrice computes the checkout total: the fixed per-seat price
// times the number of selected seats.
func totalPrice(perSeat int64, seatCount int) int64 {
	return perSeat * int64(seatCount)
}

// seatIDs extracts the ids of a seat slice.
func seatIDs(seats []model.Seat) []uint64 {
	ids := make([]uint64, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID)
	}
	return ids
}

// seatNumbers extracts the display labels of a seat slice.
func seatNumbers(seats []model.Seat) []string {
	nums := make([]string, 0, len(seats))
	for _, s := range seats {
		nums = append(nums, s.SeatNumber)
	}
	return nums
}
