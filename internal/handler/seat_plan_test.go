package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/model"
)

func seatAt(id uint64, number string, reservedAgo time.Duration, now time.Time) model.Seat {
	at := now.Add(-reservedAgo)
	return model.Seat{ID: id, SeatNumber: number, IsReserved: true, ReservedAt: &at}
}

func TestPlanSeatsBooksFreshHolds(t *testing.T) {
	now := time.Now().UTC()
	window := 15 * time.Minute
	heldAt := now.Add(-2 * time.Minute)
	seats := []model.Seat{
		seatAt(1, "A1", 2*time.Minute, now),
		seatAt(2, "A2", 2*time.Minute, now),
	}

	plan := planSeats(seats, heldAt, now, window)

	assert.Len(t, plan.Book, 2)
	assert.Empty(t, plan.Expired)
	assert.Empty(t, plan.Lost)
	assert.Empty(t, plan.Skipped)
	assert.Equal(t, []string{"A1", "A2"}, seatNumbers(plan.Book))
}

func TestPlanSeatsReleasesExpiredHolds(t *testing.T) {
	now := time.Now().UTC()
	window := 15 * time.Minute
	seats := []model.Seat{
		seatAt(1, "A1", 2*time.Minute, now),
		seatAt(2, "A2", 20*time.Minute, now), // held past the window
	}

	plan := planSeats(seats, now.Add(-2*time.Minute), now, window)

	assert.Equal(t, []uint64{1}, seatIDs(plan.Book))
	assert.Equal(t, []uint64{2}, seatIDs(plan.Expired))
	assert.Empty(t, plan.Lost)
	assert.Empty(t, plan.Skipped)
}

func TestPlanSeatsSkipsAlreadyBooked(t *testing.T) {
	now := time.Now().UTC()
	booked := model.Seat{ID: 3, SeatNumber: "B1", IsBooked: true}
	seats := []model.Seat{booked, seatAt(4, "B2", time.Minute, now)}

	plan := planSeats(seats, now.Add(-time.Minute), now, 15*time.Minute)

	assert.Equal(t, []uint64{4}, seatIDs(plan.Book))
	assert.Equal(t, []uint64{3}, seatIDs(plan.Skipped))
	assert.Empty(t, plan.Expired)
	assert.Empty(t, plan.Lost)
}

func TestPlanSeatsExpiredAndBookedIsExpiredFirst(t *testing.T) {
	// A booked seat never carries reservation fields, but if a stale
	// row has both the expiry rule must not release a booked seat into
	// a new booking.
	now := time.Now().UTC()
	at := now.Add(-30 * time.Minute)
	seat := model.Seat{ID: 5, SeatNumber: "C1", IsBooked: true, IsReserved: true, ReservedAt: &at}

	plan := planSeats([]model.Seat{seat}, now.Add(-30*time.Minute), now, 15*time.Minute)

	assert.Empty(t, plan.Book)
	assert.Equal(t, []uint64{5}, seatIDs(plan.Expired))
}

func TestPlanSeatsTreatsSweptSeatAsLost(t *testing.T) {
	// A hold released by the lazy sweep leaves the seat free
	// (is_reserved cleared, no timestamp). Such a seat must never be
	// booked from the free state; it counts as a timeout, and there is
	// no hold of ours left to release.
	now := time.Now().UTC()
	swept := model.Seat{ID: 9, SeatNumber: "D4"}

	plan := planSeats([]model.Seat{swept}, now.Add(-2*time.Minute), now, 15*time.Minute)

	assert.Empty(t, plan.Book)
	assert.Empty(t, plan.Expired)
	assert.Empty(t, plan.Skipped)
	assert.Equal(t, []uint64{9}, seatIDs(plan.Lost))
}

func TestPlanSeatsStaleSelectionDoesNotClaimRivalHold(t *testing.T) {
	// The selection is older than the window, so any fresh hold on its
	// seats belongs to a later checkout. The seat is lost for this
	// checkout but must not land in Expired, which would release the
	// rival's live hold.
	now := time.Now().UTC()
	window := 15 * time.Minute
	rival := seatAt(6, "C2", time.Minute, now)

	plan := planSeats([]model.Seat{rival}, now.Add(-20*time.Minute), now, window)

	assert.Empty(t, plan.Book)
	assert.Empty(t, plan.Expired)
	assert.Equal(t, []uint64{6}, seatIDs(plan.Lost))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, int64(400), totalPrice(200, 2))
	assert.Equal(t, int64(0), totalPrice(200, 0))
	assert.Equal(t, int64(1000), totalPrice(200, 5))
}
