package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoldExpired(t *testing.T) {
	now := time.Date(2026, time.September, 4, 18, 0, 0, 0, time.UTC)
	window := 15 * time.Minute
	at := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	cases := []struct {
		name string
		seat Seat
		want bool
	}{
		{"not reserved", Seat{}, false},
		{"reserved without timestamp", Seat{IsReserved: true}, false},
		{"fresh hold", Seat{IsReserved: true, ReservedAt: at(time.Minute)}, false},
		{"exactly at window", Seat{IsReserved: true, ReservedAt: at(window)}, false},
		{"just past window", Seat{IsReserved: true, ReservedAt: at(window + time.Second)}, true},
		{"long abandoned", Seat{IsReserved: true, ReservedAt: at(2 * time.Hour)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.seat.HoldExpired(now, window))
		})
	}
}
