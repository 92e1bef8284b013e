package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfirmationBody(t *testing.T) {
	show := time.Date(2026, time.September, 4, 18, 30, 0, 0, time.UTC)
	body := ConfirmationBody(Confirmation{
		MovieName:   "Interstellar",
		TheaterName: "Galaxy Cinema",
		ShowTime:    show,
		SeatNumbers: []string{"A1", "A2", "A3"},
	})

	assert.Contains(t, body, "Booking Confirmed")
	assert.Contains(t, body, "Movie: Interstellar")
	assert.Contains(t, body, "Theatre: Galaxy Cinema")
	assert.Contains(t, body, "Show Time: Fri, 04 Sep 2026 18:30")
	assert.Contains(t, body, "Seats: A1,A2,A3")
	assert.Contains(t, body, "Enjoy Your Movie")
}

func TestConfirmationBodyNoSeats(t *testing.T) {
	body := ConfirmationBody(Confirmation{MovieName: "Dune"})
	assert.Contains(t, body, "Seats: \n")
}
