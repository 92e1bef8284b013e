package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntentValidate(t *testing.T) {
	intent := Intent{
		UserID:     1,
		MovieID:    2,
		TheaterID:  3,
		SeatIDs:    []uint64{10, 11},
		TotalPrice: 400,
		CreatedAt:  time.Now().UTC(),
	}
	assert.NoError(t, intent.Validate())
}

func TestIntentValidateMissingIDs(t *testing.T) {
	cases := []struct {
		name   string
		intent Intent
	}{
		{"no user", Intent{MovieID: 2, TheaterID: 3, SeatIDs: []uint64{10}}},
		{"no movie", Intent{UserID: 1, TheaterID: 3, SeatIDs: []uint64{10}}},
		{"no theater", Intent{UserID: 1, MovieID: 2, SeatIDs: []uint64{10}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.intent.Validate())
		})
	}
}

func TestIntentValidateNoSeats(t *testing.T) {
	intent := Intent{UserID: 1, MovieID: 2, TheaterID: 3}
	assert.Error(t, intent.Validate())
}

func TestIntentKey(t *testing.T) {
	assert.Equal(t, "checkout:intent:42", intentKey(42))
}
