package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestBuildSessionParams(t *testing.T) {
	params := buildSessionParams(SessionRequest{
		MovieName:  "Interstellar",
		Amount:     600,
		Currency:   "inr",
		SuccessURL: "https://booking.example.com/v1/checkout/success",
		CancelURL:  "https://booking.example.com/v1/checkout/failed",
	})

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	require.NotNil(t, item.PriceData)
	assert.Equal(t, "inr", *item.PriceData.Currency)
	assert.Equal(t, "Interstellar", *item.PriceData.ProductData.Name)
	// 600 major units become 60000 minor units.
	assert.Equal(t, int64(60000), *item.PriceData.UnitAmount)
	assert.Equal(t, int64(1), *item.Quantity)

	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *params.Mode)
	assert.Equal(t, "https://booking.example.com/v1/checkout/success", *params.SuccessURL)
	assert.Equal(t, "https://booking.example.com/v1/checkout/failed", *params.CancelURL)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
}
