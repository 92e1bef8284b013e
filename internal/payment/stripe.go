// Package payment bridges checkouts to the Stripe hosted payment
// page. The service only ever creates a session for a single line
// item: the movie name at the server-computed total. Everything else
// (card entry, 3DS, redirects) happens on Stripe's side.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// SessionRequest describes one checkout session. Amount is in major
// currency units (the fixed per-seat price times the seat count);
// Stripe wants the minor unit, which buildSessionParams converts to.
type SessionRequest struct {
	MovieName  string
	Amount     int64
	Currency   string
	SuccessURL string
	CancelURL  string
}

// SessionCreator is the interface handlers depend on so tests can
// substitute a fake gateway.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// StripeBridge implements SessionCreator against the Stripe API.
type StripeBridge struct{}

// NewStripeBridge sets the global Stripe key and returns a bridge.
func NewStripeBridge(secretKey string) *StripeBridge {
	stripe.Key = secretKey
	return &StripeBridge{}
}

// buildSessionParams assembles the checkout session parameters:
// card payment, one line item with quantity 1, payment mode, and the
// success/cancel redirect targets.
func buildSessionParams(req SessionRequest) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.MovieName),
					},
					// Stripe expects the smallest currency unit.
					UnitAmount: stripe.Int64(req.Amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
}

// CreateSession creates the remote session and returns its opaque
// identifier for the client-side redirect.
func (b *StripeBridge) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	params := buildSessionParams(req)
	params.Context = ctx
	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.ID, nil
}
