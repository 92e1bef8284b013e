package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamruddhiKhandekar/bookmyseat/internal/checkout"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/config"
	"github.com/SamruddhiKhandekar/bookmyseat/internal/payment"
)

// fakeIntentStore is an in-memory checkout.Store.
type fakeIntentStore struct {
	intents map[uint64]checkout.Intent
	deletes int
}

func newFakeIntentStore() *fakeIntentStore {
	return &fakeIntentStore{intents: make(map[uint64]checkout.Intent)}
}

func (f *fakeIntentStore) Put(_ context.Context, intent checkout.Intent) error {
	f.intents[intent.UserID] = intent
	return nil
}

func (f *fakeIntentStore) Get(_ context.Context, userID uint64) (checkout.Intent, error) {
	intent, ok := f.intents[userID]
	if !ok {
		return checkout.Intent{}, checkout.ErrNoIntent
	}
	return intent, nil
}

func (f *fakeIntentStore) Delete(_ context.Context, userID uint64) error {
	delete(f.intents, userID)
	f.deletes++
	return nil
}

// fakeSessionCreator records the last request and returns a fixed id.
type fakeSessionCreator struct {
	last payment.SessionRequest
	err  error
}

func (f *fakeSessionCreator) CreateSession(_ context.Context, req payment.SessionRequest) (string, error) {
	f.last = req
	return "cs_test_123", f.err
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPaymentSuccessWithoutIntentRedirectsToCatalog(t *testing.T) {
	h := &BookingHandler{
		Cfg:     config.Config{HoldTTLMin: 15, SeatPrice: 200},
		Intents: newFakeIntentStore(),
	}
	c, rec := newContext(t, http.MethodGet, "/v1/checkout/success", "")
	c.Set("user_id", uint64(7))

	require.NoError(t, h.PaymentSuccess(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/v1/movies", rec.Header().Get(echo.HeaderLocation))
}

func TestPaymentPageWithoutIntentRedirectsToCatalog(t *testing.T) {
	h := &BookingHandler{
		Cfg:     config.Config{HoldTTLMin: 15, SeatPrice: 200},
		Intents: newFakeIntentStore(),
	}
	c, rec := newContext(t, http.MethodGet, "/v1/checkout", "")
	c.Set("user_id", uint64(7))

	require.NoError(t, h.PaymentPage(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestCreateCheckoutSessionWithoutIntentFails(t *testing.T) {
	gateway := &fakeSessionCreator{}
	h := &BookingHandler{
		Cfg:      config.Config{SeatPrice: 200, Currency: "inr", BaseURL: "https://booking.example.com"},
		Intents:  newFakeIntentStore(),
		Payments: gateway,
	}
	c, rec := newContext(t, http.MethodPost, "/v1/checkout/session", "")
	c.Set("user_id", uint64(7))

	require.NoError(t, h.CreateCheckoutSession(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, gateway.last.MovieName)
}

func TestHoldSeatsRejectsEmptySelection(t *testing.T) {
	h := &BookingHandler{
		Cfg:     config.Config{HoldTTLMin: 15, SeatPrice: 200},
		Intents: newFakeIntentStore(),
	}
	c, rec := newContext(t, http.MethodPost, "/v1/theaters/3/seats/hold", `{"seat_ids":[]}`)
	c.SetParamNames("id")
	c.SetParamValues("3")
	c.Set("user_id", uint64(7))

	require.NoError(t, h.HoldSeats(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no seat selected")
}

func TestHoldSeatsRequiresAuthenticatedUser(t *testing.T) {
	h := &BookingHandler{Intents: newFakeIntentStore()}
	c, rec := newContext(t, http.MethodPost, "/v1/theaters/3/seats/hold", `{"seat_ids":[1]}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.HoldSeats(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentFailed(t *testing.T) {
	h := &BookingHandler{}
	c, rec := newContext(t, http.MethodGet, "/v1/checkout/failed", "")

	require.NoError(t, h.PaymentFailed(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed")
}
