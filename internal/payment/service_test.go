// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/booking"
	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/events"
)

type fixture struct {
	svc      *Service
	gateway  *mockGateway
	repo     *mockRepository
	bookings *mockBookings
	settings *memSettings
	pub      *recordingPublisher
}

func newFixture() *fixture {
	f := &fixture{
		gateway:  new(mockGateway),
		repo:     new(mockRepository),
		bookings: new(mockBookings),
		settings: &memSettings{s: Settings{
			Currency:      "INR",
			Gateways:      []string{GatewayRazorpay},
			Methods:       []string{MethodCash, MethodCardRazorpay},
			GlobalEnabled: true,
		}},
		pub: &recordingPublisher{},
	}
	f.svc = NewService(Deps{
		Gateway:   f.gateway,
		Repo:      f.repo,
		Settings:  f.settings,
		Bookings:  f.bookings,
		Publisher: f.pub,
		Currency:  "INR",
	})
	return f
}

func decodeOrder(t *testing.T, body string) CreateOrderRequest {
	t.Helper()
	var req CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestCreateOrderEchoesAmountAndCurrency(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantMinor    int64
		wantCurrency string
		wantAmount   string
	}{
		{"number", `{"amount": 1500}`, 150000, "INR", `1500`},
		{"string", `{"amount": "499.50", "currency": "inr"}`, 49950, "inr", `"499.50"`},
		{"explicit currency", `{"amount": 20, "currency": "USD"}`, 2000, "USD", `20`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := decodeOrder(t, tt.body)

			f.gateway.On("CreateOrder", mock.Anything, tt.wantMinor, strings.ToUpper(tt.wantCurrency),
				mock.AnythingOfType("string"), mock.Anything).
				Return(&Order{ID: "order_1", Amount: tt.wantMinor}, nil)
			f.repo.On("Create", mock.Anything, mock.MatchedBy(func(tx *Transaction) bool {
				return tx.OrderID == "order_1" && tx.Status == StatusCreated
			})).Return(nil)

			resp, err := f.svc.CreateOrder(context.Background(), req, "")
			require.NoError(t, err)

			assert.True(t, resp.Success)
			assert.Equal(t, "order_1", resp.OrderID)
			assert.Equal(t, tt.wantCurrency, resp.Currency)

			raw, err := json.Marshal(resp.Amount)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantAmount, string(raw))
			f.gateway.AssertExpectations(t)
		})
	}
}

func TestCreateOrderRejects(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.CreateOrder(context.Background(), decodeOrder(t, `{"amount": "0"}`), "")
		require.ErrorIs(t, err, core.ErrInvalidInput)
	})

	t.Run("restricted user", func(t *testing.T) {
		f := newFixture()
		f.settings.s.RestrictedUsers = []string{"u-blocked"}
		_, err := f.svc.CreateOrder(context.Background(), decodeOrder(t, `{"amount": 10}`), "u-blocked")
		require.ErrorIs(t, err, core.ErrForbidden)
	})

	t.Run("non numeric string", func(t *testing.T) {
		var req CreateOrderRequest
		err := json.Unmarshal([]byte(`{"amount": "ten"}`), &req)
		require.Error(t, err)
	})
}

func TestVerify(t *testing.T) {
	t.Run("tampered signature", func(t *testing.T) {
		f := newFixture()
		f.gateway.On("VerifyPaymentSignature", "order_1", "pay_1", "bad").Return(false)

		_, err := f.svc.Verify(context.Background(), VerifyRequest{
			OrderID: "order_1", PaymentID: "pay_1", Signature: "bad",
		})
		require.ErrorIs(t, err, ErrInvalidSignature)
		f.repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("captured payment confirms booking", func(t *testing.T) {
		f := newFixture()
		bookingID := "b-1"
		f.gateway.On("VerifyPaymentSignature", "order_1", "pay_1", "sig").Return(true)
		f.gateway.On("FetchPayment", mock.Anything, "pay_1").Return(&GatewayPayment{
			ID: "pay_1", OrderID: "order_1", Status: "captured", Amount: 150000,
			Currency: "INR", Method: "card", Email: "a@b.co",
		}, nil)
		f.repo.On("GetByOrderID", mock.Anything, "order_1").Return(&Transaction{
			OrderID: "order_1", BookingID: &bookingID, Amount: 1500, Currency: "INR", Status: StatusCreated,
		}, nil)
		f.repo.On("MarkPaid", mock.Anything, "order_1", "pay_1", "card").Return(true, nil)
		f.bookings.On("Confirm", mock.Anything, bookingID, "pay_1").Return(&booking.BookingResponse{}, nil)

		resp, err := f.svc.Verify(context.Background(), VerifyRequest{
			OrderID: "order_1", PaymentID: "pay_1", Signature: "sig",
		})
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, resp.Status)
		assert.Equal(t, bookingID, resp.BookingID)
		assert.InDelta(t, 1500.0, resp.Amount, 0.001)
		assert.Equal(t, []string{events.RKPaymentPaid}, f.pub.Keys())
		f.bookings.AssertExpectations(t)
	})

	t.Run("payment for another order", func(t *testing.T) {
		f := newFixture()
		f.gateway.On("VerifyPaymentSignature", "order_1", "pay_1", "sig").Return(true)
		f.gateway.On("FetchPayment", mock.Anything, "pay_1").Return(&GatewayPayment{
			ID: "pay_1", OrderID: "order_other", Status: "captured",
		}, nil)

		_, err := f.svc.Verify(context.Background(), VerifyRequest{
			OrderID: "order_1", PaymentID: "pay_1", Signature: "sig",
		})
		require.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func webhookBody(event, status string) []byte {
	return []byte(`{"event":"` + event + `","payload":{"payment":{"entity":{` +
		`"id":"pay_9","order_id":"order_9","amount":50000,"currency":"INR",` +
		`"status":"` + status + `","method":"upi","email":"c@d.co",` +
		`"error_code":"BAD_REQUEST_ERROR","error_description":"declined"}}}}`)
}

func TestWebhook(t *testing.T) {
	t.Run("bad signature", func(t *testing.T) {
		f := newFixture()
		body := webhookBody("payment.captured", "captured")
		f.gateway.On("VerifyWebhookSignature", body, "nope").Return(false)

		err := f.svc.HandleWebhook(context.Background(), body, "nope")
		require.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("captured twice publishes once", func(t *testing.T) {
		f := newFixture()
		body := webhookBody("payment.captured", "captured")
		bookingID := "b-9"
		f.gateway.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.repo.On("GetByOrderID", mock.Anything, "order_9").Return(&Transaction{
			OrderID: "order_9", BookingID: &bookingID, Status: StatusCreated,
		}, nil)
		f.repo.On("MarkPaid", mock.Anything, "order_9", "pay_9", "upi").Return(true, nil).Once()
		f.repo.On("MarkPaid", mock.Anything, "order_9", "pay_9", "upi").Return(false, nil).Once()
		f.bookings.On("Confirm", mock.Anything, bookingID, "pay_9").Return(&booking.BookingResponse{}, nil)

		require.NoError(t, f.svc.HandleWebhook(context.Background(), body, "sig"))
		require.NoError(t, f.svc.HandleWebhook(context.Background(), body, "sig"))

		assert.Equal(t, []string{events.RKPaymentPaid}, f.pub.Keys())
	})

	t.Run("cancelled booking does not fail the webhook", func(t *testing.T) {
		f := newFixture()
		body := webhookBody("payment.captured", "captured")
		bookingID := "b-9"
		f.gateway.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.repo.On("GetByOrderID", mock.Anything, "order_9").Return(&Transaction{
			OrderID: "order_9", BookingID: &bookingID,
		}, nil)
		f.repo.On("MarkPaid", mock.Anything, "order_9", "pay_9", "upi").Return(true, nil)
		f.bookings.On("Confirm", mock.Anything, bookingID, "pay_9").Return(nil, booking.ErrInvalidTransition)

		require.NoError(t, f.svc.HandleWebhook(context.Background(), body, "sig"))
	})

	t.Run("failed marks booking", func(t *testing.T) {
		f := newFixture()
		body := webhookBody("payment.failed", "failed")
		bookingID := "b-9"
		f.gateway.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.repo.On("GetByOrderID", mock.Anything, "order_9").Return(&Transaction{
			OrderID: "order_9", BookingID: &bookingID, Status: StatusCreated,
		}, nil)
		f.repo.On("MarkFailed", mock.Anything, "order_9", "pay_9").Return(nil)
		f.bookings.On("MarkPaymentFailed", mock.Anything, bookingID).Return(nil)

		require.NoError(t, f.svc.HandleWebhook(context.Background(), body, "sig"))
		assert.Equal(t, []string{events.RKPaymentFailed}, f.pub.Keys())
		f.bookings.AssertExpectations(t)
	})

	t.Run("other events are ignored", func(t *testing.T) {
		f := newFixture()
		body := webhookBody("order.paid", "captured")
		f.gateway.On("VerifyWebhookSignature", body, "sig").Return(true)

		require.NoError(t, f.svc.HandleWebhook(context.Background(), body, "sig"))
		f.repo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
	})
}

func TestRefund(t *testing.T) {
	f := newFixture()
	f.gateway.On("FetchPayment", mock.Anything, "pay_1").Return(&GatewayPayment{ID: "pay_1", Amount: 100000}, nil)
	f.gateway.On("Refund", mock.Anything, "pay_1", int64(100000)).Return(&Refund{ID: "rfnd_1", Status: "processed"}, nil)
	f.repo.On("MarkRefunded", mock.Anything, "pay_1").Return(nil)

	resp, err := f.svc.Refund(context.Background(), RefundRequest{PaymentID: "pay_1"})
	require.NoError(t, err)
	assert.Equal(t, "rfnd_1", resp.RefundID)
	assert.InDelta(t, 1000.0, resp.Amount, 0.001)

	tooMuch := 2000.0
	_, err = f.svc.Refund(context.Background(), RefundRequest{PaymentID: "pay_1", Amount: &tooMuch})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSettings(t *testing.T) {
	s := &Settings{
		Gateways:        []string{},
		Methods:         []string{MethodCash, MethodCardRazorpay},
		GlobalEnabled:   true,
		RestrictedUsers: []string{"u2"},
	}

	assert.True(t, s.Allows("u1"))
	assert.False(t, s.Allows("u2"))

	methods := s.EnabledMethods()
	require.Len(t, methods, 1)
	assert.Equal(t, MethodCash, methods[0].Code)

	s.Gateways = []string{GatewayRazorpay}
	assert.Len(t, s.EnabledMethods(), 2)

	s.GlobalEnabled = false
	assert.False(t, s.Allows("u1"))
}

func TestAllowedHandler(t *testing.T) {
	f := newFixture()
	h := NewHandler(f.svc)

	r := chi.NewRouter()
	pass := func(next http.Handler) http.Handler { return next }
	h.RegisterRoutes(r, pass, pass)

	req := httptest.NewRequest(http.MethodGet, "/payments/allowed/u1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/payments/methods", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MethodCardRazorpay)
}

func sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpaySignatures(t *testing.T) {
	rp, err := NewRazorpay(config.RazorpayConfig{
		KeyID: "rzp_test_key", KeySecret: "key-secret", WebhookSecret: "hook-secret",
	})
	require.NoError(t, err)

	good := sign("key-secret", "order_1|pay_1")
	assert.True(t, rp.VerifyPaymentSignature("order_1", "pay_1", good))
	assert.False(t, rp.VerifyPaymentSignature("order_1", "pay_2", good))
	assert.False(t, rp.VerifyPaymentSignature("order_1", "pay_1", sign("other", "order_1|pay_1")))

	body := []byte(`{"event":"payment.captured"}`)
	assert.True(t, rp.VerifyWebhookSignature(body, sign("hook-secret", string(body))))
	assert.False(t, rp.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), sign("hook-secret", string(body))))

	_, err = NewRazorpay(config.RazorpayConfig{})
	require.Error(t, err)
}
