// AngelaMos | 2026
// mock_test.go

package payment

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/cricketacademy/academy-api/internal/booking"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(
	ctx context.Context,
	amount int64,
	currency, receipt string,
	notes map[string]string,
) (*Order, error) {
	args := m.Called(ctx, amount, currency, receipt, notes)
	if o, ok := args.Get(0).(*Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) FetchPayment(ctx context.Context, id string) (*GatewayPayment, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*GatewayPayment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) Refund(ctx context.Context, id string, amount int64) (*Refund, error) {
	args := m.Called(ctx, id, amount)
	if r, ok := args.Get(0).(*Refund); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return m.Called(orderID, paymentID, signature).Bool(0)
}

func (m *mockGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return m.Called(body, signature).Bool(0)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, t *Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepository) GetByOrderID(ctx context.Context, id string) (*Transaction, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*Transaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByPaymentID(ctx context.Context, id string) (*Transaction, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*Transaction); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) MarkPaid(ctx context.Context, orderID, paymentID, method string) (bool, error) {
	args := m.Called(ctx, orderID, paymentID, method)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) MarkFailed(ctx context.Context, orderID, paymentID string) error {
	return m.Called(ctx, orderID, paymentID).Error(0)
}

func (m *mockRepository) MarkRefunded(ctx context.Context, paymentID string) error {
	return m.Called(ctx, paymentID).Error(0)
}

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) Confirm(ctx context.Context, id, paymentID string) (*booking.BookingResponse, error) {
	args := m.Called(ctx, id, paymentID)
	if b, ok := args.Get(0).(*booking.BookingResponse); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookings) MarkPaymentFailed(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type memSettings struct {
	mu sync.Mutex
	s  Settings
}

func (m *memSettings) Get(context.Context) (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.s
	return &s, nil
}

func (m *memSettings) Put(_ context.Context, s *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = *s
	return nil
}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *recordingPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}
