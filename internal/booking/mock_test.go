// AngelaMos | 2026
// mock_test.go

package booking

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateIfFree(ctx context.Context, b *Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepository) SaveIfFree(ctx context.Context, b *Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepository) Save(ctx context.Context, b *Booking, from string) error {
	return m.Called(ctx, b, from).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListForUser(ctx context.Context, userID, email string) ([]Booking, error) {
	args := m.Called(ctx, userID, email)
	out, _ := args.Get(0).([]Booking)
	return out, args.Error(1)
}

func (m *mockRepository) ListByDate(ctx context.Context, date, bookingType string) ([]Booking, error) {
	args := m.Called(ctx, date, bookingType)
	out, _ := args.Get(0).([]Booking)
	return out, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, p ListParams) ([]Booking, int, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).([]Booking)
	return out, args.Int(1), args.Error(2)
}

func (m *mockRepository) BookedRanges(ctx context.Context, resourceID, date string) ([]TimeRange, error) {
	args := m.Called(ctx, resourceID, date)
	out, _ := args.Get(0).([]TimeRange)
	return out, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(map[string]int)
	return out, args.Error(1)
}

func (m *mockRepository) PaidRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1) //nolint:forcetypeassert // test double
}

type mockResources struct {
	mock.Mock
}

func (m *mockResources) Resource(ctx context.Context, bookingType, id string) (*Resource, error) {
	args := m.Called(ctx, bookingType, id)
	if r, ok := args.Get(0).(*Resource); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRefunder struct {
	mock.Mock
}

func (m *mockRefunder) RefundPayment(ctx context.Context, paymentID string, amount float64) error {
	return m.Called(ctx, paymentID, amount).Error(0)
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

// memRepository holds bookings in memory behind one lock, standing in for
// the advisory lock the SQL repository takes.
type memRepository struct {
	mockRepository
	mu       sync.Mutex
	bookings map[string]Booking
}

func newMemRepository() *memRepository {
	return &memRepository{bookings: map[string]Booking{}}
}

func (m *memRepository) CreateIfFree(_ context.Context, b *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := TimeRange{StartTime: b.StartTime, EndTime: b.EndTime}
	for _, existing := range m.bookings {
		if existing.ResourceID != b.ResourceID || existing.BookingDate != b.BookingDate ||
			existing.Status == StatusCancelled {
			continue
		}
		if want.Overlaps(TimeRange{StartTime: existing.StartTime, EndTime: existing.EndTime}) {
			return ErrSlotTaken
		}
	}
	m.bookings[b.ID] = *b
	return nil
}
