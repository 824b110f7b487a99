// AngelaMos | 2026
// mock_test.go

package content

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cricketacademy/academy-api/internal/core"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListPlayers(ctx context.Context) ([]StarPlayer, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]StarPlayer); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetPlayer(ctx context.Context, id string) (*StarPlayer, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*StarPlayer); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreatePlayer(ctx context.Context, p *StarPlayer) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) UpdatePlayer(ctx context.Context, p *StarPlayer) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) DeletePlayer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ListFacilities(ctx context.Context) ([]Facility, error) {
	args := m.Called(ctx)
	if f, ok := args.Get(0).([]Facility); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetFacility(ctx context.Context, id string) (*Facility, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*Facility); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateFacility(ctx context.Context, f *Facility) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockRepository) UpdateFacility(ctx context.Context, f *Facility) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockRepository) DeleteFacility(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetHero(ctx context.Context) (*HeroImage, error) {
	args := m.Called(ctx)
	if h, ok := args.Get(0).(*HeroImage); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) SetHero(ctx context.Context, imageURL string) (*HeroImage, error) {
	args := m.Called(ctx, imageURL)
	if h, ok := args.Get(0).(*HeroImage); ok {
		return h, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ClearHero(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRepository) Reorder(ctx context.Context, target ReorderTarget, items []SortItem) (int, error) {
	args := m.Called(ctx, target, items)
	return args.Int(0), args.Error(1)
}

type memCache struct {
	page        *HomepageResponse
	invalidated int
}

func (c *memCache) Get(context.Context) (*HomepageResponse, error) {
	if c.page == nil {
		return nil, core.ErrNotFound
	}
	return c.page, nil
}

func (c *memCache) Put(_ context.Context, page *HomepageResponse) error {
	c.page = page
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.page = nil
	c.invalidated++
	return nil
}
