// AngelaMos | 2026
// mock_test.go

package ground

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateGround(ctx context.Context, g *Ground) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockRepository) UpdateGround(ctx context.Context, g *Ground) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockRepository) DeleteGround(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetGround(ctx context.Context, id string) (*Ground, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*Ground); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListGrounds(ctx context.Context, activeOnly bool) ([]Ground, error) {
	args := m.Called(ctx, activeOnly)
	if g, ok := args.Get(0).([]Ground); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ToggleGround(ctx context.Context, id string) (*Ground, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*Ground); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateNet(ctx context.Context, n *Net) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockRepository) UpdateNet(ctx context.Context, n *Net) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockRepository) DeleteNet(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetNet(ctx context.Context, id string) (*Net, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*Net); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListNets(ctx context.Context, filter NetFilter) ([]Net, error) {
	args := m.Called(ctx, filter)
	if n, ok := args.Get(0).([]Net); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ToggleNet(ctx context.Context, id string) (*Net, error) {
	args := m.Called(ctx, id)
	if n, ok := args.Get(0).(*Net); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
