// AngelaMos | 2026
// mock_test.go

package team

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, t *Team) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, t *Team) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Team, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*Team); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, name, skillLevel string) ([]Team, error) {
	args := m.Called(ctx, name, skillLevel)
	if t, ok := args.Get(0).([]Team); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) AddPlayer(ctx context.Context, p *Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) UpdatePlayer(ctx context.Context, p *Player) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	return m.Called(ctx, teamID, playerID).Error(0)
}

func (m *mockRepository) GetPlayer(ctx context.Context, teamID, playerID string) (*Player, error) {
	args := m.Called(ctx, teamID, playerID)
	if p, ok := args.Get(0).(*Player); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Players(ctx context.Context, teamID string) ([]Player, error) {
	args := m.Called(ctx, teamID)
	if p, ok := args.Get(0).([]Player); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
