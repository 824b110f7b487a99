// AngelaMos | 2026
// mock_test.go

package program

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, p *Program) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, p *Program) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*Program, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*Program); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter ProgramFilter) ([]Program, error) {
	args := m.Called(ctx, filter)
	if p, ok := args.Get(0).([]Program); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) SeedSuggested(ctx context.Context, programs []Program) (int, error) {
	args := m.Called(ctx, programs)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) AssignCoach(ctx context.Context, programID, coachID string) error {
	return m.Called(ctx, programID, coachID).Error(0)
}

func (m *mockRepository) UnassignCoach(ctx context.Context, programID, coachID string) error {
	return m.Called(ctx, programID, coachID).Error(0)
}

func (m *mockRepository) CoachesOf(ctx context.Context, programID string) ([]Coach, error) {
	args := m.Called(ctx, programID)
	if c, ok := args.Get(0).([]Coach); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateCoach(ctx context.Context, c *Coach) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) UpdateCoach(ctx context.Context, c *Coach) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) DeleteCoach(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetCoach(ctx context.Context, id string) (*Coach, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*Coach); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListCoaches(ctx context.Context, filter CoachFilter) ([]Coach, error) {
	args := m.Called(ctx, filter)
	if c, ok := args.Get(0).([]Coach); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
