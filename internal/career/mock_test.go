// AngelaMos | 2026
// mock_test.go

package career

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, kind Kind, a *Application) error {
	return m.Called(ctx, kind, a).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, kind Kind, id string) (*Application, error) {
	args := m.Called(ctx, kind, id)
	if a, ok := args.Get(0).(*Application); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, kind Kind, onboardStatus, jobStatus string) ([]Application, error) {
	args := m.Called(ctx, kind, onboardStatus, jobStatus)
	if a, ok := args.Get(0).([]Application); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateStatus(ctx context.Context, kind Kind, a *Application) error {
	return m.Called(ctx, kind, a).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, kind Kind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}
