// AngelaMos | 2026
// mock_test.go

package contact

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, c *Info) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Update(ctx context.Context, c *Info) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) Get(ctx context.Context, id string) (*Info, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*Info); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]Info, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]Info); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
