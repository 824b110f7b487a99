// AngelaMos | 2026
// mock_test.go

package pricing

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateAddOn(ctx context.Context, a *AddOn) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepository) UpdateAddOn(ctx context.Context, a *AddOn) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockRepository) DeleteAddOn(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetAddOn(ctx context.Context, id string) (*AddOn, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*AddOn); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListAddOns(ctx context.Context, availableOnly bool, category string) ([]AddOn, error) {
	args := m.Called(ctx, availableOnly, category)
	if a, ok := args.Get(0).([]AddOn); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreatePackage(ctx context.Context, p *Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) UpdatePackage(ctx context.Context, p *Package) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockRepository) DeletePackage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) GetPackage(ctx context.Context, id string) (*Package, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*Package); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListPackages(ctx context.Context, activeOnly bool, packageType string) ([]Package, error) {
	args := m.Called(ctx, activeOnly, packageType)
	if p, ok := args.Get(0).([]Package); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
