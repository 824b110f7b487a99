// AngelaMos | 2026
// mock_test.go

package user

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) Activate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) List(ctx context.Context, p ListUsersParams) ([]User, int, error) {
	args := m.Called(ctx, p)
	users, _ := args.Get(0).([]User)
	return users, args.Int(1), args.Error(2)
}

func (m *mockRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) Statistics(ctx context.Context) (*Statistics, error) {
	args := m.Called(ctx)
	if s, ok := args.Get(0).(*Statistics); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
