// AngelaMos | 2026
// mock_test.go

package auth

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockTokens struct{ mock.Mock }

func (m *mockTokens) Create(ctx context.Context, t *RefreshToken) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTokens) FindByHash(ctx context.Context, h string) (*RefreshToken, error) {
	args := m.Called(ctx, h)
	t, _ := args.Get(0).(*RefreshToken)
	return t, args.Error(1)
}

func (m *mockTokens) FindByID(ctx context.Context, id string) (*RefreshToken, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*RefreshToken)
	return t, args.Error(1)
}

func (m *mockTokens) MarkAsUsed(ctx context.Context, id, by string) error {
	return m.Called(ctx, id, by).Error(0)
}

func (m *mockTokens) RevokeByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTokens) RevokeByFamilyID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTokens) RevokeAllForUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTokens) GetActiveSessionsForUser(ctx context.Context, id string) ([]RefreshToken, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).([]RefreshToken)
	return t, args.Error(1)
}

func (m *mockTokens) DeleteExpired(ctx context.Context, d time.Duration) (int64, error) {
	args := m.Called(ctx, d)
	return int64(args.Int(0)), args.Error(1)
}

type mockActivity struct{ mock.Mock }

func (m *mockActivity) Open(ctx context.Context, a *UserActivity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockActivity) CloseActive(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockActivity) ListForUser(ctx context.Context, userID string, limit int) ([]UserActivity, error) {
	args := m.Called(ctx, userID, limit)
	a, _ := args.Get(0).([]UserActivity)
	return a, args.Error(1)
}

type mockResets struct{ mock.Mock }

func (m *mockResets) Create(ctx context.Context, t *PasswordResetToken) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockResets) FindByHash(ctx context.Context, h string) (*PasswordResetToken, error) {
	args := m.Called(ctx, h)
	t, _ := args.Get(0).(*PasswordResetToken)
	return t, args.Error(1)
}

func (m *mockResets) MarkUsed(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResets) InvalidateForUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockVerifications struct{ mock.Mock }

func (m *mockVerifications) Create(ctx context.Context, t *EmailVerificationToken) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockVerifications) FindByID(ctx context.Context, id string) (*EmailVerificationToken, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*EmailVerificationToken)
	return t, args.Error(1)
}

func (m *mockVerifications) MarkUsed(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockVerifications) RecordMiss(ctx context.Context, id string, limit int) error {
	return m.Called(ctx, id, limit).Error(0)
}

func (m *mockVerifications) InvalidateForUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*UserInfo, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*UserInfo)
	return u, args.Error(1)
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*UserInfo, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*UserInfo)
	return u, args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, nu NewUser) (*UserInfo, error) {
	args := m.Called(ctx, nu)
	u, _ := args.Get(0).(*UserInfo)
	return u, args.Error(1)
}

func (m *mockUsers) IncrementTokenVersion(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUsers) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUsers) Activate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUsers) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsers) PhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Set(ctx context.Context, key string, ttl time.Duration) error {
	return m.Called(ctx, key, ttl).Error(0)
}

func (m *mockStore) SetNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendPasswordReset(ctx context.Context, to, name, link string) error {
	return m.Called(ctx, to, name, link).Error(0)
}

func (m *mockMailer) SendVerificationOTP(ctx context.Context, to, name, otp string, exp time.Duration) error {
	return m.Called(ctx, to, name, otp, exp).Error(0)
}
