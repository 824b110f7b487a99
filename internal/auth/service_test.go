// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

type fixture struct {
	svc           *Service
	jwt           *JWTManager
	tokens        *mockTokens
	activity      *mockActivity
	resets        *mockResets
	verifications *mockVerifications
	users         *mockUsers
	store         *mockStore
	mailer        *mockMailer
}

func newTestJWT(t *testing.T) *JWTManager {
	t.Helper()
	dir := t.TempDir()
	priv := filepath.Join(dir, "private.pem")
	pub := filepath.Join(dir, "public.pem")
	require.NoError(t, GenerateKeyPair(priv, pub))

	m, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     priv,
		PublicKeyPath:      pub,
		AccessTokenExpire:  15 * time.Minute,
		RefreshTokenExpire: 24 * time.Hour,
		Issuer:             "cricket-academy",
		Audience:           "academy-api",
	})
	require.NoError(t, err)
	return m
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		jwt:           newTestJWT(t),
		tokens:        new(mockTokens),
		activity:      new(mockActivity),
		resets:        new(mockResets),
		verifications: new(mockVerifications),
		users:         new(mockUsers),
		store:         new(mockStore),
		mailer:        new(mockMailer),
	}
	f.svc = NewService(Deps{
		Tokens:        f.tokens,
		Activity:      f.activity,
		Resets:        f.resets,
		Verifications: f.verifications,
		JWT:           f.jwt,
		Users:         f.users,
		Store:         f.store,
		Mailer:        f.mailer,
		Config: config.AuthConfig{
			OTPExpire:         30 * time.Minute,
			OTPResendCooldown: time.Minute,
			ResetTokenExpire:  30 * time.Minute,
			ResetURL:          "https://academy.example/reset",
		},
	})
	return f
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := core.HashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, core.ErrNotFound)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "x"}, "ua", "1.1.1.1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "a@b.co").
			Return(&UserInfo{ID: "u1", PasswordHash: hashed(t, "right-one")}, nil)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "a@b.co", Password: "wrong-one"}, "ua", "ip")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "a@b.co").Return(&UserInfo{
			ID: "u1", PasswordHash: hashed(t, "secret1"), Status: "INACTIVE",
		}, nil)

		_, err := f.svc.Login(ctx, LoginRequest{Email: "a@b.co", Password: "secret1"}, "ua", "ip")
		require.ErrorIs(t, err, ErrUserInactive)
		assert.Equal(t, "user is inactive please contact academy", ErrUserInactive.Message)
		f.activity.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})

	t.Run("success opens a fresh session", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "a@b.co").Return(&UserInfo{
			ID: "u1", Email: "a@b.co", PasswordHash: hashed(t, "secret1"),
			Role: "STUDENT", Status: "ACTIVE", TokenVersion: 3,
		}, nil)
		f.activity.On("CloseActive", ctx, "u1").Return(nil).Once()
		f.activity.On("Open", ctx, mock.MatchedBy(func(a *UserActivity) bool {
			return a.UserID == "u1" && a.IPAddress == "10.0.0.1"
		})).Return(nil).Once()
		f.tokens.On("Create", ctx, mock.AnythingOfType("*auth.RefreshToken")).Return(nil)

		resp, err := f.svc.Login(ctx, LoginRequest{Email: "a@b.co", Password: "secret1"}, "ua", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.Tokens.TokenType)
		assert.NotEmpty(t, resp.Tokens.RefreshToken)

		claims, err := f.jwt.VerifyAccessToken(ctx, resp.Tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "a@b.co", claims.Email)
		assert.Equal(t, 3, claims.TokenVersion)
		assert.NotEmpty(t, claims.ID)
		f.activity.AssertExpectations(t)
	})
}

func TestRefreshReuseRevokesFamily(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tokens.On("FindByHash", ctx, core.HashToken("stolen")).Return(&RefreshToken{
		ID: "t1", UserID: "u1", FamilyID: "fam", IsUsed: true, ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	f.tokens.On("RevokeByFamilyID", ctx, "fam").Return(nil).Once()

	_, err := f.svc.Refresh(ctx, "stolen", "ua", "ip")
	require.ErrorIs(t, err, ErrTokenReuse)
	f.tokens.AssertExpectations(t)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		token   *PasswordResetToken
		findErr error
		markErr error
		wantErr error
	}{
		{name: "unknown token", findErr: core.ErrNotFound, wantErr: ErrInvalidResetToken},
		{
			name:    "expired",
			token:   &PasswordResetToken{ID: "r1", UserID: "u1", ExpiresAt: now.Add(-time.Minute)},
			wantErr: ErrInvalidResetToken,
		},
		{
			name:    "already used",
			token:   &PasswordResetToken{ID: "r1", UserID: "u1", ExpiresAt: now.Add(time.Minute), Used: true},
			wantErr: ErrInvalidResetToken,
		},
		{
			name:    "lost race",
			token:   &PasswordResetToken{ID: "r1", UserID: "u1", ExpiresAt: now.Add(time.Minute)},
			markErr: core.ErrNotFound,
			wantErr: ErrInvalidResetToken,
		},
		{
			name:  "valid",
			token: &PasswordResetToken{ID: "r1", UserID: "u1", ExpiresAt: now.Add(time.Minute)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.resets.On("FindByHash", ctx, core.HashToken("raw")).Return(tt.token, tt.findErr)
			f.resets.On("MarkUsed", ctx, "r1").Return(tt.markErr)
			f.users.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil)
			f.tokens.On("RevokeAllForUser", ctx, "u1").Return(nil)
			f.users.On("IncrementTokenVersion", ctx, "u1").Return(nil)
			f.activity.On("CloseActive", ctx, "u1").Return(nil)

			err := f.svc.ResetPassword(ctx, "raw", "new-password")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				f.users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			f.users.AssertCalled(t, "IncrementTokenVersion", ctx, "u1")
		})
	}
}

func TestForgotPasswordDoesNotLeak(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "ghost@example.com").Return(nil, core.ErrNotFound)

		require.NoError(t, f.svc.ForgotPassword(ctx, "ghost@example.com"))
		f.mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByEmail", ctx, "a@b.co").Return(&UserInfo{ID: "u1", Email: "a@b.co", Name: "A"}, nil)
		f.resets.On("InvalidateForUser", ctx, "u1").Return(nil)
		f.resets.On("Create", ctx, mock.MatchedBy(func(tk *PasswordResetToken) bool {
			return time.Until(tk.ExpiresAt) > 29*time.Minute
		})).Return(nil)
		f.mailer.On("SendPasswordReset", ctx, "a@b.co", "A",
			mock.MatchedBy(func(link string) bool {
				return len(link) > len("https://academy.example/reset?token=")
			})).Return(assert.AnError)

		require.NoError(t, f.svc.ForgotPassword(ctx, "a@b.co"))
		f.mailer.AssertExpectations(t)
	})
}

func TestSendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("already verified", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByID", ctx, "u1").Return(&UserInfo{ID: "u1", Status: "ACTIVE"}, nil)

		_, err := f.svc.SendOTP(ctx, "u1")
		require.ErrorIs(t, err, ErrAlreadyVerified)
		assert.Equal(t, 409, ErrAlreadyVerified.StatusCode)
	})

	t.Run("cooldown", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByID", ctx, "u1").Return(&UserInfo{ID: "u1", Status: "PENDING"}, nil)
		f.store.On("SetNX", ctx, "auth:otp:cooldown:u1", time.Minute).Return(false, nil)

		_, err := f.svc.SendOTP(ctx, "u1")
		require.ErrorIs(t, err, ErrOTPCooldown)
	})

	t.Run("mails a six digit code", func(t *testing.T) {
		f := newFixture(t)
		f.users.On("GetByID", ctx, "u1").
			Return(&UserInfo{ID: "u1", Email: "a@b.co", Name: "A", Status: "PENDING"}, nil)
		f.store.On("SetNX", ctx, "auth:otp:cooldown:u1", time.Minute).Return(true, nil)
		f.verifications.On("InvalidateForUser", ctx, "u1").Return(nil)

		var stored *EmailVerificationToken
		f.verifications.On("Create", ctx, mock.AnythingOfType("*auth.EmailVerificationToken")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*EmailVerificationToken) }).
			Return(nil)

		var sentOTP string
		f.mailer.On("SendVerificationOTP", ctx, "a@b.co", "A", mock.AnythingOfType("string"), 30*time.Minute).
			Run(func(args mock.Arguments) { sentOTP = args.String(3) }).
			Return(nil)

		resp, err := f.svc.SendOTP(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID, resp.Token)
		assert.Len(t, sentOTP, 6)
		assert.True(t, core.CompareTokenHash(sentOTP, stored.OTPHash))
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()
	id := "8b0c1f9e-4a1d-4a55-9c55-0a0f5b1c2d3e"
	valid := func() *EmailVerificationToken {
		return &EmailVerificationToken{
			ID: id, UserID: "u1", OTPHash: core.HashToken("123456"), ExpiresAt: time.Now().Add(time.Minute),
		}
	}

	t.Run("malformed token", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: "nope", OTP: "123456"})
		require.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.verifications.On("FindByID", ctx, id).Return(valid(), nil)
		f.verifications.On("RecordMiss", ctx, id, maxOTPAttempts).Return(nil).Once()
		err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "654321"})
		require.ErrorIs(t, err, ErrInvalidOTP)
		f.verifications.AssertExpectations(t)
		f.users.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
	})

	t.Run("already used", func(t *testing.T) {
		f := newFixture(t)
		tk := valid()
		tk.Used = true
		f.verifications.On("FindByID", ctx, id).Return(tk, nil)

		err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "123456"})
		require.ErrorIs(t, err, ErrInvalidOTP)
		f.verifications.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
	})

	t.Run("lost race", func(t *testing.T) {
		f := newFixture(t)
		f.verifications.On("FindByID", ctx, id).Return(valid(), nil)
		f.verifications.On("MarkUsed", ctx, id).
			Return(fmt.Errorf("consume verification token: %w", core.ErrNotFound))

		err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "123456"})
		require.ErrorIs(t, err, ErrInvalidOTP)
		f.users.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
	})

	t.Run("repeated misses burn the code", func(t *testing.T) {
		f := newFixture(t)
		tk := valid()
		f.verifications.On("FindByID", ctx, id).Return(tk, nil)
		f.verifications.On("RecordMiss", ctx, id, maxOTPAttempts).
			Run(func(args mock.Arguments) {
				tk.Attempts++
				if tk.Attempts >= args.Int(2) {
					tk.Used = true
				}
			}).
			Return(nil)

		for range maxOTPAttempts {
			err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "000000"})
			require.ErrorIs(t, err, ErrInvalidOTP)
		}
		assert.True(t, tk.Used)

		err := f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "123456"})
		require.ErrorIs(t, err, ErrInvalidOTP)
		f.verifications.AssertNumberOfCalls(t, "RecordMiss", maxOTPAttempts)
		f.verifications.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything)
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		tk := valid()
		tk.ExpiresAt = time.Now().Add(-time.Second)
		f.verifications.On("FindByID", ctx, id).Return(tk, nil)
		require.ErrorIs(t, f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "123456"}), ErrInvalidOTP)
	})

	t.Run("activates", func(t *testing.T) {
		f := newFixture(t)
		f.verifications.On("FindByID", ctx, id).Return(valid(), nil)
		f.verifications.On("MarkUsed", ctx, id).Return(nil)
		f.users.On("Activate", ctx, "u1").Return(nil).Once()

		require.NoError(t, f.svc.VerifyOTP(ctx, VerifyOTPRequest{Token: id, OTP: "123456"}))
		f.users.AssertExpectations(t)
	})
}

func TestLogoutBlacklistsAccessToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	token, err := f.jwt.CreateAccessToken(AccessTokenClaims{UserID: "u1", Role: "STUDENT"})
	require.NoError(t, err)
	claims, err := f.jwt.VerifyAccessToken(ctx, token)
	require.NoError(t, err)

	key := "auth:blacklist:" + claims.ID
	f.store.On("Set", ctx, key, mock.AnythingOfType("time.Duration")).Return(nil).Once()
	f.activity.On("CloseActive", ctx, "u1").Return(nil)

	require.NoError(t, f.svc.Logout(ctx, "", claims))

	f.store.On("Exists", ctx, key).Return(true, nil)
	_, err = f.svc.VerifyAccessToken(ctx, token)
	require.ErrorIs(t, err, core.ErrTokenRevoked)
}

func TestVerifyAccessTokenRejectsBumpedVersion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	token, err := f.jwt.CreateAccessToken(AccessTokenClaims{UserID: "u1", Role: "STUDENT", TokenVersion: 1})
	require.NoError(t, err)

	f.store.On("Exists", ctx, mock.Anything).Return(false, nil)
	f.users.On("GetByID", ctx, "u1").Return(&UserInfo{ID: "u1", TokenVersion: 2}, nil)

	_, err = f.svc.VerifyAccessToken(ctx, token)
	require.ErrorIs(t, err, core.ErrTokenRevoked)

	var _ middleware.TokenVerifier = f.svc
}
