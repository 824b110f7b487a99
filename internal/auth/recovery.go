// AngelaMos | 2026
// recovery.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

// maxOTPAttempts wrong codes burn a verification token.
const maxOTPAttempts = 5

var (
	ErrInvalidResetToken = core.NewAppError(
		core.ErrInvalidInput, "reset token is invalid or has expired", http.StatusBadRequest, "INVALID_RESET_TOKEN")
	ErrInvalidOTP = core.NewAppError(
		core.ErrInvalidInput, "verification code is invalid or has expired", http.StatusBadRequest, "INVALID_OTP")
	ErrAlreadyVerified = core.NewAppError(
		core.ErrConflict, "Email already verified", http.StatusConflict, "ALREADY_VERIFIED")
	ErrOTPCooldown = core.NewAppError(
		core.ErrConflict, "please wait before requesting another code", http.StatusTooManyRequests, "OTP_COOLDOWN")
)

// ForgotPassword never reveals whether the email is registered. Mail
// failures are logged, not returned.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userProvider.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}

	if err := s.resets.InvalidateForUser(ctx, user.ID); err != nil {
		return err
	}

	raw, err := core.GenerateSecureToken(32)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.resets.Create(ctx, &PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: core.HashToken(raw),
		ExpiresAt: s.now().Add(s.cfg.ResetTokenExpire),
	}); err != nil {
		return err
	}

	link := resetLink(s.cfg.ResetURL, raw)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, link); err != nil {
		s.logger.ErrorContext(ctx, "send password reset mail", "user_id", user.ID, "error", err)
	}

	return nil
}

func resetLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil || base == "" {
		return token
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// ResetPassword consumes the token exactly once, sets the new password and
// bumps the token version so every outstanding session dies.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	token, err := s.resets.FindByHash(ctx, core.HashToken(rawToken))
	if errors.Is(err, core.ErrNotFound) {
		return ErrInvalidResetToken
	}
	if err != nil {
		return err
	}

	if !token.Usable(s.now()) {
		return ErrInvalidResetToken
	}

	if err := s.resets.MarkUsed(ctx, token.ID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	if err := s.setPassword(ctx, token.UserID, newPassword); err != nil {
		return err
	}

	return s.LogoutAll(ctx, token.UserID)
}

func cooldownKey(userID string) string {
	return "auth:otp:cooldown:" + userID
}

// SendOTP mails a fresh six digit code and returns the public token the
// client must echo back alongside it.
func (s *Service) SendOTP(ctx context.Context, userID string) (*OTPSentResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Status == "ACTIVE" {
		return nil, ErrAlreadyVerified
	}

	if s.cfg.OTPResendCooldown > 0 {
		ok, err := s.store.SetNX(ctx, cooldownKey(userID), s.cfg.OTPResendCooldown)
		if err != nil {
			return nil, fmt.Errorf("otp cooldown: %w", err)
		}
		if !ok {
			return nil, ErrOTPCooldown
		}
	}

	otp, err := core.GenerateOTP(6)
	if err != nil {
		return nil, fmt.Errorf("generate otp: %w", err)
	}

	if err := s.verifications.InvalidateForUser(ctx, userID); err != nil {
		return nil, err
	}

	token := &EmailVerificationToken{
		ID:        uuid.New().String(),
		UserID:    userID,
		OTPHash:   core.HashToken(otp),
		ExpiresAt: s.now().Add(s.cfg.OTPExpire),
	}
	if err := s.verifications.Create(ctx, token); err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationOTP(ctx, user.Email, user.Name, otp, s.cfg.OTPExpire); err != nil {
		s.logger.ErrorContext(ctx, "send otp mail", "user_id", userID, "error", err)
		return nil, fmt.Errorf("send verification email: %w", core.ErrUnavailable)
	}

	return &OTPSentResponse{Token: token.ID, ExpiresAt: token.ExpiresAt}, nil
}

func (s *Service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) error {
	if _, err := uuid.Parse(req.Token); err != nil {
		return ErrInvalidOTP
	}

	token, err := s.verifications.FindByID(ctx, req.Token)
	if errors.Is(err, core.ErrNotFound) {
		return ErrInvalidOTP
	}
	if err != nil {
		return err
	}

	if !token.Usable(s.now()) {
		return ErrInvalidOTP
	}

	if !core.CompareTokenHash(req.OTP, token.OTPHash) {
		if err := s.verifications.RecordMiss(ctx, token.ID, maxOTPAttempts); err != nil {
			s.logger.ErrorContext(ctx, "record otp miss", "token_id", token.ID, "error", err)
		}
		return ErrInvalidOTP
	}

	if err := s.verifications.MarkUsed(ctx, token.ID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrInvalidOTP
		}
		return err
	}

	return s.userProvider.Activate(ctx, token.UserID)
}

func (s *Service) VerificationStatus(ctx context.Context, userID string) (*VerificationStatus, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &VerificationStatus{Status: user.Status, EmailVerified: user.EmailVerified}, nil
}
