// AngelaMos | 2026
// credentials.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type ActivityRepository interface {
	Open(ctx context.Context, a *UserActivity) error
	CloseActive(ctx context.Context, userID string) error
	ListForUser(ctx context.Context, userID string, limit int) ([]UserActivity, error)
}

type ResetTokenRepository interface {
	Create(ctx context.Context, t *PasswordResetToken) error
	FindByHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, id string) error
	InvalidateForUser(ctx context.Context, userID string) error
}

type VerificationRepository interface {
	Create(ctx context.Context, t *EmailVerificationToken) error
	FindByID(ctx context.Context, id string) (*EmailVerificationToken, error)
	MarkUsed(ctx context.Context, id string) error
	// RecordMiss counts a wrong code and burns the token once limit
	// misses have accumulated.
	RecordMiss(ctx context.Context, id string, limit int) error
	InvalidateForUser(ctx context.Context, userID string) error
}

type activityRepository struct {
	db core.DBTX
}

func NewActivityRepository(db core.DBTX) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Open(ctx context.Context, a *UserActivity) error {
	query := `
		INSERT INTO user_activity (id, user_id, login_time, session_active, ip_address, user_agent)
		VALUES ($1, $2, NOW(), TRUE, $3, $4)
		RETURNING login_time`

	if err := r.db.GetContext(ctx, &a.LoginTime, query, a.ID, a.UserID, a.IPAddress, a.UserAgent); err != nil {
		return fmt.Errorf("open activity: %w", err)
	}
	a.SessionActive = true

	return nil
}

func (r *activityRepository) CloseActive(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE user_activity
		SET session_active = FALSE, logout_time = NOW()
		WHERE user_id = $1 AND session_active`, userID); err != nil {
		return fmt.Errorf("close activity: %w", err)
	}

	return nil
}

func (r *activityRepository) ListForUser(
	ctx context.Context,
	userID string,
	limit int,
) ([]UserActivity, error) {
	var rows []UserActivity
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, user_id, login_time, logout_time, session_active, ip_address, user_agent
		FROM user_activity
		WHERE user_id = $1
		ORDER BY login_time DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return rows, nil
}

type resetTokenRepository struct {
	db core.DBTX
}

func NewResetTokenRepository(db core.DBTX) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(ctx context.Context, t *PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if err := r.db.GetContext(ctx, &t.CreatedAt, query, t.ID, t.UserID, t.TokenHash, t.ExpiresAt); err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	return nil
}

func (r *resetTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*PasswordResetToken, error) {
	var t PasswordResetToken
	err := r.db.GetContext(ctx, &t, `
		SELECT id, user_id, token_hash, expires_at, used, used_at, created_at
		FROM password_reset_tokens
		WHERE token_hash = $1`, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find reset token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	return &t, nil
}

func (r *resetTokenRepository) MarkUsed(ctx context.Context, id string) error {
	return execAffecting(ctx, r.db, "consume reset token", `
		UPDATE password_reset_tokens
		SET used = TRUE, used_at = NOW()
		WHERE id = $1 AND NOT used AND expires_at > NOW()`, id)
}

func (r *resetTokenRepository) InvalidateForUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE password_reset_tokens
		SET used = TRUE, used_at = NOW()
		WHERE user_id = $1 AND NOT used`, userID); err != nil {
		return fmt.Errorf("invalidate reset tokens: %w", err)
	}

	return nil
}

type verificationRepository struct {
	db core.DBTX
}

func NewVerificationRepository(db core.DBTX) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) Create(ctx context.Context, t *EmailVerificationToken) error {
	query := `
		INSERT INTO email_verification_tokens (id, user_id, otp_hash, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if err := r.db.GetContext(ctx, &t.CreatedAt, query, t.ID, t.UserID, t.OTPHash, t.ExpiresAt); err != nil {
		return fmt.Errorf("create verification token: %w", err)
	}

	return nil
}

func (r *verificationRepository) FindByID(ctx context.Context, id string) (*EmailVerificationToken, error) {
	var t EmailVerificationToken
	err := r.db.GetContext(ctx, &t, `
		SELECT id, user_id, otp_hash, expires_at, attempts, used, used_at, created_at
		FROM email_verification_tokens
		WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("find verification token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find verification token: %w", err)
	}

	return &t, nil
}

func (r *verificationRepository) MarkUsed(ctx context.Context, id string) error {
	return execAffecting(ctx, r.db, "consume verification token", `
		UPDATE email_verification_tokens
		SET used = TRUE, used_at = NOW()
		WHERE id = $1 AND NOT used AND expires_at > NOW()`, id)
}

func (r *verificationRepository) RecordMiss(ctx context.Context, id string, limit int) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE email_verification_tokens
		SET attempts = attempts + 1,
		    used = attempts + 1 >= $2,
		    used_at = CASE WHEN attempts + 1 >= $2 THEN NOW() END
		WHERE id = $1 AND NOT used`, id, limit); err != nil {
		return fmt.Errorf("record verification miss: %w", err)
	}

	return nil
}

func (r *verificationRepository) InvalidateForUser(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `
		UPDATE email_verification_tokens
		SET used = TRUE, used_at = NOW()
		WHERE user_id = $1 AND NOT used`, userID); err != nil {
		return fmt.Errorf("invalidate verification tokens: %w", err)
	}

	return nil
}
