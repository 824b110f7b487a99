// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

type RefreshToken struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	TokenHash    string     `db:"token_hash"`
	FamilyID     string     `db:"family_id"`
	ExpiresAt    time.Time  `db:"expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
	IsUsed       bool       `db:"is_used"`
	UsedAt       *time.Time `db:"used_at"`
	RevokedAt    *time.Time `db:"revoked_at"`
	ReplacedByID *string    `db:"replaced_by_id"`
	UserAgent    string     `db:"user_agent"`
	IPAddress    string     `db:"ip_address"`
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

func (t *RefreshToken) IsValid() bool {
	return !t.IsExpired() && !t.IsRevoked() && !t.IsUsed
}

// UserActivity is one login session. A user has at most one row with
// SessionActive set.
type UserActivity struct {
	ID            string     `db:"id"            json:"id"`
	UserID        string     `db:"user_id"       json:"user_id"`
	LoginTime     time.Time  `db:"login_time"    json:"login_time"`
	LogoutTime    *time.Time `db:"logout_time"   json:"logout_time,omitempty"`
	SessionActive bool       `db:"session_active" json:"session_active"`
	IPAddress     string     `db:"ip_address"    json:"ip_address"`
	UserAgent     string     `db:"user_agent"    json:"user_agent"`
}

type PasswordResetToken struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	Used      bool       `db:"used"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (t *PasswordResetToken) Usable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// EmailVerificationToken pairs a public token id with the hash of the OTP
// mailed to the user.
type EmailVerificationToken struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	OTPHash   string     `db:"otp_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	Attempts  int        `db:"attempts"`
	Used      bool       `db:"used"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (t *EmailVerificationToken) Usable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}
