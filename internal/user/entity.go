// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID              string     `db:"id"`
	Name            string     `db:"name"`
	Email           string     `db:"email"`
	Phone           string     `db:"phone"`
	Age             int        `db:"age"`
	ExperienceLevel string     `db:"experience_level"`
	PasswordHash    string     `db:"password_hash"`
	Role            string     `db:"role"`
	Status          string     `db:"status"`
	IsActive        bool       `db:"is_active"`
	EmailVerified   bool       `db:"email_verified"`
	PhoneVerified   bool       `db:"phone_verified"`
	TokenVersion    int        `db:"token_version"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SetStatus keeps the legacy is_active flag in step with status.
func (u *User) SetStatus(status string) {
	u.Status = status
	u.IsActive = status != StatusInactive
}

const (
	RoleStudent = "STUDENT"
	RoleCoach   = "COACH"
	RoleAdmin   = "ADMIN"
)

const (
	StatusPending  = "PENDING"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
	LevelProfessional = "PROFESSIONAL"
)
