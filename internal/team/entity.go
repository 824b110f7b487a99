// AngelaMos | 2026
// entity.go

package team

import (
	"time"
)

const (
	MembershipActive    = "ACTIVE"
	MembershipInactive  = "INACTIVE"
	MembershipSuspended = "SUSPENDED"
)

type Team struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	CaptainName        string    `db:"captain_name"`
	CaptainEmail       string    `db:"captain_email"`
	CaptainPhone       string    `db:"captain_phone"`
	TeamSize           int       `db:"team_size"`
	TeamType           string    `db:"team_type"`
	SkillLevel         string    `db:"skill_level"`
	AgeGroup           string    `db:"age_group"`
	HomeGround         string    `db:"home_ground"`
	MembershipStatus   string    `db:"membership_status"`
	LoyaltyPoints      int       `db:"loyalty_points"`
	DiscountPercentage float64   `db:"discount_percentage"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

type Player struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Age          *int      `db:"age"`
	Role         string    `db:"role"`
	SkillLevel   string    `db:"skill_level"`
	JerseyNumber *int      `db:"jersey_number"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
