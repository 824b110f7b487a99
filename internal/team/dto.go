// AngelaMos | 2026
// dto.go

package team

import (
	"strings"
	"time"
)

type TeamRequest struct {
	Name               string  `json:"team_name"           validate:"required,min=1,max=100"`
	CaptainName        string  `json:"captain_name"        validate:"required,max=100"`
	CaptainEmail       string  `json:"captain_email"       validate:"required,email"`
	CaptainPhone       string  `json:"captain_phone"       validate:"omitempty,phone"`
	TeamSize           int     `json:"team_size"           validate:"omitempty,gte=1,lte=50"`
	TeamType           string  `json:"team_type"           validate:"omitempty,max=30"`
	SkillLevel         string  `json:"skill_level"         validate:"omitempty,oneof=BEGINNER AMATEUR INTERMEDIATE ADVANCED PROFESSIONAL"`
	AgeGroup           string  `json:"age_group"           validate:"omitempty,oneof=UNDER_12 UNDER_16 UNDER_19 ADULT SENIOR"`
	HomeGround         string  `json:"home_ground"         validate:"omitempty,max=150"`
	MembershipStatus   string  `json:"membership_status"   validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	LoyaltyPoints      int     `json:"loyalty_points"      validate:"gte=0"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
}

func (req TeamRequest) apply(t *Team) {
	t.Name = strings.TrimSpace(req.Name)
	t.CaptainName = strings.TrimSpace(req.CaptainName)
	t.CaptainEmail = strings.ToLower(strings.TrimSpace(req.CaptainEmail))
	t.CaptainPhone = req.CaptainPhone
	t.TeamSize = req.TeamSize
	if t.TeamSize == 0 {
		t.TeamSize = 11
	}
	t.TeamType = orDefault(req.TeamType, "CRICKET")
	t.SkillLevel = orDefault(req.SkillLevel, "AMATEUR")
	t.AgeGroup = orDefault(req.AgeGroup, "ADULT")
	t.HomeGround = req.HomeGround
	t.MembershipStatus = orDefault(req.MembershipStatus, MembershipActive)
	t.LoyaltyPoints = req.LoyaltyPoints
	t.DiscountPercentage = req.DiscountPercentage
}

type PlayerRequest struct {
	Name         string `json:"player_name"   validate:"required,min=1,max=100"`
	Email        string `json:"player_email"  validate:"omitempty,email"`
	Phone        string `json:"player_phone"  validate:"omitempty,phone"`
	Age          *int   `json:"player_age"    validate:"omitempty,gte=5,lte=80"`
	Role         string `json:"player_role"   validate:"omitempty,oneof=BATSMAN BOWLER ALL_ROUNDER WICKET_KEEPER"`
	SkillLevel   string `json:"skill_level"   validate:"omitempty,oneof=BEGINNER AMATEUR INTERMEDIATE ADVANCED PROFESSIONAL"`
	JerseyNumber *int   `json:"jersey_number" validate:"omitempty,gte=0,lte=999"`
	IsActive     *bool  `json:"is_active"`
}

func (req PlayerRequest) apply(p *Player) {
	p.Name = strings.TrimSpace(req.Name)
	p.Email = strings.ToLower(strings.TrimSpace(req.Email))
	p.Phone = req.Phone
	p.Age = req.Age
	p.Role = req.Role
	p.SkillLevel = orDefault(req.SkillLevel, "AMATEUR")
	p.JerseyNumber = req.JerseyNumber
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type TeamResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"team_name"`
	CaptainName        string           `json:"captain_name"`
	CaptainEmail       string           `json:"captain_email"`
	CaptainPhone       string           `json:"captain_phone"`
	TeamSize           int              `json:"team_size"`
	TeamType           string           `json:"team_type"`
	SkillLevel         string           `json:"skill_level"`
	AgeGroup           string           `json:"age_group"`
	HomeGround         string           `json:"home_ground"`
	MembershipStatus   string           `json:"membership_status"`
	LoyaltyPoints      int              `json:"loyalty_points"`
	DiscountPercentage float64          `json:"discount_percentage"`
	Players            []PlayerResponse `json:"players,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type PlayerResponse struct {
	ID           string    `json:"id"`
	TeamID       string    `json:"team_id"`
	Name         string    `json:"player_name"`
	Email        string    `json:"player_email"`
	Phone        string    `json:"player_phone"`
	Age          *int      `json:"player_age"`
	Role         string    `json:"player_role"`
	SkillLevel   string    `json:"skill_level"`
	JerseyNumber *int      `json:"jersey_number"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToTeamResponse(t *Team) TeamResponse {
	return TeamResponse{
		ID:                 t.ID,
		Name:               t.Name,
		CaptainName:        t.CaptainName,
		CaptainEmail:       t.CaptainEmail,
		CaptainPhone:       t.CaptainPhone,
		TeamSize:           t.TeamSize,
		TeamType:           t.TeamType,
		SkillLevel:         t.SkillLevel,
		AgeGroup:           t.AgeGroup,
		HomeGround:         t.HomeGround,
		MembershipStatus:   t.MembershipStatus,
		LoyaltyPoints:      t.LoyaltyPoints,
		DiscountPercentage: t.DiscountPercentage,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func ToPlayerResponse(p *Player) PlayerResponse {
	return PlayerResponse{
		ID:           p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Age:          p.Age,
		Role:         p.Role,
		SkillLevel:   p.SkillLevel,
		JerseyNumber: p.JerseyNumber,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toTeamList(teams []Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, ToTeamResponse(&teams[i]))
	}
	return out
}

func toPlayerList(players []Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, ToPlayerResponse(&players[i]))
	}
	return out
}
