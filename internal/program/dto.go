// AngelaMos | 2026
// dto.go

package program

import (
	"strings"
	"time"
)

type ProgramRequest struct {
	Name        string  `json:"name"         validate:"required,min=1,max=200"`
	Description string  `json:"description"  validate:"omitempty,max=5000"`
	Duration    string  `json:"duration"     validate:"omitempty,max=100"`
	Price       float64 `json:"price"        validate:"gte=0"`
	Level       string  `json:"level"        validate:"omitempty,max=50"`
	Category    string  `json:"category"     validate:"omitempty,max=50"`
	Icon        string  `json:"icon"         validate:"omitempty,max=20"`
	AgeGroup    string  `json:"age_group"    validate:"omitempty,max=100"`
	FocusAreas  string  `json:"focus_areas"  validate:"omitempty,max=2000"`
	Format      string  `json:"format"       validate:"omitempty,max=100"`
	IsSuggested bool    `json:"is_suggested"`
	IsActive    *bool   `json:"is_active"`
}

func (req ProgramRequest) apply(p *Program) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Duration = req.Duration
	p.Price = req.Price
	p.Level = req.Level
	p.Category = req.Category
	p.Icon = req.Icon
	p.AgeGroup = req.AgeGroup
	p.FocusAreas = req.FocusAreas
	p.Format = req.Format
	p.IsSuggested = req.IsSuggested
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

type CoachRequest struct {
	Name            string   `json:"name"              validate:"required,min=1,max=100"`
	Email           string   `json:"email"             validate:"required,email"`
	Phone           string   `json:"phone"             validate:"required,phone"`
	Specialization  string   `json:"specialization"    validate:"omitempty,max=100"`
	ExperienceYears int      `json:"experience_years"  validate:"gte=0,lte=70"`
	Certifications  string   `json:"certifications"    validate:"omitempty,max=2000"`
	Bio             string   `json:"bio"               validate:"omitempty,max=5000"`
	ProfileImageURL string   `json:"profile_image_url" validate:"omitempty,max=2048"`
	HourlyRate      float64  `json:"hourly_rate"       validate:"gte=0"`
	IsAvailable     *bool    `json:"is_available"`
	Specifications  []string `json:"specifications"    validate:"omitempty,dive,max=100"`
}

func (req CoachRequest) apply(c *Coach) {
	c.Name = strings.TrimSpace(req.Name)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.Phone = strings.TrimSpace(req.Phone)
	c.Specialization = req.Specialization
	c.ExperienceYears = req.ExperienceYears
	c.Certifications = req.Certifications
	c.Bio = req.Bio
	c.ProfileImageURL = req.ProfileImageURL
	c.HourlyRate = req.HourlyRate
	if req.IsAvailable != nil {
		c.IsAvailable = *req.IsAvailable
	}
	if req.Specifications == nil {
		req.Specifications = []string{}
	}
	c.Specifications.V = req.Specifications
}

// ProgramFilter narrows List. Zero value lists every program.
type ProgramFilter struct {
	ActiveOnly    bool
	SuggestedOnly bool
	Keyword       string
	Category      string
	Level         string
}

type CoachFilter struct {
	AvailableOnly  bool
	Keyword        string
	Specialization string
}

type ProgramResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	Price       float64         `json:"price"`
	Level       string          `json:"level"`
	Category    string          `json:"category"`
	Icon        string          `json:"icon"`
	AgeGroup    string          `json:"age_group"`
	FocusAreas  string          `json:"focus_areas"`
	Format      string          `json:"format"`
	IsSuggested bool            `json:"is_suggested"`
	IsActive    bool            `json:"is_active"`
	Coaches     []CoachResponse `json:"coaches,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CoachResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Specialization  string    `json:"specialization"`
	ExperienceYears int       `json:"experience_years"`
	Certifications  string    `json:"certifications"`
	Bio             string    `json:"bio"`
	ProfileImageURL string    `json:"profile_image_url"`
	HourlyRate      float64   `json:"hourly_rate"`
	IsAvailable     bool      `json:"is_available"`
	Specifications  []string  `json:"specifications"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SeedResponse struct {
	Created int `json:"created"`
}

func ToProgramResponse(p *Program) ProgramResponse {
	return ProgramResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Duration:    p.Duration,
		Price:       p.Price,
		Level:       p.Level,
		Category:    p.Category,
		Icon:        p.Icon,
		AgeGroup:    p.AgeGroup,
		FocusAreas:  p.FocusAreas,
		Format:      p.Format,
		IsSuggested: p.IsSuggested,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToCoachResponse(c *Coach) CoachResponse {
	specs := c.Specifications.V
	if specs == nil {
		specs = []string{}
	}
	return CoachResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Specialization:  c.Specialization,
		ExperienceYears: c.ExperienceYears,
		Certifications:  c.Certifications,
		Bio:             c.Bio,
		ProfileImageURL: c.ProfileImageURL,
		HourlyRate:      c.HourlyRate,
		IsAvailable:     c.IsAvailable,
		Specifications:  specs,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toProgramList(programs []Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for i := range programs {
		out = append(out, ToProgramResponse(&programs[i]))
	}
	return out
}

func toCoachList(coaches []Coach) []CoachResponse {
	out := make([]CoachResponse, 0, len(coaches))
	for i := range coaches {
		out = append(out, ToCoachResponse(&coaches[i]))
	}
	return out
}
