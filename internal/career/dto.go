// AngelaMos | 2026
// dto.go

package career

import (
	"strings"
	"time"
)

type ApplyRequest struct {
	Name            string `json:"name"             validate:"required,min=2,max=100"`
	Email           string `json:"email"            validate:"required,email"`
	Phone           string `json:"phone"            validate:"required,phone"`
	Details         string `json:"details"          validate:"required,min=1,max=5000"`
	HomeAddress     string `json:"home_address"     validate:"required,min=1,max=1000"`
	Extras          string `json:"extras"           validate:"omitempty,max=2000"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=60"`
	PhotoURL        string `json:"photo_url"        validate:"omitempty,max=500"`
}

func (req ApplyRequest) apply(a *Application) {
	a.Name = strings.TrimSpace(req.Name)
	a.Email = strings.ToLower(strings.TrimSpace(req.Email))
	a.Phone = strings.TrimSpace(req.Phone)
	a.Details = req.Details
	a.HomeAddress = req.HomeAddress
	a.Extras = req.Extras
	a.ExperienceYears = req.ExperienceYears
	a.PhotoURL = req.PhotoURL
}

type StatusRequest struct {
	OnboardStatus string `json:"onboard_status" validate:"omitempty,oneof=PENDING APPROVED REJECTED ONBOARDED"`
	JobStatus     string `json:"job_status"     validate:"omitempty,oneof=APPLIED UNDER_REVIEW INTERVIEW_SCHEDULED SELECTED REJECTED HIRED"`
}

type ApplicationResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Details         string    `json:"details"`
	HomeAddress     string    `json:"home_address"`
	Extras          string    `json:"extras,omitempty"`
	ExperienceYears int       `json:"experience_years"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	OnboardStatus   string    `json:"onboard_status"`
	JobStatus       string    `json:"job_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToApplicationResponse(kind Kind, a *Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		Kind:            kind.Slug,
		Name:            a.Name,
		Email:           a.Email,
		Phone:           a.Phone,
		Details:         a.Details,
		HomeAddress:     a.HomeAddress,
		Extras:          a.Extras,
		ExperienceYears: a.ExperienceYears,
		PhotoURL:        a.PhotoURL,
		OnboardStatus:   a.OnboardStatus,
		JobStatus:       a.JobStatus,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toApplicationList(kind Kind, apps []Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, ToApplicationResponse(kind, &apps[i]))
	}
	return out
}
