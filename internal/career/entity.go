// AngelaMos | 2026
// entity.go

package career

import (
	"time"
)

const (
	OnboardPending   = "PENDING"
	OnboardApproved  = "APPROVED"
	OnboardRejected  = "REJECTED"
	OnboardOnboarded = "ONBOARDED"
)

const (
	JobApplied            = "APPLIED"
	JobUnderReview        = "UNDER_REVIEW"
	JobInterviewScheduled = "INTERVIEW_SCHEDULED"
	JobSelected           = "SELECTED"
	JobRejected           = "REJECTED"
	JobHired              = "HIRED"
)

// Kind is one applicant pool. Ground staff and coaches live in separate
// tables whose free-text columns are aliased onto Application.
type Kind struct {
	Slug          string
	Label         string
	table         string
	detailsColumn string
	extrasColumn  string
}

var (
	GroundStaff = Kind{
		Slug:          "ground-staff",
		Label:         "ground staff application",
		table:         "ground_staff",
		detailsColumn: "background_details",
		extrasColumn:  "skills",
	}
	CricketCoach = Kind{
		Slug:          "cricket-coaches",
		Label:         "coach application",
		table:         "cricket_coaches",
		detailsColumn: "career_details",
		extrasColumn:  "certifications",
	}
)

func KindFromSlug(slug string) (Kind, bool) {
	switch slug {
	case GroundStaff.Slug:
		return GroundStaff, true
	case CricketCoach.Slug, "cricket-coach":
		return CricketCoach, true
	}
	return Kind{}, false
}

type Application struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	Details         string    `db:"details"`
	HomeAddress     string    `db:"home_address"`
	Extras          string    `db:"extras"`
	ExperienceYears int       `db:"experience_years"`
	PhotoURL        string    `db:"photo_url"`
	OnboardStatus   string    `db:"onboard_status"`
	JobStatus       string    `db:"job_status"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
