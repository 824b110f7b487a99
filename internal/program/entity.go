// AngelaMos | 2026
// entity.go

package program

import (
	"time"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Program struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Duration    string    `db:"duration"`
	Price       float64   `db:"price"`
	Level       string    `db:"level"`
	Category    string    `db:"category"`
	Icon        string    `db:"icon"`
	AgeGroup    string    `db:"age_group"`
	FocusAreas  string    `db:"focus_areas"`
	Format      string    `db:"format"`
	IsSuggested bool      `db:"is_suggested"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Coach struct {
	ID              string               `db:"id"`
	Name            string               `db:"name"`
	Email           string               `db:"email"`
	Phone           string               `db:"phone"`
	Specialization  string               `db:"specialization"`
	ExperienceYears int                  `db:"experience_years"`
	Certifications  string               `db:"certifications"`
	Bio             string               `db:"bio"`
	ProfileImageURL string               `db:"profile_image_url"`
	HourlyRate      float64              `db:"hourly_rate"`
	IsAvailable     bool                 `db:"is_available"`
	Specifications  core.JSONB[[]string] `db:"specifications"`
	CreatedAt       time.Time            `db:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at"`
}

const suggestedPrice = 100.0

// suggestedPrograms is the starter catalog created on an empty install.
var suggestedPrograms = []struct {
	icon, name, ageGroup, focus, format, level, category string
}{
	{"👶", "Beginner Coaching", "Kids (5–10 yrs)", "Basics: rules, grip, stance, basic batting/bowling, simple fielding", "Weekly / Seasonal", "Beginner", "Youth"},
	{"🧒", "Junior Coaching", "Youth (11–15 yrs)", "Technique, fielding drills, fitness basics, match awareness", "Weekly / Seasonal", "Intermediate", "Youth"},
	{"👦", "Senior Coaching", "Teens (16–19 yrs)", "Advanced technique, game plans, S&C, match simulations", "Seasonal / Annual", "Advanced", "Youth"},
	{"🏆", "Professional Academy Coaching", "Elite (19+ / Pro pathway)", "High-performance, analytics, nutrition, mental skills", "Full-time / Contract", "Professional", "Elite"},
	{"🎯", "One-on-One Coaching", "All ages", "Personalized skill plan, video analysis, focused correction", "Hourly / Customized", "All Levels", "Individual"},
	{"🎳", "Specialized Bowling", "All levels", "Pace & swing, seam work, spin variations, run-up mechanics", "Short-term / Camps", "All Levels", "Specialized"},
	{"🏏", "Specialized Batting", "All levels", "Footwork, shot selection, power-hitting, facing pace/spin", "Short-term / Camps", "All Levels", "Specialized"},
	{"🧤", "Wicketkeeping Programs", "All levels", "Glovework, footwork, quickness, stumpings & reactivity", "Short-term / Customized", "All Levels", "Specialized"},
	{"💪", "Fitness & Conditioning", "All levels", "Strength, speed & agility, flexibility, injury prevention", "Ongoing / Seasonal", "All Levels", "Fitness"},
	{"👩", "Women's Cricket Coaching", "Girls & Women", "Skill development, team play, fitness tailored for women", "Seasonal / Camps", "All Levels", "Women"},
	{"⚡", "T20 / Short Format Coaching", "Youth & Adults", "Power-hitting, death bowling, situational tactics, fielding", "Camps / Short-term", "Intermediate", "Format-Specific"},
	{"🕰️", "Test / Long Format Coaching", "Advanced players", "Patience, concentration, long bowling spells, endurance", "Seasonal / Block programs", "Advanced", "Format-Specific"},
	{"🎉", "Holiday Camps", "Kids & Youth", "Fun skill sessions, mini-matches, teamwork & games", "Short-term (1–4 weeks)", "Beginner", "Camps"},
	{"🌞", "Summer Camps", "Kids, Youth & Teens", "Intensive daily training, match practice + fun activities", "Short-term (2–8 weeks)", "All Levels", "Camps"},
	{"👔", "Corporate / Weekend Programs", "Adults (Amateur)", "Basics, team-building, light fitness, social matches", "Weekend / Short-term", "Beginner", "Corporate"},
	{"💻", "Online / Virtual Coaching", "All ages", "Remote video analysis, drills, training plans & nutrition", "Subscription / Customized", "All Levels", "Virtual"},
}

func newSuggested(id string, i int) Program {
	s := suggestedPrograms[i]
	return Program{
		ID:          id,
		Name:        s.name,
		Description: "Suggested program: " + s.focus,
		Duration:    s.format,
		Price:       suggestedPrice,
		Level:       s.level,
		Category:    s.category,
		Icon:        s.icon,
		AgeGroup:    s.ageGroup,
		FocusAreas:  s.focus,
		Format:      s.format,
		IsSuggested: true,
		IsActive:    true,
	}
}
