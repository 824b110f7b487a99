// AngelaMos | 2026
// dto.go

package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type StatRequest struct {
	Year          string  `json:"year"           validate:"required,max=10"`
	Runs          int     `json:"runs"           validate:"gte=0"`
	Wickets       int     `json:"wickets"        validate:"gte=0"`
	Matches       int     `json:"matches"        validate:"gte=0"`
	Centuries     int     `json:"centuries"      validate:"gte=0"`
	HalfCenturies int     `json:"half_centuries" validate:"gte=0"`
	StrikeRate    float64 `json:"strike_rate"    validate:"gte=0"`
	EconomyRate   float64 `json:"economy_rate"   validate:"gte=0"`
	Average       float64 `json:"average"        validate:"gte=0"`
}

type TournamentRequest struct {
	Name    string `json:"name"    validate:"required,max=150"`
	Month   string `json:"month"   validate:"omitempty,max=20"`
	Year    string `json:"year"    validate:"omitempty,max=10"`
	Runs    int    `json:"runs"    validate:"gte=0"`
	Wickets int    `json:"wickets" validate:"gte=0"`
	Matches int    `json:"matches" validate:"gte=0"`
}

type StarPlayerRequest struct {
	Name         string              `json:"name"         validate:"required,min=1,max=100"`
	PhotoURL     string              `json:"photo_url"    validate:"omitempty,max=500"`
	Achievements []string            `json:"achievements" validate:"omitempty,dive,max=300"`
	PlayerTypes  []string            `json:"player_types" validate:"omitempty,dive,max=50"`
	Represents   []string            `json:"represents"   validate:"omitempty,dive,max=100"`
	SortOrder    int                 `json:"sort_order"   validate:"gte=0"`
	Stats        []StatRequest       `json:"stats"        validate:"omitempty,dive"`
	Tournaments  []TournamentRequest `json:"tournaments"  validate:"omitempty,dive"`
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// apply overwrites p and rebuilds its children with fresh ids.
func (req StarPlayerRequest) apply(p *StarPlayer) {
	p.Name = strings.TrimSpace(req.Name)
	p.PhotoURL = req.PhotoURL
	p.Achievements.V = nonNil(req.Achievements)
	p.PlayerTypes.V = nonNil(req.PlayerTypes)
	p.Represents.V = nonNil(req.Represents)
	p.SortOrder = req.SortOrder

	p.Stats = make([]PlayerStat, 0, len(req.Stats))
	for _, s := range req.Stats {
		p.Stats = append(p.Stats, PlayerStat{
			ID:            uuid.NewString(),
			PlayerID:      p.ID,
			Year:          s.Year,
			Runs:          s.Runs,
			Wickets:       s.Wickets,
			Matches:       s.Matches,
			Centuries:     s.Centuries,
			HalfCenturies: s.HalfCenturies,
			StrikeRate:    s.StrikeRate,
			EconomyRate:   s.EconomyRate,
			Average:       s.Average,
		})
	}

	p.Tournaments = make([]Tournament, 0, len(req.Tournaments))
	for _, t := range req.Tournaments {
		p.Tournaments = append(p.Tournaments, Tournament{
			ID:       uuid.NewString(),
			PlayerID: p.ID,
			Name:     t.Name,
			Month:    t.Month,
			Year:     t.Year,
			Runs:     t.Runs,
			Wickets:  t.Wickets,
			Matches:  t.Matches,
		})
	}
}

type FacilityRequest struct {
	Title       string   `json:"title"       validate:"required,min=1,max=150"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string   `json:"image_url"   validate:"omitempty,max=500"`
	Features    []string `json:"features"    validate:"omitempty,dive,max=200"`
	SortOrder   int      `json:"sort_order"  validate:"gte=0"`
}

func (req FacilityRequest) apply(f *Facility) {
	f.Title = strings.TrimSpace(req.Title)
	f.Description = req.Description
	f.ImageURL = req.ImageURL
	f.Features.V = nonNil(req.Features)
	f.SortOrder = req.SortOrder
}

type HeroImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,max=500"`
}

type StarPlayerResponse struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	PhotoURL     string       `json:"photo_url"`
	Achievements []string     `json:"achievements"`
	PlayerTypes  []string     `json:"player_types"`
	Represents   []string     `json:"represents"`
	SortOrder    int          `json:"sort_order"`
	Stats        []PlayerStat `json:"stats"`
	Tournaments  []Tournament `json:"tournaments"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type FacilityResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Features    []string  `json:"features"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HeroImageResponse struct {
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HomepageResponse struct {
	HeroImage   *HeroImageResponse   `json:"heroImage"`
	StarPlayers []StarPlayerResponse `json:"starPlayers"`
	Facilities  []FacilityResponse   `json:"facilities"`
}

type ReorderResponse struct {
	Updated int `json:"updated"`
}

func ToStarPlayerResponse(p *StarPlayer) StarPlayerResponse {
	stats := p.Stats
	if stats == nil {
		stats = []PlayerStat{}
	}
	tournaments := p.Tournaments
	if tournaments == nil {
		tournaments = []Tournament{}
	}
	return StarPlayerResponse{
		ID:           p.ID,
		Name:         p.Name,
		PhotoURL:     p.PhotoURL,
		Achievements: nonNil(p.Achievements.V),
		PlayerTypes:  nonNil(p.PlayerTypes.V),
		Represents:   nonNil(p.Represents.V),
		SortOrder:    p.SortOrder,
		Stats:        stats,
		Tournaments:  tournaments,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToFacilityResponse(f *Facility) FacilityResponse {
	return FacilityResponse{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		ImageURL:    f.ImageURL,
		Features:    nonNil(f.Features.V),
		SortOrder:   f.SortOrder,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toPlayerList(players []StarPlayer) []StarPlayerResponse {
	out := make([]StarPlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, ToStarPlayerResponse(&players[i]))
	}
	return out
}

func toFacilityList(facilities []Facility) []FacilityResponse {
	out := make([]FacilityResponse, 0, len(facilities))
	for i := range facilities {
		out = append(out, ToFacilityResponse(&facilities[i]))
	}
	return out
}
