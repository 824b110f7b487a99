// AngelaMos | 2026
// entity.go

package content

import (
	"time"

	"github.com/cricketacademy/academy-api/internal/core"
)

type StarPlayer struct {
	ID           string               `db:"id"`
	Name         string               `db:"name"`
	PhotoURL     string               `db:"photo_url"`
	Achievements core.JSONB[[]string] `db:"achievements"`
	PlayerTypes  core.JSONB[[]string] `db:"player_types"`
	Represents   core.JSONB[[]string] `db:"represents"`
	SortOrder    int                  `db:"sort_order"`
	CreatedAt    time.Time            `db:"created_at"`
	UpdatedAt    time.Time            `db:"updated_at"`

	Stats       []PlayerStat `db:"-"`
	Tournaments []Tournament `db:"-"`
}

type PlayerStat struct {
	ID            string  `db:"id"             json:"id"`
	PlayerID      string  `db:"player_id"      json:"-"`
	Year          string  `db:"year"           json:"year"`
	Runs          int     `db:"runs"           json:"runs"`
	Wickets       int     `db:"wickets"        json:"wickets"`
	Matches       int     `db:"matches"        json:"matches"`
	Centuries     int     `db:"centuries"      json:"centuries"`
	HalfCenturies int     `db:"half_centuries" json:"half_centuries"`
	StrikeRate    float64 `db:"strike_rate"    json:"strike_rate"`
	EconomyRate   float64 `db:"economy_rate"   json:"economy_rate"`
	Average       float64 `db:"average"        json:"average"`
}

type Tournament struct {
	ID       string `db:"id"        json:"id"`
	PlayerID string `db:"player_id" json:"-"`
	Name     string `db:"name"      json:"name"`
	Month    string `db:"month"     json:"month"`
	Year     string `db:"year"      json:"year"`
	Runs     int    `db:"runs"      json:"runs"`
	Wickets  int    `db:"wickets"   json:"wickets"`
	Matches  int    `db:"matches"   json:"matches"`
}

type Facility struct {
	ID          string               `db:"id"`
	Title       string               `db:"title"`
	Description string               `db:"description"`
	ImageURL    string               `db:"image_url"`
	Features    core.JSONB[[]string] `db:"features"`
	SortOrder   int                  `db:"sort_order"`
	CreatedAt   time.Time            `db:"created_at"`
	UpdatedAt   time.Time            `db:"updated_at"`
}

type HeroImage struct {
	ImageURL  string    `db:"image_url"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SortItem moves one player or facility to a new position.
type SortItem struct {
	ID        string `json:"id"        validate:"required"`
	SortOrder int    `json:"sortOrder" validate:"gte=0"`
}
