// AngelaMos | 2026
// entity.go

package ground

import (
	"time"

	"github.com/cricketacademy/academy-api/internal/core"
)

// Amenities holds the long tail of descriptive flags (pavilion, showers,
// scoreboard type and so on) that nothing queries on.
type Amenities map[string]any

type Ground struct {
	ID              string                `db:"id"`
	Name            string                `db:"name"`
	Description     string                `db:"description"`
	Location        string                `db:"location"`
	Capacity        int                   `db:"capacity"`
	PricePerHour    float64               `db:"price_per_hour"`
	IsActive        bool                  `db:"is_active"`
	ImageURL        string                `db:"image_url"`
	GroundType      string                `db:"ground_type"`
	GroundSize      string                `db:"ground_size"`
	TurfType        string                `db:"turf_type"`
	PitchType       string                `db:"pitch_type"`
	NumberOfPitches int                   `db:"number_of_pitches"`
	HasFloodlights  bool                  `db:"has_floodlights"`
	Amenities       core.JSONB[Amenities] `db:"amenities"`
	CreatedAt       time.Time             `db:"created_at"`
	UpdatedAt       time.Time             `db:"updated_at"`
}

const (
	LocationIndoor  = "INDOOR"
	LocationOutdoor = "OUTDOOR"

	SurfaceTurf    = "TURF"
	SurfaceMatting = "MATTING"
	SurfaceCement  = "CEMENT"
)

type Net struct {
	ID                  string               `db:"id"`
	GroundID            *string              `db:"ground_id"`
	Name                string               `db:"name"`
	NetNumber           string               `db:"net_number"`
	Description         string               `db:"description"`
	ImageURL            string               `db:"image_url"`
	Capacity            int                  `db:"capacity"`
	LocationType        string               `db:"location_type"`
	SurfaceType         string               `db:"surface_type"`
	PricePerHour        float64              `db:"price_per_hour"`
	IsAvailable         bool                 `db:"is_available"`
	HasBowlingMachine   bool                 `db:"has_bowling_machine"`
	HasFloodlights      bool                 `db:"has_floodlights"`
	CoachingAvailable   bool                 `db:"coaching_available"`
	SlotDurationMinutes int                  `db:"slot_duration_minutes"`
	Features            core.JSONB[[]string] `db:"features"`
	CreatedAt           time.Time            `db:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at"`
}
