// AngelaMos | 2026
// dto.go

package ground

import (
	"time"
)

type GroundRequest struct {
	Name            string    `json:"name"              validate:"required,min=1,max=150"`
	Description     string    `json:"description"       validate:"omitempty,max=5000"`
	Location        string    `json:"location"          validate:"omitempty,max=255"`
	Capacity        int       `json:"capacity"          validate:"gte=0"`
	PricePerHour    float64   `json:"price_per_hour"    validate:"gt=0"`
	IsActive        *bool     `json:"is_active"`
	ImageURL        string    `json:"image_url"         validate:"omitempty,max=2048"`
	GroundType      string    `json:"ground_type"       validate:"omitempty,max=20"`
	GroundSize      string    `json:"ground_size"       validate:"omitempty,max=50"`
	TurfType        string    `json:"turf_type"         validate:"omitempty,max=20"`
	PitchType       string    `json:"pitch_type"        validate:"omitempty,max=50"`
	NumberOfPitches int       `json:"number_of_pitches" validate:"gte=0"`
	HasFloodlights  bool      `json:"has_floodlights"`
	Amenities       Amenities `json:"amenities"`
}

func (req GroundRequest) apply(g *Ground) {
	g.Name = req.Name
	g.Description = req.Description
	g.Location = req.Location
	g.Capacity = req.Capacity
	g.PricePerHour = req.PricePerHour
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}
	g.ImageURL = req.ImageURL
	g.GroundType = orDefault(req.GroundType, "Cricket")
	g.GroundSize = req.GroundSize
	g.TurfType = orDefault(req.TurfType, "Natural Grass")
	g.PitchType = req.PitchType
	g.NumberOfPitches = req.NumberOfPitches
	if g.NumberOfPitches == 0 {
		g.NumberOfPitches = 1
	}
	g.HasFloodlights = req.HasFloodlights
	if req.Amenities == nil {
		req.Amenities = Amenities{}
	}
	g.Amenities.V = req.Amenities
}

type NetRequest struct {
	GroundID            *string  `json:"ground_id"             validate:"omitempty,uuid"`
	Name                string   `json:"name"                  validate:"required,min=1,max=150"`
	NetNumber           string   `json:"net_number"            validate:"omitempty,max=20"`
	Description         string   `json:"description"           validate:"omitempty,max=5000"`
	ImageURL            string   `json:"image_url"             validate:"omitempty,max=2048"`
	Capacity            int      `json:"capacity"              validate:"gte=0"`
	LocationType        string   `json:"location_type"         validate:"omitempty,oneof=INDOOR OUTDOOR"`
	SurfaceType         string   `json:"surface_type"          validate:"omitempty,oneof=TURF MATTING CEMENT"`
	PricePerHour        float64  `json:"price_per_hour"        validate:"gt=0"`
	IsAvailable         *bool    `json:"is_available"`
	HasBowlingMachine   bool     `json:"has_bowling_machine"`
	HasFloodlights      bool     `json:"has_floodlights"`
	CoachingAvailable   bool     `json:"coaching_available"`
	SlotDurationMinutes int      `json:"slot_duration_minutes" validate:"omitempty,gte=15,lte=240"`
	Features            []string `json:"features"              validate:"omitempty,dive,max=100"`
}

func (req NetRequest) apply(n *Net) {
	n.GroundID = req.GroundID
	n.Name = req.Name
	n.NetNumber = req.NetNumber
	n.Description = req.Description
	n.ImageURL = req.ImageURL
	n.Capacity = req.Capacity
	n.LocationType = orDefault(req.LocationType, LocationOutdoor)
	n.SurfaceType = orDefault(req.SurfaceType, SurfaceTurf)
	n.PricePerHour = req.PricePerHour
	if req.IsAvailable != nil {
		n.IsAvailable = *req.IsAvailable
	}
	n.HasBowlingMachine = req.HasBowlingMachine
	n.HasFloodlights = req.HasFloodlights
	n.CoachingAvailable = req.CoachingAvailable
	n.SlotDurationMinutes = req.SlotDurationMinutes
	if n.SlotDurationMinutes == 0 {
		n.SlotDurationMinutes = 60
	}
	if req.Features == nil {
		req.Features = []string{}
	}
	n.Features.V = req.Features
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type GroundResponse struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Location        string        `json:"location"`
	Capacity        int           `json:"capacity"`
	PricePerHour    float64       `json:"price_per_hour"`
	IsActive        bool          `json:"is_active"`
	ImageURL        string        `json:"image_url"`
	GroundType      string        `json:"ground_type"`
	GroundSize      string        `json:"ground_size"`
	TurfType        string        `json:"turf_type"`
	PitchType       string        `json:"pitch_type"`
	NumberOfPitches int           `json:"number_of_pitches"`
	HasFloodlights  bool          `json:"has_floodlights"`
	Amenities       Amenities     `json:"amenities"`
	Nets            []NetResponse `json:"nets,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type NetResponse struct {
	ID                  string    `json:"id"`
	GroundID            *string   `json:"ground_id"`
	Name                string    `json:"name"`
	NetNumber           string    `json:"net_number"`
	Description         string    `json:"description"`
	ImageURL            string    `json:"image_url"`
	Capacity            int       `json:"capacity"`
	LocationType        string    `json:"location_type"`
	SurfaceType         string    `json:"surface_type"`
	PricePerHour        float64   `json:"price_per_hour"`
	IsAvailable         bool      `json:"is_available"`
	HasBowlingMachine   bool      `json:"has_bowling_machine"`
	HasFloodlights      bool      `json:"has_floodlights"`
	CoachingAvailable   bool      `json:"coaching_available"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	Features            []string  `json:"features"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func ToGroundResponse(g *Ground) GroundResponse {
	amenities := g.Amenities.V
	if amenities == nil {
		amenities = Amenities{}
	}
	return GroundResponse{
		ID:              g.ID,
		Name:            g.Name,
		Description:     g.Description,
		Location:        g.Location,
		Capacity:        g.Capacity,
		PricePerHour:    g.PricePerHour,
		IsActive:        g.IsActive,
		ImageURL:        g.ImageURL,
		GroundType:      g.GroundType,
		GroundSize:      g.GroundSize,
		TurfType:        g.TurfType,
		PitchType:       g.PitchType,
		NumberOfPitches: g.NumberOfPitches,
		HasFloodlights:  g.HasFloodlights,
		Amenities:       amenities,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}

func ToNetResponse(n *Net) NetResponse {
	features := n.Features.V
	if features == nil {
		features = []string{}
	}
	return NetResponse{
		ID:                  n.ID,
		GroundID:            n.GroundID,
		Name:                n.Name,
		NetNumber:           n.NetNumber,
		Description:         n.Description,
		ImageURL:            n.ImageURL,
		Capacity:            n.Capacity,
		LocationType:        n.LocationType,
		SurfaceType:         n.SurfaceType,
		PricePerHour:        n.PricePerHour,
		IsAvailable:         n.IsAvailable,
		HasBowlingMachine:   n.HasBowlingMachine,
		HasFloodlights:      n.HasFloodlights,
		CoachingAvailable:   n.CoachingAvailable,
		SlotDurationMinutes: n.SlotDurationMinutes,
		Features:            features,
		CreatedAt:           n.CreatedAt,
		UpdatedAt:           n.UpdatedAt,
	}
}

func toGroundList(grounds []Ground) []GroundResponse {
	out := make([]GroundResponse, 0, len(grounds))
	for i := range grounds {
		out = append(out, ToGroundResponse(&grounds[i]))
	}
	return out
}

func toNetList(nets []Net) []NetResponse {
	out := make([]NetResponse, 0, len(nets))
	for i := range nets {
		out = append(out, ToNetResponse(&nets[i]))
	}
	return out
}
