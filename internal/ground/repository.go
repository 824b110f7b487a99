// AngelaMos | 2026
// repository.go

package ground

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	CreateGround(ctx context.Context, g *Ground) error
	UpdateGround(ctx context.Context, g *Ground) error
	DeleteGround(ctx context.Context, id string) error
	GetGround(ctx context.Context, id string) (*Ground, error)
	ListGrounds(ctx context.Context, activeOnly bool) ([]Ground, error)
	ToggleGround(ctx context.Context, id string) (*Ground, error)

	CreateNet(ctx context.Context, n *Net) error
	UpdateNet(ctx context.Context, n *Net) error
	DeleteNet(ctx context.Context, id string) error
	GetNet(ctx context.Context, id string) (*Net, error)
	ListNets(ctx context.Context, filter NetFilter) ([]Net, error)
	ToggleNet(ctx context.Context, id string) (*Net, error)
}

// NetFilter narrows ListNets. Zero value lists every net.
type NetFilter struct {
	GroundID      string
	AvailableOnly bool
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const groundColumns = `id, name, description, location, capacity, price_per_hour,
	is_active, image_url, ground_type, ground_size, turf_type, pitch_type,
	number_of_pitches, has_floodlights, amenities, created_at, updated_at`

const netColumns = `id, ground_id, name, net_number, description, image_url,
	capacity, location_type, surface_type, price_per_hour, is_available,
	has_bowling_machine, has_floodlights, coaching_available,
	slot_duration_minutes, features, created_at, updated_at`

func duplicateName(op string, err error) error {
	if core.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, core.DuplicateError("name"))
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *repository) CreateGround(ctx context.Context, g *Ground) error {
	query := `
		INSERT INTO grounds (id, name, description, location, capacity,
		                     price_per_hour, is_active, image_url, ground_type,
		                     ground_size, turf_type, pitch_type,
		                     number_of_pitches, has_floodlights, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		g.ID, g.Name, g.Description, g.Location, g.Capacity,
		g.PricePerHour, g.IsActive, g.ImageURL, g.GroundType,
		g.GroundSize, g.TurfType, g.PitchType,
		g.NumberOfPitches, g.HasFloodlights, g.Amenities,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return duplicateName("create ground", err)
	}
	return nil
}

func (r *repository) UpdateGround(ctx context.Context, g *Ground) error {
	query := `
		UPDATE grounds SET
			name = $2, description = $3, location = $4, capacity = $5,
			price_per_hour = $6, is_active = $7, image_url = $8,
			ground_type = $9, ground_size = $10, turf_type = $11,
			pitch_type = $12, number_of_pitches = $13, has_floodlights = $14,
			amenities = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &g.UpdatedAt, query,
		g.ID, g.Name, g.Description, g.Location, g.Capacity,
		g.PricePerHour, g.IsActive, g.ImageURL,
		g.GroundType, g.GroundSize, g.TurfType,
		g.PitchType, g.NumberOfPitches, g.HasFloodlights,
		g.Amenities,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update ground: %w", core.ErrNotFound)
	}
	if err != nil {
		return duplicateName("update ground", err)
	}
	return nil
}

func (r *repository) DeleteGround(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "grounds", id)
}

func (r *repository) GetGround(ctx context.Context, id string) (*Ground, error) {
	var g Ground
	err := r.db.GetContext(ctx, &g, `SELECT `+groundColumns+` FROM grounds WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get ground: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get ground: %w", err)
	}
	return &g, nil
}

func (r *repository) ListGrounds(ctx context.Context, activeOnly bool) ([]Ground, error) {
	query := `SELECT ` + groundColumns + `
		FROM grounds
		WHERE ($1 = FALSE OR is_active)
		ORDER BY name`

	var grounds []Ground
	if err := r.db.SelectContext(ctx, &grounds, query, activeOnly); err != nil {
		return nil, fmt.Errorf("list grounds: %w", err)
	}
	return grounds, nil
}

func (r *repository) ToggleGround(ctx context.Context, id string) (*Ground, error) {
	query := `
		UPDATE grounds SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + groundColumns

	var g Ground
	err := r.db.GetContext(ctx, &g, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("toggle ground: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle ground: %w", err)
	}
	return &g, nil
}

func (r *repository) CreateNet(ctx context.Context, n *Net) error {
	query := `
		INSERT INTO nets (id, ground_id, name, net_number, description, image_url,
		                  capacity, location_type, surface_type, price_per_hour,
		                  is_available, has_bowling_machine, has_floodlights,
		                  coaching_available, slot_duration_minutes, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		n.ID, n.GroundID, n.Name, n.NetNumber, n.Description, n.ImageURL,
		n.Capacity, n.LocationType, n.SurfaceType, n.PricePerHour,
		n.IsAvailable, n.HasBowlingMachine, n.HasFloodlights,
		n.CoachingAvailable, n.SlotDurationMinutes, n.Features,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create net: %w", err)
	}
	return nil
}

func (r *repository) UpdateNet(ctx context.Context, n *Net) error {
	query := `
		UPDATE nets SET
			ground_id = $2, name = $3, net_number = $4, description = $5,
			image_url = $6, capacity = $7, location_type = $8,
			surface_type = $9, price_per_hour = $10, is_available = $11,
			has_bowling_machine = $12, has_floodlights = $13,
			coaching_available = $14, slot_duration_minutes = $15,
			features = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &n.UpdatedAt, query,
		n.ID, n.GroundID, n.Name, n.NetNumber, n.Description,
		n.ImageURL, n.Capacity, n.LocationType,
		n.SurfaceType, n.PricePerHour, n.IsAvailable,
		n.HasBowlingMachine, n.HasFloodlights,
		n.CoachingAvailable, n.SlotDurationMinutes,
		n.Features,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update net: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update net: %w", err)
	}
	return nil
}

func (r *repository) DeleteNet(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "nets", id)
}

func (r *repository) GetNet(ctx context.Context, id string) (*Net, error) {
	var n Net
	err := r.db.GetContext(ctx, &n, `SELECT `+netColumns+` FROM nets WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get net: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get net: %w", err)
	}
	return &n, nil
}

func (r *repository) ListNets(ctx context.Context, filter NetFilter) ([]Net, error) {
	query := `SELECT ` + netColumns + `
		FROM nets
		WHERE ($1 = '' OR ground_id::text = $1)
		  AND ($2 = FALSE OR is_available)
		ORDER BY net_number, name`

	var nets []Net
	if err := r.db.SelectContext(ctx, &nets, query, filter.GroundID, filter.AvailableOnly); err != nil {
		return nil, fmt.Errorf("list nets: %w", err)
	}
	return nets, nil
}

func (r *repository) ToggleNet(ctx context.Context, id string) (*Net, error) {
	query := `
		UPDATE nets SET is_available = NOT is_available, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + netColumns

	var n Net
	err := r.db.GetContext(ctx, &n, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("toggle net: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("toggle net: %w", err)
	}
	return &n, nil
}

func deleteByID(ctx context.Context, db core.DBTX, table, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete from %s: %w", table, core.ErrNotFound)
	}
	return nil
}
