// AngelaMos | 2026
// repository.go

package team

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, t *Team) error
	Update(ctx context.Context, t *Team) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context, name, skillLevel string) ([]Team, error)

	AddPlayer(ctx context.Context, p *Player) error
	UpdatePlayer(ctx context.Context, p *Player) error
	RemovePlayer(ctx context.Context, teamID, playerID string) error
	GetPlayer(ctx context.Context, teamID, playerID string) (*Player, error)
	Players(ctx context.Context, teamID string) ([]Player, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const teamColumns = `id, name, captain_name, captain_email, captain_phone,
	team_size, team_type, skill_level, age_group, home_ground,
	membership_status, loyalty_points, discount_percentage,
	created_at, updated_at`

const playerColumns = `id, team_id, name, email, phone, age, role, skill_level,
	jersey_number, is_active, created_at, updated_at`

func (r *repository) Create(ctx context.Context, t *Team) error {
	query := `
		INSERT INTO teams (id, name, captain_name, captain_email, captain_phone,
		                   team_size, team_type, skill_level, age_group,
		                   home_ground, membership_status, loyalty_points,
		                   discount_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		t.ID, t.Name, t.CaptainName, t.CaptainEmail, t.CaptainPhone,
		t.TeamSize, t.TeamType, t.SkillLevel, t.AgeGroup,
		t.HomeGround, t.MembershipStatus, t.LoyaltyPoints,
		t.DiscountPercentage,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create team: %w", core.DuplicateError("team_name"))
		}
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, t *Team) error {
	query := `
		UPDATE teams SET
			name = $2, captain_name = $3, captain_email = $4,
			captain_phone = $5, team_size = $6, team_type = $7,
			skill_level = $8, age_group = $9, home_ground = $10,
			membership_status = $11, loyalty_points = $12,
			discount_percentage = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &t.UpdatedAt, query,
		t.ID, t.Name, t.CaptainName, t.CaptainEmail,
		t.CaptainPhone, t.TeamSize, t.TeamType,
		t.SkillLevel, t.AgeGroup, t.HomeGround,
		t.MembershipStatus, t.LoyaltyPoints,
		t.DiscountPercentage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update team: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update team: %w", core.DuplicateError("team_name"))
		}
		return fmt.Errorf("update team: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete team: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Team, error) {
	var t Team
	err := r.db.GetContext(ctx, &t, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get team: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context, name, skillLevel string) ([]Team, error) {
	query := `SELECT ` + teamColumns + `
		FROM teams
		WHERE ($1 = '' OR name ILIKE $1)
		  AND ($2 = '' OR skill_level = upper($2))
		ORDER BY name`

	pattern := ""
	if name != "" {
		pattern = "%" + core.EscapeLike(name) + "%"
	}

	var teams []Team
	if err := r.db.SelectContext(ctx, &teams, query, pattern, skillLevel); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (r *repository) AddPlayer(ctx context.Context, p *Player) error {
	query := `
		INSERT INTO team_players (id, team_id, name, email, phone, age, role,
		                          skill_level, jersey_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.TeamID, p.Name, p.Email, p.Phone, p.Age, p.Role,
		p.SkillLevel, p.JerseyNumber, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("add player: %w", core.DuplicateError("jersey_number"))
		}
		return fmt.Errorf("add player: %w", err)
	}
	return nil
}

func (r *repository) UpdatePlayer(ctx context.Context, p *Player) error {
	query := `
		UPDATE team_players SET
			name = $3, email = $4, phone = $5, age = $6, role = $7,
			skill_level = $8, jersey_number = $9, is_active = $10,
			updated_at = NOW()
		WHERE id = $1 AND team_id = $2
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID, p.TeamID, p.Name, p.Email, p.Phone, p.Age, p.Role,
		p.SkillLevel, p.JerseyNumber, p.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update player: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update player: %w", core.DuplicateError("jersey_number"))
		}
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (r *repository) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM team_players WHERE id = $1 AND team_id = $2`, playerID, teamID)
	if err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("remove player: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) GetPlayer(ctx context.Context, teamID, playerID string) (*Player, error) {
	var p Player
	err := r.db.GetContext(ctx, &p,
		`SELECT `+playerColumns+` FROM team_players WHERE id = $1 AND team_id = $2`,
		playerID, teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get player: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &p, nil
}

func (r *repository) Players(ctx context.Context, teamID string) ([]Player, error) {
	query := `SELECT ` + playerColumns + `
		FROM team_players
		WHERE team_id = $1
		ORDER BY jersey_number NULLS LAST, name`

	var players []Player
	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}
