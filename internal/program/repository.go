// AngelaMos | 2026
// repository.go

package program

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, p *Program) error
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Program, error)
	List(ctx context.Context, filter ProgramFilter) ([]Program, error)
	// SeedSuggested inserts programs only if no suggested program exists
	// yet, and reports how many were written.
	SeedSuggested(ctx context.Context, programs []Program) (int, error)

	AssignCoach(ctx context.Context, programID, coachID string) error
	UnassignCoach(ctx context.Context, programID, coachID string) error
	CoachesOf(ctx context.Context, programID string) ([]Coach, error)

	CreateCoach(ctx context.Context, c *Coach) error
	UpdateCoach(ctx context.Context, c *Coach) error
	DeleteCoach(ctx context.Context, id string) error
	GetCoach(ctx context.Context, id string) (*Coach, error)
	ListCoaches(ctx context.Context, filter CoachFilter) ([]Coach, error)
}

type repository struct {
	db core.TxBeginner
}

func NewRepository(db core.TxBeginner) Repository {
	return &repository{db: db}
}

const programColumns = `id, name, description, duration, price, level, category,
	icon, age_group, focus_areas, format, is_suggested, is_active,
	created_at, updated_at`

const coachColumns = `id, name, email, phone, specialization, experience_years,
	certifications, bio, profile_image_url, hourly_rate, is_available,
	specifications, created_at, updated_at`

func insertProgram(ctx context.Context, db core.DBTX, p *Program) error {
	query := `
		INSERT INTO programs (id, name, description, duration, price, level,
		                      category, icon, age_group, focus_areas, format,
		                      is_suggested, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.Description, p.Duration, p.Price, p.Level,
		p.Category, p.Icon, p.AgeGroup, p.FocusAreas, p.Format,
		p.IsSuggested, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

func (r *repository) Create(ctx context.Context, p *Program) error {
	return insertProgram(ctx, r.db, p)
}

func (r *repository) Update(ctx context.Context, p *Program) error {
	query := `
		UPDATE programs SET
			name = $2, description = $3, duration = $4, price = $5, level = $6,
			category = $7, icon = $8, age_group = $9, focus_areas = $10,
			format = $11, is_suggested = $12, is_active = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID, p.Name, p.Description, p.Duration, p.Price, p.Level,
		p.Category, p.Icon, p.AgeGroup, p.FocusAreas,
		p.Format, p.IsSuggested, p.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update program: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "programs", id)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Program, error) {
	var p Program
	err := r.db.GetContext(ctx, &p, `SELECT `+programColumns+` FROM programs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get program: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter ProgramFilter) ([]Program, error) {
	var conditions []string
	var args []any

	add := func(clause string, v any) {
		args = append(args, v)
		conditions = append(conditions, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(args))))
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active")
	}
	if filter.SuggestedOnly {
		conditions = append(conditions, "is_suggested")
	}
	if filter.Keyword != "" {
		add("(name ILIKE ? OR description ILIKE ? OR focus_areas ILIKE ?)",
			"%"+core.EscapeLike(filter.Keyword)+"%")
	}
	if filter.Category != "" {
		add("lower(category) = lower(?)", filter.Category)
	}
	if filter.Level != "" {
		add("lower(level) = lower(?)", filter.Level)
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := `SELECT ` + programColumns + ` FROM programs WHERE ` + whereClause +
		` ORDER BY is_suggested, name`

	var programs []Program
	if err := r.db.SelectContext(ctx, &programs, query, args...); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

func (r *repository) SeedSuggested(ctx context.Context, programs []Program) (int, error) {
	created := 0
	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := core.AdvisoryXactLock(ctx, tx, "programs", "suggested"); err != nil {
			return err
		}

		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM programs WHERE is_suggested)`,
		); err != nil {
			return fmt.Errorf("check suggested programs: %w", err)
		}
		if exists {
			return nil
		}

		for i := range programs {
			if err := insertProgram(ctx, tx, &programs[i]); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (r *repository) AssignCoach(ctx context.Context, programID, coachID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO program_coaches (program_id, coach_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		programID, coachID,
	)
	if err != nil {
		return fmt.Errorf("assign coach: %w", err)
	}
	return nil
}

func (r *repository) UnassignCoach(ctx context.Context, programID, coachID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM program_coaches WHERE program_id = $1 AND coach_id = $2`,
		programID, coachID,
	)
	if err != nil {
		return fmt.Errorf("unassign coach: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unassign coach: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("unassign coach: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) CoachesOf(ctx context.Context, programID string) ([]Coach, error) {
	query := `
		SELECT c.id, c.name, c.email, c.phone, c.specialization,
		       c.experience_years, c.certifications, c.bio,
		       c.profile_image_url, c.hourly_rate, c.is_available,
		       c.specifications, c.created_at, c.updated_at
		FROM coaches c
		JOIN program_coaches pc ON pc.coach_id = c.id
		WHERE pc.program_id = $1
		ORDER BY c.name`

	var coaches []Coach
	if err := r.db.SelectContext(ctx, &coaches, query, programID); err != nil {
		return nil, fmt.Errorf("list program coaches: %w", err)
	}
	return coaches, nil
}

func (r *repository) CreateCoach(ctx context.Context, c *Coach) error {
	query := `
		INSERT INTO coaches (id, name, email, phone, specialization,
		                     experience_years, certifications, bio,
		                     profile_image_url, hourly_rate, is_available,
		                     specifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Specialization,
		c.ExperienceYears, c.Certifications, c.Bio,
		c.ProfileImageURL, c.HourlyRate, c.IsAvailable,
		c.Specifications,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("create coach: %w", core.DuplicateError("email"))
		}
		return fmt.Errorf("create coach: %w", err)
	}
	return nil
}

func (r *repository) UpdateCoach(ctx context.Context, c *Coach) error {
	query := `
		UPDATE coaches SET
			name = $2, email = $3, phone = $4, specialization = $5,
			experience_years = $6, certifications = $7, bio = $8,
			profile_image_url = $9, hourly_rate = $10, is_available = $11,
			specifications = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &c.UpdatedAt, query,
		c.ID, c.Name, c.Email, c.Phone, c.Specialization,
		c.ExperienceYears, c.Certifications, c.Bio,
		c.ProfileImageURL, c.HourlyRate, c.IsAvailable,
		c.Specifications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update coach: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return fmt.Errorf("update coach: %w", core.DuplicateError("email"))
		}
		return fmt.Errorf("update coach: %w", err)
	}
	return nil
}

func (r *repository) DeleteCoach(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "coaches", id)
}

func (r *repository) GetCoach(ctx context.Context, id string) (*Coach, error) {
	var c Coach
	err := r.db.GetContext(ctx, &c, `SELECT `+coachColumns+` FROM coaches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get coach: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	return &c, nil
}

func (r *repository) ListCoaches(ctx context.Context, filter CoachFilter) ([]Coach, error) {
	query := `SELECT ` + coachColumns + `
		FROM coaches
		WHERE ($1 = FALSE OR is_available)
		  AND ($2 = '' OR name ILIKE $2 OR specialization ILIKE $2 OR bio ILIKE $2)
		  AND ($3 = '' OR lower(specialization) = lower($3))
		ORDER BY name`

	keyword := ""
	if filter.Keyword != "" {
		keyword = "%" + core.EscapeLike(filter.Keyword) + "%"
	}

	var coaches []Coach
	if err := r.db.SelectContext(ctx, &coaches, query,
		filter.AvailableOnly, keyword, filter.Specialization,
	); err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return coaches, nil
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
