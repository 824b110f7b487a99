// AngelaMos | 2026
// repository.go

package career

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, kind Kind, a *Application) error
	GetByID(ctx context.Context, kind Kind, id string) (*Application, error)
	List(ctx context.Context, kind Kind, onboardStatus, jobStatus string) ([]Application, error)
	UpdateStatus(ctx context.Context, kind Kind, a *Application) error
	Delete(ctx context.Context, kind Kind, id string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func columns(kind Kind) string {
	return fmt.Sprintf(`id, name, email, phone, %s AS details, home_address,
		COALESCE(%s, '') AS extras, experience_years, photo_url,
		onboard_status, job_status, created_at, updated_at`,
		kind.detailsColumn, kind.extrasColumn)
}

func (r *repository) Create(ctx context.Context, kind Kind, a *Application) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, email, phone, %s, home_address, %s,
		                experience_years, photo_url, onboard_status, job_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`,
		kind.table, kind.detailsColumn, kind.extrasColumn)

	err := r.db.QueryRowxContext(ctx, query,
		a.ID, a.Name, a.Email, a.Phone, a.Details, a.HomeAddress, a.Extras,
		a.ExperienceYears, a.PhotoURL, a.OnboardStatus, a.JobStatus,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if core.IsDuplicateKeyError(err) {
		return core.DuplicateError("email")
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", kind.Label, err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, kind Kind, id string) (*Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, columns(kind), kind.table)

	var a Application
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", kind.Label, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", kind.Label, err)
	}
	return &a, nil
}

func (r *repository) List(ctx context.Context, kind Kind, onboardStatus, jobStatus string) ([]Application, error) {
	query := fmt.Sprintf(`SELECT %s
		FROM %s
		WHERE ($1 = '' OR onboard_status = $1)
		  AND ($2 = '' OR job_status = $2)
		ORDER BY created_at DESC`, columns(kind), kind.table)

	var apps []Application
	if err := r.db.SelectContext(ctx, &apps, query, onboardStatus, jobStatus); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind.Label, err)
	}
	return apps, nil
}

func (r *repository) UpdateStatus(ctx context.Context, kind Kind, a *Application) error {
	query := fmt.Sprintf(`
		UPDATE %s SET onboard_status = $2, job_status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`, kind.table)

	err := r.db.GetContext(ctx, &a.UpdatedAt, query, a.ID, a.OnboardStatus, a.JobStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update %s: %w", kind.Label, core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update %s: %w", kind.Label, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, kind Kind, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+kind.table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind.Label, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", kind.Label, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete %s: %w", kind.Label, core.ErrNotFound)
	}
	return nil
}
