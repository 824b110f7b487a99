// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Info) error
	Update(ctx context.Context, c *Info) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*Info, error)
	List(ctx context.Context) ([]Info, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const infoColumns = `id, address, phone, email, created_at, updated_at`

func (r *repository) Create(ctx context.Context, c *Info) error {
	query := `
		INSERT INTO contact_info (id, address, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, c.ID, c.Address, c.Phone, c.Email).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create contact info: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, c *Info) error {
	query := `
		UPDATE contact_info SET
			address = $2, phone = $3, email = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, c.ID, c.Address, c.Phone, c.Email).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update contact info: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update contact info: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_info WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact info: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact info: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete contact info: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, id string) (*Info, error) {
	var c Info
	err := r.db.GetContext(ctx, &c, `SELECT `+infoColumns+` FROM contact_info WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contact info: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact info: %w", err)
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context) ([]Info, error) {
	var infos []Info
	err := r.db.SelectContext(ctx, &infos, `SELECT `+infoColumns+` FROM contact_info ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list contact info: %w", err)
	}
	return infos, nil
}
