// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	IncrementTokenVersion(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, params ListUsersParams) ([]User, int, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `id, name, email, phone, age, experience_level, password_hash,
	role, status, is_active, email_verified, phone_verified, token_version,
	created_at, updated_at, deleted_at`

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, name, email, phone, age, experience_level,
		                   password_hash, role, status, is_active, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at, token_version`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.Age,
		user.ExperienceLevel,
		user.PasswordHash,
		user.Role,
		user.Status,
		user.IsActive,
		user.EmailVerified,
	)
	if err != nil {
		return fmt.Errorf("create user: %w", duplicateField(err))
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1) AND deleted_at IS NULL`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, email = $3, phone = $4, age = $5, experience_level = $6,
		    role = $7, status = $8, is_active = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Name,
		user.Email,
		user.Phone,
		user.Age,
		user.ExperienceLevel,
		user.Role,
		user.Status,
		user.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update user: %w", duplicateField(err))
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	return r.execOne(ctx, "update password", `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id, passwordHash)
}

func (r *repository) IncrementTokenVersion(
	ctx context.Context,
	id string,
) error {
	return r.execOne(ctx, "increment token version", `
		UPDATE users
		SET token_version = token_version + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
}

// Activate marks the email verified and moves the user to ACTIVE.
func (r *repository) Activate(ctx context.Context, id string) error {
	return r.execOne(ctx, "activate user", `
		UPDATE users
		SET status = 'ACTIVE', is_active = TRUE, email_verified = TRUE,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.execOne(ctx, "delete user", `
		UPDATE users
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r *repository) execOne(ctx context.Context, op, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()

	conditions := []string{"deleted_at IS NULL"}
	var args []any

	add := func(clause string, v any) {
		args = append(args, v)
		conditions = append(conditions, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(args))))
	}

	if params.Search != "" {
		add("(email ILIKE ? OR name ILIKE ? OR phone ILIKE ?)", "%"+core.EscapeLike(params.Search)+"%")
	}
	if params.Role != "" {
		add("role = ?", strings.ToUpper(params.Role))
	}
	if params.Status != "" {
		add("status = ?", strings.ToUpper(params.Status))
	}
	if params.ExperienceLevel != "" {
		add("experience_level = ?", strings.ToUpper(params.ExperienceLevel))
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM users WHERE " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		userColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, params.PageSize, params.Offset())

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) ExistsByPhone(
	ctx context.Context,
	phone string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE phone = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, phone); err != nil {
		return false, fmt.Errorf("check phone exists: %w", err)
	}

	return exists, nil
}

type groupCount struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

func (r *repository) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		ByStatus:          map[string]int{},
		ByExperienceLevel: map[string]int{},
		ByRole:            map[string]int{},
	}

	groups := []struct {
		column string
		into   map[string]int
	}{
		{"status", stats.ByStatus},
		{"experience_level", stats.ByExperienceLevel},
		{"role", stats.ByRole},
	}

	for _, g := range groups {
		var rows []groupCount
		query := fmt.Sprintf(`
			SELECT %s AS key, COUNT(*) AS count
			FROM users
			WHERE deleted_at IS NULL
			GROUP BY %s`, g.column, g.column)
		if err := r.db.SelectContext(ctx, &rows, query); err != nil {
			return nil, fmt.Errorf("user statistics by %s: %w", g.column, err)
		}
		for _, row := range rows {
			g.into[row.Key] = row.Count
		}
	}

	for _, n := range stats.ByStatus {
		stats.Total += n
	}
	stats.Active = stats.ByStatus[StatusActive]

	return stats, nil
}

// duplicateField turns a unique violation into a DuplicateError naming the
// column it hit.
func duplicateField(err error) error {
	switch core.DuplicateConstraint(err) {
	case "":
		return err
	case "users_phone_key":
		return core.DuplicateError("phone")
	default:
		return core.DuplicateError("email")
	}
}
