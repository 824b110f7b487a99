// AngelaMos | 2026
// repository.go

package booking

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
	// CreateIfFree inserts b unless another live booking overlaps it.
	CreateIfFree(ctx context.Context, b *Booking) error
	// SaveIfFree re-runs the overlap check, ignoring b itself, and saves.
	SaveIfFree(ctx context.Context, b *Booking) error
	// Save writes b only if its stored status still equals fromStatus.
	Save(ctx context.Context, b *Booking, fromStatus string) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListForUser(ctx context.Context, userID, email string) ([]Booking, error)
	ListByDate(ctx context.Context, date, bookingType string) ([]Booking, error)
	List(ctx context.Context, params ListParams) ([]Booking, int, error)
	BookedRanges(ctx context.Context, resourceID, date string) ([]TimeRange, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
	PaidRevenue(ctx context.Context) (float64, error)
}

type repository struct {
	db core.TxBeginner
}

func NewRepository(db core.TxBeginner) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, booking_type, resource_id, resource_name, resource_description,
	to_char(booking_date, 'YYYY-MM-DD') AS booking_date, start_time, end_time,
	match_type, match_overs, price, customer_name, customer_email, customer_phone,
	user_id, status, payment_status, payment_id, cancellation_reason,
	refund_amount, notes, booking_category, duration_type, total_hours,
	team_name, number_of_players, special_requirements, add_on_services,
	discount_applied, booking_source, created_at, updated_at`

func (r *repository) CreateIfFree(ctx context.Context, b *Booking) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockAndCheck(ctx, tx, b); err != nil {
			return err
		}

		query := `
			INSERT INTO bookings (
				id, booking_type, resource_id, resource_name, resource_description,
				booking_date, start_time, end_time, match_type, match_overs, price,
				customer_name, customer_email, customer_phone, user_id, status,
				payment_status, payment_id, cancellation_reason, refund_amount, notes,
				booking_category, duration_type, total_hours, team_name,
				number_of_players, special_requirements, add_on_services,
				discount_applied, booking_source
			) VALUES (
				$1, $2, $3, $4, $5, $6::date, $7, $8, $9, $10, $11, $12, $13, $14,
				$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
				$28, $29, $30
			)
			RETURNING created_at, updated_at`

		err := tx.QueryRowxContext(ctx, query,
			b.ID, b.BookingType, b.ResourceID, b.ResourceName, b.ResourceDescription,
			b.BookingDate, b.StartTime, b.EndTime, b.MatchType, b.MatchOvers, b.Price,
			b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.UserID, b.Status,
			b.PaymentStatus, b.PaymentID, b.CancellationReason, b.RefundAmount, b.Notes,
			b.BookingCategory, b.DurationType, b.TotalHours, b.TeamName,
			b.NumberOfPlayers, b.SpecialRequirements, b.AddOnServices,
			b.DiscountApplied, b.BookingSource,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) SaveIfFree(ctx context.Context, b *Booking) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := lockAndCheck(ctx, tx, b); err != nil {
			return err
		}
		return update(ctx, tx, b, "")
	})
}

func (r *repository) Save(ctx context.Context, b *Booking, fromStatus string) error {
	return update(ctx, r.db, b, fromStatus)
}

// lockAndCheck serialises writers on (resource, date) for the rest of the
// transaction, then looks for an overlapping live booking.
func lockAndCheck(ctx context.Context, tx *sqlx.Tx, b *Booking) error {
	if err := core.AdvisoryXactLock(ctx, tx, b.ResourceID, b.BookingDate); err != nil {
		return err
	}

	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE resource_id = $1
			  AND booking_date = $2::date
			  AND status <> 'CANCELLED'
			  AND start_time < $4
			  AND end_time > $3
			  AND id <> $5
		)`

	var taken bool
	if err := tx.GetContext(ctx, &taken, query,
		b.ResourceID, b.BookingDate, b.StartTime, b.EndTime, b.ID,
	); err != nil {
		return fmt.Errorf("check booking overlap: %w", err)
	}
	if taken {
		return ErrSlotTaken
	}
	return nil
}

func update(ctx context.Context, db core.DBTX, b *Booking, fromStatus string) error {
	query := `
		UPDATE bookings SET
			booking_type = $2, resource_id = $3, resource_name = $4,
			resource_description = $5, booking_date = $6::date, start_time = $7,
			end_time = $8, match_type = $9, match_overs = $10, price = $11,
			customer_name = $12, customer_email = $13, customer_phone = $14,
			status = $15, payment_status = $16, payment_id = $17,
			cancellation_reason = $18, refund_amount = $19, notes = $20,
			total_hours = $21, updated_at = NOW()
		WHERE id = $1 AND ($22 = '' OR status = $22)
		RETURNING updated_at`

	err := db.GetContext(ctx, &b.UpdatedAt, query,
		b.ID, b.BookingType, b.ResourceID, b.ResourceName, b.ResourceDescription,
		b.BookingDate, b.StartTime, b.EndTime, b.MatchType, b.MatchOvers, b.Price,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, b.Status,
		b.PaymentStatus, b.PaymentID, b.CancellationReason, b.RefundAmount,
		b.Notes, b.TotalHours, fromStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		if fromStatus != "" {
			return fmt.Errorf("update booking: %w", ErrInvalidTransition)
		}
		return fmt.Errorf("update booking: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get booking: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *repository) ListForUser(ctx context.Context, userID, email string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 OR lower(customer_email) = lower($2)
		ORDER BY created_at DESC`

	var bookings []Booking
	if err := r.db.SelectContext(ctx, &bookings, query, userID, email); err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) ListByDate(ctx context.Context, date, bookingType string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_date = $1::date AND ($2 = '' OR booking_type = $2)
		ORDER BY start_time`

	var bookings []Booking
	if err := r.db.SelectContext(ctx, &bookings, query, date, bookingType); err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	return bookings, nil
}

func (r *repository) List(ctx context.Context, params ListParams) ([]Booking, int, error) {
	params.Normalize()

	var conditions []string
	var args []any

	add := func(clause string, v any) {
		args = append(args, v)
		conditions = append(conditions, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(args))))
	}

	if params.Status != "" {
		add("status = ?", strings.ToUpper(params.Status))
	}
	if params.BookingType != "" {
		add("booking_type = ?", strings.ToLower(params.BookingType))
	}
	if params.Date != "" {
		add("booking_date = ?::date", params.Date)
	}

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM bookings WHERE "+whereClause, args...); err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s
		FROM bookings
		WHERE %s
		ORDER BY booking_date DESC, start_time DESC
		LIMIT $%d OFFSET $%d`,
		bookingColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, params.Offset())

	var bookings []Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, total, nil
}

func (r *repository) BookedRanges(ctx context.Context, resourceID, date string) ([]TimeRange, error) {
	query := `
		SELECT start_time, end_time
		FROM bookings
		WHERE resource_id = $1 AND booking_date = $2::date AND status <> 'CANCELLED'
		ORDER BY start_time`

	var ranges []TimeRange
	if err := r.db.SelectContext(ctx, &ranges, query, resourceID, date); err != nil {
		return nil, fmt.Errorf("list booked ranges: %w", err)
	}
	return ranges, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("delete booking: %w", core.ErrNotFound)
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT status, COUNT(*) AS count FROM bookings GROUP BY status`,
	); err != nil {
		return nil, fmt.Errorf("count bookings by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *repository) PaidRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	if err := r.db.GetContext(ctx, &revenue,
		`SELECT COALESCE(SUM(price), 0) FROM bookings WHERE payment_status = 'PAID'`,
	); err != nil {
		return 0, fmt.Errorf("sum paid revenue: %w", err)
	}
	return revenue, nil
}
