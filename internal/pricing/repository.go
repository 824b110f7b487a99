// AngelaMos | 2026
// repository.go

package pricing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Repository interface {
	CreateAddOn(ctx context.Context, a *AddOn) error
	UpdateAddOn(ctx context.Context, a *AddOn) error
	DeleteAddOn(ctx context.Context, id string) error
	GetAddOn(ctx context.Context, id string) (*AddOn, error)
	ListAddOns(ctx context.Context, availableOnly bool, category string) ([]AddOn, error)

	CreatePackage(ctx context.Context, p *Package) error
	UpdatePackage(ctx context.Context, p *Package) error
	DeletePackage(ctx context.Context, id string) error
	GetPackage(ctx context.Context, id string) (*Package, error)
	ListPackages(ctx context.Context, activeOnly bool, packageType string) ([]Package, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const addOnColumns = `id, name, category, service_type, description, base_price,
	hourly_rate, daily_rate, per_unit_rate, quantity_available,
	max_quantity_per_booking, is_available, requires_advance_booking,
	advance_booking_hours, weekend_multiplier, tax_rate, currency,
	created_at, updated_at`

const packageColumns = `id, name, package_type, duration_type, duration_value,
	base_price, discount_percentage, peak_hour_multiplier, weekend_multiplier,
	weekday_discount, group_discount_threshold, group_discount_percentage,
	is_active, created_at, updated_at`

func (r *repository) CreateAddOn(ctx context.Context, a *AddOn) error {
	query := `
		INSERT INTO add_on_services (id, name, category, service_type, description,
		                             base_price, hourly_rate, daily_rate,
		                             per_unit_rate, quantity_available,
		                             max_quantity_per_booking, is_available,
		                             requires_advance_booking, advance_booking_hours,
		                             weekend_multiplier, tax_rate, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		a.ID, a.Name, a.Category, a.ServiceType, a.Description,
		a.BasePrice, a.HourlyRate, a.DailyRate,
		a.PerUnitRate, a.QuantityAvailable,
		a.MaxQuantityPerBooking, a.IsAvailable,
		a.RequiresAdvanceBooking, a.AdvanceBookingHours,
		a.WeekendMultiplier, a.TaxRate, a.Currency,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create add-on: %w", err)
	}
	return nil
}

func (r *repository) UpdateAddOn(ctx context.Context, a *AddOn) error {
	query := `
		UPDATE add_on_services SET
			name = $2, category = $3, service_type = $4, description = $5,
			base_price = $6, hourly_rate = $7, daily_rate = $8,
			per_unit_rate = $9, quantity_available = $10,
			max_quantity_per_booking = $11, is_available = $12,
			requires_advance_booking = $13, advance_booking_hours = $14,
			weekend_multiplier = $15, tax_rate = $16, currency = $17,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &a.UpdatedAt, query,
		a.ID, a.Name, a.Category, a.ServiceType, a.Description,
		a.BasePrice, a.HourlyRate, a.DailyRate,
		a.PerUnitRate, a.QuantityAvailable,
		a.MaxQuantityPerBooking, a.IsAvailable,
		a.RequiresAdvanceBooking, a.AdvanceBookingHours,
		a.WeekendMultiplier, a.TaxRate, a.Currency,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update add-on: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update add-on: %w", err)
	}
	return nil
}

func (r *repository) DeleteAddOn(ctx context.Context, id string) error {
	return r.delete(ctx, "add_on_services", id)
}

func (r *repository) GetAddOn(ctx context.Context, id string) (*AddOn, error) {
	var a AddOn
	err := r.db.GetContext(ctx, &a, `SELECT `+addOnColumns+` FROM add_on_services WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get add-on: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get add-on: %w", err)
	}
	return &a, nil
}

func (r *repository) ListAddOns(ctx context.Context, availableOnly bool, category string) ([]AddOn, error) {
	query := `SELECT ` + addOnColumns + `
		FROM add_on_services
		WHERE ($1 = FALSE OR is_available)
		  AND ($2 = '' OR category = upper($2))
		ORDER BY category, name`

	var addOns []AddOn
	if err := r.db.SelectContext(ctx, &addOns, query, availableOnly, category); err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}
	return addOns, nil
}

func (r *repository) CreatePackage(ctx context.Context, p *Package) error {
	query := `
		INSERT INTO pricing_packages (id, name, package_type, duration_type,
		                              duration_value, base_price,
		                              discount_percentage, peak_hour_multiplier,
		                              weekend_multiplier, weekday_discount,
		                              group_discount_threshold,
		                              group_discount_percentage, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		p.ID, p.Name, p.PackageType, p.DurationType,
		p.DurationValue, p.BasePrice,
		p.DiscountPercentage, p.PeakHourMultiplier,
		p.WeekendMultiplier, p.WeekdayDiscount,
		p.GroupDiscountThreshold,
		p.GroupDiscountPercentage, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create pricing package: %w", err)
	}
	return nil
}

func (r *repository) UpdatePackage(ctx context.Context, p *Package) error {
	query := `
		UPDATE pricing_packages SET
			name = $2, package_type = $3, duration_type = $4,
			duration_value = $5, base_price = $6, discount_percentage = $7,
			peak_hour_multiplier = $8, weekend_multiplier = $9,
			weekday_discount = $10, group_discount_threshold = $11,
			group_discount_percentage = $12, is_active = $13,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &p.UpdatedAt, query,
		p.ID, p.Name, p.PackageType, p.DurationType,
		p.DurationValue, p.BasePrice, p.DiscountPercentage,
		p.PeakHourMultiplier, p.WeekendMultiplier,
		p.WeekdayDiscount, p.GroupDiscountThreshold,
		p.GroupDiscountPercentage, p.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update pricing package: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update pricing package: %w", err)
	}
	return nil
}

func (r *repository) DeletePackage(ctx context.Context, id string) error {
	return r.delete(ctx, "pricing_packages", id)
}

func (r *repository) GetPackage(ctx context.Context, id string) (*Package, error) {
	var p Package
	err := r.db.GetContext(ctx, &p, `SELECT `+packageColumns+` FROM pricing_packages WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get pricing package: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get pricing package: %w", err)
	}
	return &p, nil
}

func (r *repository) ListPackages(ctx context.Context, activeOnly bool, packageType string) ([]Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM pricing_packages
		WHERE ($1 = FALSE OR is_active)
		  AND ($2 = '' OR package_type = upper($2))
		ORDER BY package_type, base_price`

	var packages []Package
	if err := r.db.SelectContext(ctx, &packages, query, activeOnly, packageType); err != nil {
		return nil, fmt.Errorf("list pricing packages: %w", err)
	}
	return packages, nil
}

func (r *repository) delete(ctx context.Context, table, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
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
