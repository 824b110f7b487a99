// AngelaMos | 2026
// entity.go

package pricing

import (
	"math"
	"time"
)

const (
	DurationHourly  = "HOURLY"
	DurationHalfDay = "HALF_DAY"
	DurationFullDay = "FULL_DAY"
	DurationWeekly  = "WEEKLY"
	DurationMonthly = "MONTHLY"
)

type AddOn struct {
	ID                     string    `db:"id"`
	Name                   string    `db:"name"`
	Category               string    `db:"category"`
	ServiceType            string    `db:"service_type"`
	Description            string    `db:"description"`
	BasePrice              float64   `db:"base_price"`
	HourlyRate             float64   `db:"hourly_rate"`
	DailyRate              float64   `db:"daily_rate"`
	PerUnitRate            float64   `db:"per_unit_rate"`
	QuantityAvailable      int       `db:"quantity_available"`
	MaxQuantityPerBooking  int       `db:"max_quantity_per_booking"`
	IsAvailable            bool      `db:"is_available"`
	RequiresAdvanceBooking bool      `db:"requires_advance_booking"`
	AdvanceBookingHours    int       `db:"advance_booking_hours"`
	WeekendMultiplier      float64   `db:"weekend_multiplier"`
	TaxRate                float64   `db:"tax_rate"`
	Currency               string    `db:"currency"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}

type AddOnQuote struct {
	AddOnID  string  `json:"add_on_id"`
	Quantity int     `json:"quantity"`
	Hours    float64 `json:"hours"`
	Weekend  bool    `json:"weekend"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// Quote prices one booking of the add-on. Quantity is clamped to
// [1, MaxQuantityPerBooking].
func (a *AddOn) Quote(hours float64, weekend bool, quantity int) AddOnQuote {
	if quantity < 1 {
		quantity = 1
	}
	if a.MaxQuantityPerBooking > 0 && quantity > a.MaxQuantityPerBooking {
		quantity = a.MaxQuantityPerBooking
	}

	subtotal := a.BasePrice + a.HourlyRate*hours + a.PerUnitRate*float64(quantity)
	if weekend && a.WeekendMultiplier > 0 {
		subtotal *= a.WeekendMultiplier
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * a.TaxRate / 100)

	return AddOnQuote{
		AddOnID:  a.ID,
		Quantity: quantity,
		Hours:    hours,
		Weekend:  weekend,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
		Currency: a.Currency,
	}
}

type Package struct {
	ID                      string    `db:"id"`
	Name                    string    `db:"name"`
	PackageType             string    `db:"package_type"`
	DurationType            string    `db:"duration_type"`
	DurationValue           float64   `db:"duration_value"`
	BasePrice               float64   `db:"base_price"`
	DiscountPercentage      float64   `db:"discount_percentage"`
	PeakHourMultiplier      float64   `db:"peak_hour_multiplier"`
	WeekendMultiplier       float64   `db:"weekend_multiplier"`
	WeekdayDiscount         float64   `db:"weekday_discount"`
	GroupDiscountThreshold  int       `db:"group_discount_threshold"`
	GroupDiscountPercentage float64   `db:"group_discount_percentage"`
	IsActive                bool      `db:"is_active"`
	CreatedAt               time.Time `db:"created_at"`
	UpdatedAt               time.Time `db:"updated_at"`
}

type PackageQuote struct {
	PackageID     string  `json:"package_id"`
	Hours         float64 `json:"hours"`
	Players       int     `json:"players"`
	Weekend       bool    `json:"weekend"`
	Peak          bool    `json:"peak"`
	Base          float64 `json:"base"`
	GroupDiscount bool    `json:"group_discount"`
	Total         float64 `json:"total"`
	AmountSaved   float64 `json:"amount_saved"`
}

// Quote applies, in order: peak multiplier, weekend multiplier or weekday
// discount, package discount, then the group discount once players reach
// the threshold. Hourly packages scale with hours, the rest are flat.
func (p *Package) Quote(hours float64, players int, weekend, peak bool) PackageQuote {
	base := p.BasePrice
	if p.DurationType == DurationHourly {
		base *= hours
	}

	price := base
	if peak && p.PeakHourMultiplier > 0 {
		price *= p.PeakHourMultiplier
	}
	switch {
	case weekend && p.WeekendMultiplier > 0:
		price *= p.WeekendMultiplier
	case !weekend && p.WeekdayDiscount > 0:
		price *= 1 - p.WeekdayDiscount/100
	}
	if p.DiscountPercentage > 0 {
		price *= 1 - p.DiscountPercentage/100
	}

	group := p.GroupDiscountPercentage > 0 && p.GroupDiscountThreshold > 0 &&
		players >= p.GroupDiscountThreshold
	if group {
		price *= 1 - p.GroupDiscountPercentage/100
	}

	total := round2(price)
	return PackageQuote{
		PackageID:     p.ID,
		Hours:         hours,
		Players:       players,
		Weekend:       weekend,
		Peak:          peak,
		Base:          round2(base),
		GroupDiscount: group,
		Total:         total,
		AmountSaved:   math.Max(0, round2(base-total)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
