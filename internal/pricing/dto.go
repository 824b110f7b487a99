// AngelaMos | 2026
// dto.go

package pricing

import (
	"strings"
	"time"
)

type AddOnRequest struct {
	Name                   string   `json:"service_name"             validate:"required,min=1,max=150"`
	Category               string   `json:"service_category"         validate:"required,oneof=EQUIPMENT COACHING FACILITY TECHNOLOGY CATERING SECURITY"`
	ServiceType            string   `json:"service_type"             validate:"omitempty,max=50"`
	Description            string   `json:"description"              validate:"omitempty,max=2000"`
	BasePrice              float64  `json:"base_price"               validate:"gte=0"`
	HourlyRate             float64  `json:"hourly_rate"              validate:"gte=0"`
	DailyRate              float64  `json:"daily_rate"               validate:"gte=0"`
	PerUnitRate            float64  `json:"per_unit_rate"            validate:"gte=0"`
	QuantityAvailable      int      `json:"quantity_available"       validate:"gte=0"`
	MaxQuantityPerBooking  int      `json:"max_quantity_per_booking" validate:"gte=0"`
	IsAvailable            *bool    `json:"is_available"`
	RequiresAdvanceBooking bool     `json:"requires_advance_booking"`
	AdvanceBookingHours    int      `json:"advance_booking_hours"    validate:"gte=0"`
	WeekendMultiplier      *float64 `json:"weekend_multiplier"       validate:"omitempty,gt=0,lte=10"`
	TaxRate                *float64 `json:"tax_rate"                 validate:"omitempty,gte=0,lte=100"`
	Currency               string   `json:"currency"                 validate:"omitempty,len=3,alpha"`
}

func (req AddOnRequest) apply(a *AddOn) {
	a.Name = strings.TrimSpace(req.Name)
	a.Category = req.Category
	a.ServiceType = req.ServiceType
	a.Description = req.Description
	a.BasePrice = req.BasePrice
	a.HourlyRate = req.HourlyRate
	a.DailyRate = req.DailyRate
	a.PerUnitRate = req.PerUnitRate
	a.QuantityAvailable = req.QuantityAvailable
	if a.QuantityAvailable == 0 {
		a.QuantityAvailable = 1
	}
	a.MaxQuantityPerBooking = req.MaxQuantityPerBooking
	if a.MaxQuantityPerBooking == 0 {
		a.MaxQuantityPerBooking = 1
	}
	if req.IsAvailable != nil {
		a.IsAvailable = *req.IsAvailable
	}
	a.RequiresAdvanceBooking = req.RequiresAdvanceBooking
	a.AdvanceBookingHours = req.AdvanceBookingHours
	a.WeekendMultiplier = 1
	if req.WeekendMultiplier != nil {
		a.WeekendMultiplier = *req.WeekendMultiplier
	}
	a.TaxRate = 18
	if req.TaxRate != nil {
		a.TaxRate = *req.TaxRate
	}
	a.Currency = strings.ToUpper(req.Currency)
	if a.Currency == "" {
		a.Currency = "INR"
	}
}

type PackageRequest struct {
	Name                    string   `json:"package_name"              validate:"required,min=1,max=150"`
	PackageType             string   `json:"package_type"              validate:"required,oneof=GROUND NET COACHING EVENT"`
	DurationType            string   `json:"duration_type"             validate:"required,oneof=HOURLY HALF_DAY FULL_DAY WEEKLY MONTHLY"`
	DurationValue           float64  `json:"duration_value"            validate:"gte=0"`
	BasePrice               float64  `json:"base_price"                validate:"gt=0"`
	DiscountPercentage      float64  `json:"discount_percentage"       validate:"gte=0,lte=100"`
	PeakHourMultiplier      *float64 `json:"peak_hour_multiplier"      validate:"omitempty,gt=0,lte=10"`
	WeekendMultiplier       *float64 `json:"weekend_multiplier"        validate:"omitempty,gt=0,lte=10"`
	WeekdayDiscount         float64  `json:"weekday_discount"          validate:"gte=0,lte=100"`
	GroupDiscountThreshold  int      `json:"group_discount_threshold"  validate:"gte=0"`
	GroupDiscountPercentage float64  `json:"group_discount_percentage" validate:"gte=0,lte=100"`
	IsActive                *bool    `json:"is_active"`
}

func (req PackageRequest) apply(p *Package) {
	p.Name = strings.TrimSpace(req.Name)
	p.PackageType = req.PackageType
	p.DurationType = req.DurationType
	p.DurationValue = req.DurationValue
	p.BasePrice = req.BasePrice
	p.DiscountPercentage = req.DiscountPercentage
	p.PeakHourMultiplier = 1
	if req.PeakHourMultiplier != nil {
		p.PeakHourMultiplier = *req.PeakHourMultiplier
	}
	p.WeekendMultiplier = 1
	if req.WeekendMultiplier != nil {
		p.WeekendMultiplier = *req.WeekendMultiplier
	}
	p.WeekdayDiscount = req.WeekdayDiscount
	p.GroupDiscountThreshold = req.GroupDiscountThreshold
	if p.GroupDiscountThreshold == 0 {
		p.GroupDiscountThreshold = 1
	}
	p.GroupDiscountPercentage = req.GroupDiscountPercentage
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
}

type AddOnResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"service_name"`
	Category               string    `json:"service_category"`
	ServiceType            string    `json:"service_type"`
	Description            string    `json:"description"`
	BasePrice              float64   `json:"base_price"`
	HourlyRate             float64   `json:"hourly_rate"`
	DailyRate              float64   `json:"daily_rate"`
	PerUnitRate            float64   `json:"per_unit_rate"`
	QuantityAvailable      int       `json:"quantity_available"`
	MaxQuantityPerBooking  int       `json:"max_quantity_per_booking"`
	IsAvailable            bool      `json:"is_available"`
	RequiresAdvanceBooking bool      `json:"requires_advance_booking"`
	AdvanceBookingHours    int       `json:"advance_booking_hours"`
	WeekendMultiplier      float64   `json:"weekend_multiplier"`
	TaxRate                float64   `json:"tax_rate"`
	Currency               string    `json:"currency"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type PackageResponse struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"package_name"`
	PackageType             string    `json:"package_type"`
	DurationType            string    `json:"duration_type"`
	DurationValue           float64   `json:"duration_value"`
	BasePrice               float64   `json:"base_price"`
	DiscountedPrice         float64   `json:"discounted_price"`
	DiscountPercentage      float64   `json:"discount_percentage"`
	PeakHourMultiplier      float64   `json:"peak_hour_multiplier"`
	WeekendMultiplier       float64   `json:"weekend_multiplier"`
	WeekdayDiscount         float64   `json:"weekday_discount"`
	GroupDiscountThreshold  int       `json:"group_discount_threshold"`
	GroupDiscountPercentage float64   `json:"group_discount_percentage"`
	IsActive                bool      `json:"is_active"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func ToAddOnResponse(a *AddOn) AddOnResponse {
	return AddOnResponse{
		ID:                     a.ID,
		Name:                   a.Name,
		Category:               a.Category,
		ServiceType:            a.ServiceType,
		Description:            a.Description,
		BasePrice:              a.BasePrice,
		HourlyRate:             a.HourlyRate,
		DailyRate:              a.DailyRate,
		PerUnitRate:            a.PerUnitRate,
		QuantityAvailable:      a.QuantityAvailable,
		MaxQuantityPerBooking:  a.MaxQuantityPerBooking,
		IsAvailable:            a.IsAvailable,
		RequiresAdvanceBooking: a.RequiresAdvanceBooking,
		AdvanceBookingHours:    a.AdvanceBookingHours,
		WeekendMultiplier:      a.WeekendMultiplier,
		TaxRate:                a.TaxRate,
		Currency:               a.Currency,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

func ToPackageResponse(p *Package) PackageResponse {
	return PackageResponse{
		ID:                      p.ID,
		Name:                    p.Name,
		PackageType:             p.PackageType,
		DurationType:            p.DurationType,
		DurationValue:           p.DurationValue,
		BasePrice:               p.BasePrice,
		DiscountedPrice:         round2(p.BasePrice * (1 - p.DiscountPercentage/100)),
		DiscountPercentage:      p.DiscountPercentage,
		PeakHourMultiplier:      p.PeakHourMultiplier,
		WeekendMultiplier:       p.WeekendMultiplier,
		WeekdayDiscount:         p.WeekdayDiscount,
		GroupDiscountThreshold:  p.GroupDiscountThreshold,
		GroupDiscountPercentage: p.GroupDiscountPercentage,
		IsActive:                p.IsActive,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

func toAddOnList(addOns []AddOn) []AddOnResponse {
	out := make([]AddOnResponse, 0, len(addOns))
	for i := range addOns {
		out = append(out, ToAddOnResponse(&addOns[i]))
	}
	return out
}

func toPackageList(packages []Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for i := range packages {
		out = append(out, ToPackageResponse(&packages[i]))
	}
	return out
}
