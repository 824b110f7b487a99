// AngelaMos | 2026
// dto.go

package booking

import (
	"time"
)

type CreateBookingRequest struct {
	BookingType         string   `json:"booking_type"         validate:"required,oneof=ground net"`
	ResourceID          string   `json:"resource_id"          validate:"required,uuid"`
	BookingDate         string   `json:"booking_date"         validate:"required,datetime=2006-01-02"`
	StartTime           string   `json:"start_time"           validate:"required,hhmm"`
	EndTime             string   `json:"end_time"             validate:"required,hhmm"`
	MatchType           string   `json:"match_type"           validate:"omitempty,max=50"`
	MatchOvers          *int     `json:"match_overs"          validate:"omitempty,gt=0"`
	Price               *float64 `json:"price"                validate:"omitempty,gte=0"`
	CustomerName        string   `json:"customer_name"        validate:"required,min=1,max=100"`
	CustomerEmail       string   `json:"customer_email"       validate:"required,email"`
	CustomerPhone       string   `json:"customer_phone"       validate:"omitempty,phone"`
	BookingCategory     string   `json:"booking_category"     validate:"omitempty,max=50"`
	DurationType        string   `json:"duration_type"        validate:"omitempty,max=50"`
	TeamName            string   `json:"team_name"            validate:"omitempty,max=100"`
	NumberOfPlayers     int      `json:"number_of_players"    validate:"omitempty,gte=1"`
	SpecialRequirements string   `json:"special_requirements" validate:"omitempty,max=2000"`
	AddOnServices       AddOns   `json:"add_on_services"`
	DiscountApplied     float64  `json:"discount_applied"     validate:"gte=0"`
	Notes               string   `json:"notes"                validate:"omitempty,max=2000"`
}

type UpdateBookingRequest struct {
	BookingType   *string  `json:"booking_type,omitempty"   validate:"omitempty,oneof=ground net"`
	ResourceID    *string  `json:"resource_id,omitempty"    validate:"omitempty,uuid"`
	BookingDate   *string  `json:"booking_date,omitempty"   validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string  `json:"start_time,omitempty"     validate:"omitempty,hhmm"`
	EndTime       *string  `json:"end_time,omitempty"       validate:"omitempty,hhmm"`
	MatchType     *string  `json:"match_type,omitempty"     validate:"omitempty,max=50"`
	MatchOvers    *int     `json:"match_overs,omitempty"    validate:"omitempty,gt=0"`
	Price         *float64 `json:"price,omitempty"          validate:"omitempty,gte=0"`
	CustomerName  *string  `json:"customer_name,omitempty"  validate:"omitempty,min=1,max=100"`
	CustomerEmail *string  `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerPhone *string  `json:"customer_phone,omitempty" validate:"omitempty,phone"`
	Status        *string  `json:"status,omitempty"         validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLATION_PENDING CANCELLED"`
	PaymentStatus *string  `json:"payment_status,omitempty" validate:"omitempty,oneof=PENDING PAID FAILED REFUNDED"`
	Notes         *string  `json:"notes,omitempty"          validate:"omitempty,max=2000"`
}

func (r UpdateBookingRequest) changesSchedule() bool {
	return r.BookingType != nil || r.ResourceID != nil || r.BookingDate != nil ||
		r.StartTime != nil || r.EndTime != nil
}

type ConfirmRequest struct {
	PaymentID string `json:"payment_id" validate:"required,max=100"`
}

type CancellationRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=1000"`
}

type ApproveCancellationRequest struct {
	RefundAmount float64 `json:"refund_amount" validate:"gte=0"`
}

type RejectCancellationRequest struct {
	Note string `json:"note" validate:"omitempty,max=1000"`
}

type ListParams struct {
	Page        int
	PageSize    int
	Status      string
	BookingType string
	Date        string
}

func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type BookingResponse struct {
	ID                  string    `json:"id"`
	BookingType         string    `json:"booking_type"`
	ResourceID          string    `json:"resource_id"`
	ResourceName        string    `json:"resource_name"`
	ResourceDescription string    `json:"resource_description,omitempty"`
	BookingDate         string    `json:"booking_date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	MatchType           string    `json:"match_type,omitempty"`
	MatchOvers          *int      `json:"match_overs,omitempty"`
	Price               float64   `json:"price"`
	CustomerName        string    `json:"customer_name"`
	CustomerEmail       string    `json:"customer_email"`
	CustomerPhone       string    `json:"customer_phone,omitempty"`
	UserID              *string   `json:"user_id,omitempty"`
	Status              string    `json:"status"`
	PaymentStatus       string    `json:"payment_status"`
	PaymentID           string    `json:"payment_id"`
	CancellationReason  string    `json:"cancellation_reason,omitempty"`
	RefundAmount        float64   `json:"refund_amount"`
	Notes               string    `json:"notes,omitempty"`
	BookingCategory     string    `json:"booking_category"`
	DurationType        string    `json:"duration_type"`
	TotalHours          float64   `json:"total_hours"`
	TeamName            string    `json:"team_name,omitempty"`
	NumberOfPlayers     int       `json:"number_of_players"`
	SpecialRequirements string    `json:"special_requirements,omitempty"`
	AddOnServices       AddOns    `json:"add_on_services,omitempty"`
	DiscountApplied     float64   `json:"discount_applied"`
	BookingSource       string    `json:"booking_source"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type SlotsResponse struct {
	ResourceID string      `json:"resource_id"`
	Date       string      `json:"date"`
	Slots      []TimeRange `json:"slots"`
}

func ToBookingResponse(b *Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		BookingType:         b.BookingType,
		ResourceID:          b.ResourceID,
		ResourceName:        b.ResourceName,
		ResourceDescription: b.ResourceDescription,
		BookingDate:         b.BookingDate,
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		MatchType:           b.MatchType,
		MatchOvers:          b.MatchOvers,
		Price:               b.Price,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		UserID:              b.UserID,
		Status:              b.Status,
		PaymentStatus:       b.PaymentStatus,
		PaymentID:           b.PaymentID,
		CancellationReason:  b.CancellationReason,
		RefundAmount:        b.RefundAmount,
		Notes:               b.Notes,
		BookingCategory:     b.BookingCategory,
		DurationType:        b.DurationType,
		TotalHours:          b.TotalHours,
		TeamName:            b.TeamName,
		NumberOfPlayers:     b.NumberOfPlayers,
		SpecialRequirements: b.SpecialRequirements,
		AddOnServices:       b.AddOnServices.V,
		DiscountApplied:     b.DiscountApplied,
		BookingSource:       b.BookingSource,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func ToBookingResponseList(bookings []Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	return out
}
