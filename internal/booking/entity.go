// AngelaMos | 2026
// entity.go

package booking

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cricketacademy/academy-api/internal/core"
)

const (
	TypeGround = "ground"
	TypeNet    = "net"
)

const (
	StatusPending             = "PENDING"
	StatusConfirmed           = "CONFIRMED"
	StatusCompleted           = "COMPLETED"
	StatusCancellationPending = "CANCELLATION_PENDING"
	StatusCancelled           = "CANCELLED"
)

const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

const (
	SourceOnline = "ONLINE"
	SourceAdmin  = "ADMIN"
)

var (
	ErrSlotTaken = core.NewAppError(
		core.ErrConflict, "Time slot is already booked", http.StatusConflict, "SLOT_TAKEN")
	ErrInvalidTransition = core.NewAppError(
		core.ErrConflict, "booking cannot move to that status", http.StatusConflict, "INVALID_TRANSITION")
)

type AddOns map[string]any

type Booking struct {
	ID                  string             `db:"id"`
	BookingType         string             `db:"booking_type"`
	ResourceID          string             `db:"resource_id"`
	ResourceName        string             `db:"resource_name"`
	ResourceDescription string             `db:"resource_description"`
	BookingDate         string             `db:"booking_date"`
	StartTime           string             `db:"start_time"`
	EndTime             string             `db:"end_time"`
	MatchType           string             `db:"match_type"`
	MatchOvers          *int               `db:"match_overs"`
	Price               float64            `db:"price"`
	CustomerName        string             `db:"customer_name"`
	CustomerEmail       string             `db:"customer_email"`
	CustomerPhone       string             `db:"customer_phone"`
	UserID              *string            `db:"user_id"`
	Status              string             `db:"status"`
	PaymentStatus       string             `db:"payment_status"`
	PaymentID           string             `db:"payment_id"`
	CancellationReason  string             `db:"cancellation_reason"`
	RefundAmount        float64            `db:"refund_amount"`
	Notes               string             `db:"notes"`
	BookingCategory     string             `db:"booking_category"`
	DurationType        string             `db:"duration_type"`
	TotalHours          float64            `db:"total_hours"`
	TeamName            string             `db:"team_name"`
	NumberOfPlayers     int                `db:"number_of_players"`
	SpecialRequirements string             `db:"special_requirements"`
	AddOnServices       core.JSONB[AddOns] `db:"add_on_services"`
	DiscountApplied     float64            `db:"discount_applied"`
	BookingSource       string             `db:"booking_source"`
	CreatedAt           time.Time          `db:"created_at"`
	UpdatedAt           time.Time          `db:"updated_at"`
}

// OwnedBy reports whether the booking belongs to the given user, matching
// on id first and falling back to the customer email for guest bookings.
func (b *Booking) OwnedBy(userID, email string) bool {
	if b.UserID != nil && *b.UserID == userID {
		return true
	}
	return email != "" && strings.EqualFold(b.CustomerEmail, email)
}

func (b *Booking) IsGatewayPayment() bool {
	return strings.HasPrefix(b.PaymentID, "pay_")
}

func (b *Booking) transition(to string, allowed ...string) error {
	for _, from := range allowed {
		if b.Status == from {
			b.Status = to
			return nil
		}
	}
	return fmt.Errorf("%s -> %s: %w", b.Status, to, ErrInvalidTransition)
}

// Confirm records a successful payment and completes the booking.
func (b *Booking) Confirm(paymentID string) error {
	if err := b.transition(StatusCompleted, StatusPending, StatusConfirmed); err != nil {
		return err
	}
	b.PaymentStatus = PaymentPaid
	b.PaymentID = paymentID
	return nil
}

func (b *Booking) RequestCancellation(reason string) error {
	if err := b.transition(
		StatusCancellationPending,
		StatusPending, StatusConfirmed, StatusCompleted,
	); err != nil {
		return err
	}
	b.CancellationReason = reason
	return nil
}

// ApproveCancellation cancels the booking and reports whether money has to
// go back to the customer.
func (b *Booking) ApproveCancellation(refund float64) (bool, error) {
	if err := b.transition(StatusCancelled, StatusCancellationPending); err != nil {
		return false, err
	}
	b.RefundAmount = refund
	if b.PaymentStatus == PaymentPaid && refund > 0 {
		b.PaymentStatus = PaymentRefunded
		return true, nil
	}
	return false, nil
}

func (b *Booking) RejectCancellation(note string) error {
	to := StatusPending
	if b.PaymentStatus == PaymentPaid {
		to = StatusConfirmed
	}
	if err := b.transition(to, StatusCancellationPending); err != nil {
		return err
	}
	if note != "" {
		line := "Admin rejection note: " + note
		if b.Notes == "" {
			b.Notes = line
		} else {
			b.Notes += "\n" + line
		}
	}
	return nil
}

func (b *Booking) MarkPaymentFailed() {
	b.PaymentStatus = PaymentFailed
}

type TimeRange struct {
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time"   json:"end_time"`
}

// Overlaps treats both ranges as half-open, so touching ranges are free.
func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.StartTime < o.EndTime && o.StartTime < r.EndTime
}

func minutesOf(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", hhmm, core.ErrInvalidInput)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Hours returns the length of the range in hours.
func (r TimeRange) Hours() (float64, error) {
	start, err := minutesOf(r.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := minutesOf(r.EndTime)
	if err != nil {
		return 0, err
	}
	if end <= start {
		return 0, core.ValidationError("start_time must be before end_time")
	}
	return float64(end-start) / 60, nil
}

// Grid builds the bookable slots between open and close hour.
func Grid(openHour, closeHour, slotMinutes int) []TimeRange {
	if slotMinutes <= 0 {
		slotMinutes = 60
	}
	var slots []TimeRange
	for m := openHour * 60; m+slotMinutes <= closeHour*60; m += slotMinutes {
		slots = append(slots, TimeRange{
			StartTime: fmt.Sprintf("%02d:%02d", m/60, m%60),
			EndTime:   fmt.Sprintf("%02d:%02d", (m+slotMinutes)/60, (m+slotMinutes)%60),
		})
	}
	return slots
}

// FreeSlots drops every grid slot that overlaps a booked range.
func FreeSlots(grid, booked []TimeRange) []TimeRange {
	free := make([]TimeRange, 0, len(grid))
outer:
	for _, slot := range grid {
		for _, b := range booked {
			if slot.Overlaps(b) {
				continue outer
			}
		}
		free = append(free, slot)
	}
	return free
}
