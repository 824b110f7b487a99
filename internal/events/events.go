// AngelaMos | 2026
// events.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"
	RKPaymentPaid      = "payment.paid"
	RKPaymentFailed    = "payment.failed"
)

// AllKeys is what the notification queue binds to.
var AllKeys = []string{
	RKBookingCreated,
	RKBookingConfirmed,
	RKBookingCancelled,
	RKPaymentPaid,
	RKPaymentFailed,
}

type BookingEvent struct {
	BookingID     string    `json:"booking_id"`
	UserID        string    `json:"user_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	BookingType   string    `json:"booking_type"`
	ResourceName  string    `json:"resource_name"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Price         float64   `json:"price"`
	RefundAmount  float64   `json:"refund_amount,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type PaymentEvent struct {
	PaymentID      string    `json:"payment_id"`
	OrderID        string    `json:"order_id"`
	BookingID      string    `json:"booking_id,omitempty"`
	Email          string    `json:"email,omitempty"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	FailureCode    string    `json:"failure_code,omitempty"`
	FailureMessage string    `json:"failure_message,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ErrPermanent marks a delivery that will never succeed. The consumer
// drops it instead of requeueing.
var ErrPermanent = errors.New("permanent delivery failure")

func Decode[T any](body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode event: %w: %w", ErrPermanent, err)
	}
	return v, nil
}

type Publisher interface {
	Publish(ctx context.Context, key string, v any) error
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func (p LogPublisher) Publish(ctx context.Context, key string, _ any) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "event not published, broker disabled", "routing_key", key)
	return nil
}

// Emit publishes and only logs on failure. Domain writes have already
// committed by the time an event goes out.
func Emit(ctx context.Context, p Publisher, logger *slog.Logger, key string, v any) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, key, v); err != nil {
		logger.WarnContext(ctx, "publish event failed", "routing_key", key, "error", err)
	}
}
