// AngelaMos | 2026
// notify.go

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cricketacademy/academy-api/internal/events"
	"github.com/cricketacademy/academy-api/internal/mail"
)

type Mailer interface {
	SendBookingNotice(ctx context.Context, to string, n mail.BookingNotice) error
	SendPaymentNotice(ctx context.Context, to string, n mail.PaymentNotice) error
}

// Notifier turns domain events into customer emails.
type Notifier struct {
	mailer   Mailer
	currency string
	logger   *slog.Logger
}

func New(mailer Mailer, currency string, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	if currency == "" {
		currency = "INR"
	}
	return &Notifier{
		mailer:   mailer,
		currency: currency,
		logger:   logger.With("component", "notify"),
	}
}

func (n *Notifier) Handle(ctx context.Context, key string, body []byte) error {
	switch key {
	case events.RKBookingCreated, events.RKBookingConfirmed, events.RKBookingCancelled:
		ev, err := events.Decode[events.BookingEvent](body)
		if err != nil {
			return err
		}
		return n.booking(ctx, key, ev)

	case events.RKPaymentPaid, events.RKPaymentFailed:
		ev, err := events.Decode[events.PaymentEvent](body)
		if err != nil {
			return err
		}
		return n.payment(ctx, key, ev)

	default:
		n.logger.WarnContext(ctx, "no notifier for routing key", "routing_key", key)
		return nil
	}
}

func (n *Notifier) booking(ctx context.Context, key string, ev events.BookingEvent) error {
	if strings.TrimSpace(ev.CustomerEmail) == "" {
		n.logger.InfoContext(ctx, "booking event without email", "booking_id", ev.BookingID)
		return nil
	}

	notice := mail.BookingNotice{
		CustomerName: ev.CustomerName,
		BookingID:    ev.BookingID,
		ResourceName: ev.ResourceName,
		Date:         ev.Date,
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		Currency:     n.currency,
		Amount:       ev.Price,
	}

	switch key {
	case events.RKBookingCreated:
		notice.Subject = "Booking received"
		notice.Headline = "We have received your booking request."
		notice.Note = "Your slot is held while payment is pending."
	case events.RKBookingConfirmed:
		notice.Subject = "Booking confirmed"
		notice.Headline = "Your booking is confirmed. See you on the field."
	case events.RKBookingCancelled:
		notice.Subject = "Booking cancelled"
		notice.Headline = "Your booking has been cancelled."
		notice.RefundAmount = ev.RefundAmount
		notice.Note = ev.Reason
	}

	if err := n.mailer.SendBookingNotice(ctx, ev.CustomerEmail, notice); err != nil {
		return fmt.Errorf("send %s notice: %w", key, err)
	}
	n.logger.InfoContext(ctx, "booking notice sent", "routing_key", key, "booking_id", ev.BookingID)
	return nil
}

func (n *Notifier) payment(ctx context.Context, key string, ev events.PaymentEvent) error {
	if strings.TrimSpace(ev.Email) == "" {
		n.logger.InfoContext(ctx, "payment event without email", "payment_id", ev.PaymentID)
		return nil
	}

	currency := ev.Currency
	if currency == "" {
		currency = n.currency
	}

	notice := mail.PaymentNotice{
		PaymentID: ev.PaymentID,
		BookingID: ev.BookingID,
		Currency:  currency,
		Amount:    ev.Amount,
	}

	if key == events.RKPaymentPaid {
		notice.Subject = "Payment received"
		notice.Headline = "Thank you, we have received your payment."
	} else {
		notice.Subject = "Payment failed"
		notice.Headline = "Your payment could not be completed."
		notice.Reason = ev.FailureMessage
		if notice.Reason == "" {
			notice.Reason = ev.FailureCode
		}
	}

	if err := n.mailer.SendPaymentNotice(ctx, ev.Email, notice); err != nil {
		return fmt.Errorf("send %s notice: %w", key, err)
	}
	n.logger.InfoContext(ctx, "payment notice sent", "routing_key", key, "payment_id", ev.PaymentID)
	return nil
}
