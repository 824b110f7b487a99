// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/booking"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/events"
)

var (
	ErrInvalidSignature = core.NewAppError(
		core.ErrInvalidInput, "payment signature verification failed", http.StatusBadRequest, "INVALID_SIGNATURE")
	ErrGatewayDisabled = core.NewAppError(
		core.ErrUnavailable, "online payments are not configured", http.StatusServiceUnavailable, "GATEWAY_DISABLED")
	ErrPaymentsDisabled = core.NewAppError(
		core.ErrForbidden, "online payments are disabled for this account", http.StatusForbidden, "PAYMENTS_DISABLED")
	ErrGateway = core.NewAppError(
		core.ErrUnavailable, "payment gateway request failed", http.StatusBadGateway, "GATEWAY_ERROR")
)

// BookingUpdater is the slice of the booking service payments drive.
type BookingUpdater interface {
	Confirm(ctx context.Context, id, paymentID string) (*booking.BookingResponse, error)
	MarkPaymentFailed(ctx context.Context, id string) error
}

// Refunder issues gateway refunds and records them. The booking service
// uses it when an admin approves a paid cancellation.
type Refunder struct {
	gateway Gateway
	repo    Repository
	logger  *slog.Logger
}

func NewRefunder(gateway Gateway, repo Repository, logger *slog.Logger) *Refunder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refunder{gateway: gateway, repo: repo, logger: logger}
}

func (r *Refunder) RefundPayment(ctx context.Context, paymentID string, amount float64) error {
	_, err := r.refund(ctx, paymentID, toMinor(amount))
	return err
}

func (r *Refunder) refund(ctx context.Context, paymentID string, amount int64) (*Refund, error) {
	if r.gateway == nil {
		return nil, ErrGatewayDisabled
	}

	refund, err := r.gateway.Refund(ctx, paymentID, amount)
	if err != nil {
		r.logger.ErrorContext(ctx, "gateway refund failed", "payment_id", paymentID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	if err := r.repo.MarkRefunded(ctx, paymentID); err != nil {
		r.logger.WarnContext(ctx, "record refund", "payment_id", paymentID, "error", err)
	}
	return refund, nil
}

type Deps struct {
	Gateway   Gateway
	Repo      Repository
	Settings  SettingsStore
	Bookings  BookingUpdater
	Refunder  *Refunder
	Publisher events.Publisher
	Currency  string
	Logger    *slog.Logger
}

type Service struct {
	gateway   Gateway
	repo      Repository
	settings  SettingsStore
	bookings  BookingUpdater
	refunder  *Refunder
	publisher events.Publisher
	currency  string
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(d Deps) *Service {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	refunder := d.Refunder
	if refunder == nil {
		refunder = NewRefunder(d.Gateway, d.Repo, logger)
	}
	currency := d.Currency
	if currency == "" {
		currency = "INR"
	}
	return &Service{
		gateway:   d.Gateway,
		repo:      d.Repo,
		settings:  d.Settings,
		bookings:  d.Bookings,
		refunder:  refunder,
		publisher: d.Publisher,
		currency:  currency,
		logger:    logger.With("component", "payment"),
		now:       time.Now,
	}
}

// CreateOrder opens a gateway order and records it as CREATED. Amount and
// currency are echoed back exactly as the client sent them.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest, userID string) (*CreateOrderResponse, error) {
	if req.Amount.Value <= 0 {
		return nil, core.ValidationError("amount must be greater than zero")
	}
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Allows(userID) {
		return nil, ErrPaymentsDisabled
	}

	currency := req.Currency
	if currency == "" {
		currency = settings.Currency
	}
	if currency == "" {
		currency = s.currency
	}
	currency = strings.ToUpper(currency)

	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
	}

	var notes map[string]string
	var bookingID *string
	if req.BookingID != "" {
		notes = map[string]string{"booking_id": req.BookingID}
		id := req.BookingID
		bookingID = &id
	}

	order, err := s.gateway.CreateOrder(ctx, toMinor(req.Amount.Value), currency, receipt, notes)
	if err != nil {
		s.logger.ErrorContext(ctx, "create order failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	tx := &Transaction{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		BookingID: bookingID,
		Amount:    req.Amount.Value,
		Currency:  currency,
		Receipt:   receipt,
		Status:    StatusCreated,
		Method:    MethodCardRazorpay,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "order created", "order_id", order.ID, "transaction_id", tx.ID)

	respCurrency := req.Currency
	if respCurrency == "" {
		respCurrency = currency
	}

	return &CreateOrderResponse{
		Success:       true,
		TransactionID: tx.ID,
		OrderID:       order.ID,
		Amount:        req.Amount,
		Currency:      respCurrency,
	}, nil
}

// Verify checks the checkout signature, then asks the gateway whether the
// money actually moved before marking anything paid.
func (s *Service) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}
	if !s.gateway.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature) {
		return nil, ErrInvalidSignature
	}

	p, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	if p.OrderID != "" && p.OrderID != req.OrderID {
		return nil, ErrInvalidSignature
	}

	resp := &VerifyResponse{
		Verified:  true,
		Status:    strings.ToUpper(p.Status),
		OrderID:   req.OrderID,
		PaymentID: p.ID,
		Amount:    fromMinor(p.Amount),
		Currency:  p.Currency,
	}

	if !p.Settled() {
		return resp, nil
	}

	tx, err := s.settle(ctx, req.OrderID, p)
	if err != nil {
		return nil, err
	}
	resp.Status = StatusPaid
	if tx.BookingID != nil {
		resp.BookingID = *tx.BookingID
	}
	return resp, nil
}

// settle marks the order paid and confirms its booking. Both steps are
// idempotent so a verify racing a webhook is harmless.
func (s *Service) settle(ctx context.Context, orderID string, p *GatewayPayment) (*Transaction, error) {
	tx, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError("transaction")
		}
		return nil, err
	}

	changed, err := s.repo.MarkPaid(ctx, orderID, p.ID, p.Method)
	if err != nil {
		return nil, err
	}

	if tx.BookingID != nil && s.bookings != nil {
		if _, err := s.bookings.Confirm(ctx, *tx.BookingID, p.ID); err != nil {
			if !errors.Is(err, booking.ErrInvalidTransition) {
				return nil, err
			}
			s.logger.WarnContext(ctx, "paid booking not confirmable",
				"booking_id", *tx.BookingID, "payment_id", p.ID, "error", err)
		}
	}

	if changed {
		tx.Status = StatusPaid
		tx.PaymentID = p.ID
		s.emit(ctx, events.RKPaymentPaid, tx, p)
	}
	return tx, nil
}

// HandleWebhook processes a signed gateway callback. Unknown events are
// accepted and ignored.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if s.gateway == nil {
		return ErrGatewayDisabled
	}
	if signature == "" || !s.gateway.VerifyWebhookSignature(body, signature) {
		return ErrInvalidSignature
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return core.ValidationError("malformed webhook payload")
	}

	p := paymentFromMap(env.Payload.Payment.Entity)

	switch env.Event {
	case "payment.captured":
		if p.OrderID == "" {
			return core.ValidationError("webhook payment has no order_id")
		}
		_, err := s.settle(ctx, p.OrderID, p)
		if errors.Is(err, core.ErrNotFound) {
			s.logger.WarnContext(ctx, "webhook for unknown order", "order_id", p.OrderID)
			return nil
		}
		return err

	case "payment.failed":
		return s.fail(ctx, p)

	default:
		s.logger.InfoContext(ctx, "ignoring webhook event", "event", env.Event)
		return nil
	}
}

func (s *Service) fail(ctx context.Context, p *GatewayPayment) error {
	tx, err := s.repo.GetByOrderID(ctx, p.OrderID)
	if errors.Is(err, core.ErrNotFound) {
		s.logger.WarnContext(ctx, "failed payment for unknown order", "order_id", p.OrderID)
		return nil
	}
	if err != nil {
		return err
	}
	if tx.Status == StatusPaid {
		return nil
	}

	if err := s.repo.MarkFailed(ctx, p.OrderID, p.ID); err != nil {
		return err
	}
	if tx.BookingID != nil && s.bookings != nil {
		if err := s.bookings.MarkPaymentFailed(ctx, *tx.BookingID); err != nil && !errors.Is(err, core.ErrNotFound) {
			return err
		}
	}

	tx.Status = StatusFailed
	tx.PaymentID = p.ID
	s.emit(ctx, events.RKPaymentFailed, tx, p)
	return nil
}

func (s *Service) Status(ctx context.Context, paymentID string) (*StatusResponse, error) {
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}
	p, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	return &StatusResponse{
		Status:    p.Status,
		Amount:    fromMinor(p.Amount),
		Currency:  p.Currency,
		OrderID:   p.OrderID,
		Method:    p.Method,
		Email:     p.Email,
		Contact:   p.Contact,
		CreatedAt: p.CreatedAt,
	}, nil
}

// Refund returns money to the customer. Without an amount the full
// captured amount is refunded.
func (s *Service) Refund(ctx context.Context, req RefundRequest) (*RefundResponse, error) {
	if s.gateway == nil {
		return nil, ErrGatewayDisabled
	}

	p, err := s.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	amount := p.Amount
	if req.Amount != nil {
		amount = toMinor(*req.Amount)
	}
	if amount <= 0 || amount > p.Amount {
		return nil, core.ValidationError("refund amount must be between 0 and the captured amount")
	}

	refund, err := s.refunder.refund(ctx, req.PaymentID, amount)
	if err != nil {
		return nil, err
	}

	return &RefundResponse{
		RefundID:  refund.ID,
		PaymentID: req.PaymentID,
		Amount:    fromMinor(amount),
		Status:    refund.Status,
	}, nil
}

func (s *Service) Methods(ctx context.Context) ([]Method, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.available(settings), nil
}

func (s *Service) available(settings *Settings) []Method {
	methods := settings.EnabledMethods()
	if s.gateway != nil {
		return methods
	}
	offline := methods[:0]
	for _, m := range methods {
		if m.Gateway == "" {
			offline = append(offline, m)
		}
	}
	return offline
}

func (s *Service) Allowed(ctx context.Context, userID string) (*AllowedResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	resp := &AllowedResponse{UserID: userID, Allowed: settings.Allows(userID), Methods: []Method{}}
	if resp.Allowed {
		resp.Methods = s.available(settings)
	}
	return resp, nil
}

func (s *Service) Settings(ctx context.Context) (*Settings, error) {
	return s.settings.Get(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*Settings, error) {
	settings := &Settings{
		Currency:        strings.ToUpper(req.Currency),
		Gateways:        orEmpty(req.Gateways),
		Methods:         orEmpty(req.Methods),
		GlobalEnabled:   req.GlobalEnabled,
		RestrictedUsers: orEmpty(req.RestrictedUsers),
	}
	if err := s.settings.Put(ctx, settings); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "payment settings updated",
		"global_enabled", settings.GlobalEnabled,
		"restricted_users", len(settings.RestrictedUsers),
	)
	return settings, nil
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (s *Service) emit(ctx context.Context, key string, tx *Transaction, p *GatewayPayment) {
	ev := events.PaymentEvent{
		PaymentID:      p.ID,
		OrderID:        tx.OrderID,
		Email:          p.Email,
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		Status:         tx.Status,
		FailureCode:    p.ErrorCode,
		FailureMessage: p.ErrorDescription,
		OccurredAt:     s.now().UTC(),
	}
	if tx.BookingID != nil {
		ev.BookingID = *tx.BookingID
	}
	events.Emit(ctx, s.publisher, s.logger, key, ev)
}
