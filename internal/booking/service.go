// AngelaMos | 2026
// service.go

package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/config"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/events"
)

// Resource is the ground or net a booking is made against.
type Resource struct {
	ID           string
	Name         string
	Description  string
	PricePerHour float64
}

type ResourceLookup interface {
	Resource(ctx context.Context, bookingType, id string) (*Resource, error)
}

// Refunder sends money back through the payment gateway.
type Refunder interface {
	RefundPayment(ctx context.Context, paymentID string, amount float64) error
}

// Actor is who is calling. A zero Actor is an anonymous caller.
type Actor struct {
	UserID string
	Email  string
	Admin  bool
}

type Summary struct {
	ByStatus    map[string]int `json:"by_status"`
	Total       int            `json:"total"`
	PaidRevenue float64        `json:"paid_revenue"`
}

type Service struct {
	repo      Repository
	resources ResourceLookup
	refunder  Refunder
	publisher events.Publisher
	cfg       config.BookingConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	repo Repository,
	resources ResourceLookup,
	refunder Refunder,
	publisher events.Publisher,
	cfg config.BookingConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:      repo,
		resources: resources,
		refunder:  refunder,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateBookingRequest,
	actor Actor,
) (*BookingResponse, error) {
	span := TimeRange{StartTime: req.StartTime, EndTime: req.EndTime}
	hours, err := span.Hours()
	if err != nil {
		return nil, err
	}

	res, err := s.resources.Resource(ctx, req.BookingType, req.ResourceID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError(req.BookingType)
		}
		return nil, err
	}

	price := math.Round(res.PricePerHour*hours*100) / 100
	if req.Price != nil {
		price = *req.Price
	}

	b := &Booking{
		ID:                  uuid.New().String(),
		BookingType:         req.BookingType,
		ResourceID:          res.ID,
		ResourceName:        res.Name,
		ResourceDescription: res.Description,
		BookingDate:         req.BookingDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		MatchType:           req.MatchType,
		MatchOvers:          req.MatchOvers,
		Price:               price,
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		Status:              StatusPending,
		PaymentStatus:       PaymentPending,
		PaymentID:           uuid.New().String(),
		Notes:               req.Notes,
		BookingCategory:     orDefault(req.BookingCategory, "STANDARD"),
		DurationType:        orDefault(req.DurationType, "HOURLY"),
		TotalHours:          hours,
		TeamName:            req.TeamName,
		NumberOfPlayers:     max(req.NumberOfPlayers, 1),
		SpecialRequirements: req.SpecialRequirements,
		AddOnServices:       core.NewJSONB(req.AddOnServices),
		DiscountApplied:     req.DiscountApplied,
		BookingSource:       SourceOnline,
	}
	if actor.UserID != "" {
		uid := actor.UserID
		b.UserID = &uid
	}
	if actor.Admin {
		b.BookingSource = SourceAdmin
	}

	if err := s.repo.CreateIfFree(ctx, b); err != nil {
		return nil, err
	}

	s.emit(ctx, events.RKBookingCreated, b, "")

	resp := ToBookingResponse(b)
	return &resp, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *Service) Get(ctx context.Context, id string, actor Actor) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && !b.OwnedBy(actor.UserID, actor.Email) {
		return nil, core.ForbiddenError("not your booking")
	}

	resp := ToBookingResponse(b)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, id string) (*Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("booking")
	}
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("booking")
	}
	return b, err
}

func (s *Service) ListMine(ctx context.Context, actor Actor) ([]BookingResponse, error) {
	bookings, err := s.repo.ListForUser(ctx, actor.UserID, actor.Email)
	if err != nil {
		return nil, err
	}
	return ToBookingResponseList(bookings), nil
}

func (s *Service) ListByDate(ctx context.Context, date, bookingType string) ([]BookingResponse, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, core.ValidationError("date must be YYYY-MM-DD")
	}
	bookings, err := s.repo.ListByDate(ctx, date, bookingType)
	if err != nil {
		return nil, err
	}
	return ToBookingResponseList(bookings), nil
}

func (s *Service) List(ctx context.Context, params ListParams) ([]BookingResponse, int, error) {
	bookings, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return ToBookingResponseList(bookings), total, nil
}

// Update applies an admin edit. Schedule changes go back through the
// overlap check.
func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BookingType != nil {
		b.BookingType = *req.BookingType
	}
	if req.ResourceID != nil || req.BookingType != nil {
		if req.ResourceID != nil {
			b.ResourceID = *req.ResourceID
		}
		res, err := s.resources.Resource(ctx, b.BookingType, b.ResourceID)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return nil, core.NotFoundError(b.BookingType)
			}
			return nil, err
		}
		b.ResourceName = res.Name
		b.ResourceDescription = res.Description
	}
	if req.BookingDate != nil {
		b.BookingDate = *req.BookingDate
	}
	if req.StartTime != nil {
		b.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		b.EndTime = *req.EndTime
	}
	if req.MatchType != nil {
		b.MatchType = *req.MatchType
	}
	if req.MatchOvers != nil {
		b.MatchOvers = req.MatchOvers
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.CustomerName != nil {
		b.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		b.CustomerEmail = *req.CustomerEmail
	}
	if req.CustomerPhone != nil {
		b.CustomerPhone = *req.CustomerPhone
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		b.PaymentStatus = *req.PaymentStatus
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	hours, err := TimeRange{StartTime: b.StartTime, EndTime: b.EndTime}.Hours()
	if err != nil {
		return nil, err
	}
	b.TotalHours = hours

	if req.changesSchedule() && b.Status != StatusCancelled {
		err = s.repo.SaveIfFree(ctx, b)
	} else {
		err = s.repo.Save(ctx, b, "")
	}
	if err != nil {
		return nil, err
	}

	resp := ToBookingResponse(b)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("booking")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("booking")
		}
		return err
	}
	return nil
}

// AvailableSlots returns the grid slots on date that nothing live overlaps.
func (s *Service) AvailableSlots(ctx context.Context, resourceID, date string) (*SlotsResponse, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, core.ValidationError("date must be YYYY-MM-DD")
	}
	if _, err := uuid.Parse(resourceID); err != nil {
		return nil, core.ValidationError("resource_id must be a uuid")
	}

	booked, err := s.repo.BookedRanges(ctx, resourceID, date)
	if err != nil {
		return nil, err
	}

	grid := Grid(s.cfg.OpenHour, s.cfg.CloseHour, s.cfg.SlotMinutes)
	return &SlotsResponse{
		ResourceID: resourceID,
		Date:       date,
		Slots:      FreeSlots(grid, booked),
	}, nil
}

// Confirm marks the booking paid. Confirming an already completed booking
// with the same payment is a no-op so webhook retries are harmless.
func (s *Service) Confirm(ctx context.Context, id, paymentID string) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCompleted && b.PaymentStatus == PaymentPaid && b.PaymentID == paymentID {
		resp := ToBookingResponse(b)
		return &resp, nil
	}

	from := b.Status
	if err := b.Confirm(paymentID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, b, from); err != nil {
		return nil, err
	}

	s.emit(ctx, events.RKBookingConfirmed, b, "")

	resp := ToBookingResponse(b)
	return &resp, nil
}

func (s *Service) MarkOfflinePayment(ctx context.Context, id string) (*BookingResponse, error) {
	return s.Confirm(ctx, id, "OFFLINE-"+uuid.New().String())
}

func (s *Service) RequestCancellation(
	ctx context.Context,
	id, reason string,
	actor Actor,
) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && !b.OwnedBy(actor.UserID, actor.Email) {
		return nil, core.ForbiddenError("not your booking")
	}

	return s.apply(ctx, b, func(b *Booking) error {
		return b.RequestCancellation(reason)
	})
}

// ApproveCancellation cancels the booking. The status change is claimed
// first so only one approver reaches the gateway; a failed gateway refund
// puts the booking back to CANCELLATION_PENDING.
func (s *Service) ApproveCancellation(ctx context.Context, id string, refund float64) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if refund > b.Price {
		return nil, core.ValidationError("refund_amount cannot exceed the booking price")
	}

	before := *b
	refunded, err := b.ApproveCancellation(refund)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, b, before.Status); err != nil {
		return nil, err
	}

	if refunded && b.IsGatewayPayment() && s.refunder != nil {
		if err := s.refunder.RefundPayment(ctx, b.PaymentID, refund); err != nil {
			if restoreErr := s.repo.Save(ctx, &before, b.Status); restoreErr != nil {
				s.logger.ErrorContext(ctx, "restore booking after failed refund",
					"booking_id", b.ID, "error", restoreErr)
			}
			return nil, fmt.Errorf("refund booking %s: %w", b.ID, err)
		}
	}

	s.emit(ctx, events.RKBookingCancelled, b, b.CancellationReason)

	resp := ToBookingResponse(b)
	return &resp, nil
}

func (s *Service) RejectCancellation(ctx context.Context, id, note string) (*BookingResponse, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, b, func(b *Booking) error {
		return b.RejectCancellation(note)
	})
}

func (s *Service) MarkPaymentFailed(ctx context.Context, id string) error {
	b, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	b.MarkPaymentFailed()
	return s.repo.Save(ctx, b, b.Status)
}

func (s *Service) apply(ctx context.Context, b *Booking, fn func(*Booking) error) (*BookingResponse, error) {
	from := b.Status
	if err := fn(b); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, b, from); err != nil {
		return nil, err
	}
	resp := ToBookingResponse(b)
	return &resp, nil
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.PaidRevenue(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{ByStatus: counts, PaidRevenue: revenue}
	for _, n := range counts {
		sum.Total += n
	}
	return sum, nil
}

func (s *Service) emit(ctx context.Context, key string, b *Booking, reason string) {
	ev := events.BookingEvent{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		BookingType:   b.BookingType,
		ResourceName:  b.ResourceName,
		Date:          b.BookingDate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Price:         b.Price,
		RefundAmount:  b.RefundAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Reason:        reason,
		OccurredAt:    s.now().UTC(),
	}
	if b.UserID != nil {
		ev.UserID = *b.UserID
	}
	events.Emit(ctx, s.publisher, s.logger, key, ev)
}
