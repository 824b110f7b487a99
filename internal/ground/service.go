// AngelaMos | 2026
// service.go

package ground

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/booking"
	"github.com/cricketacademy/academy-api/internal/core"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("component", "ground")}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error, resource string) error {
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(resource)
	}
	return err
}

func (s *Service) ListGrounds(ctx context.Context, activeOnly bool) ([]GroundResponse, error) {
	grounds, err := s.repo.ListGrounds(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return toGroundList(grounds), nil
}

// GetGround returns the ground with its nets attached.
func (s *Service) GetGround(ctx context.Context, id string) (*GroundResponse, error) {
	g, err := s.loadGround(ctx, id)
	if err != nil {
		return nil, err
	}

	nets, err := s.repo.ListNets(ctx, NetFilter{GroundID: id})
	if err != nil {
		return nil, err
	}

	resp := ToGroundResponse(g)
	resp.Nets = toNetList(nets)
	return &resp, nil
}

func (s *Service) loadGround(ctx context.Context, id string) (*Ground, error) {
	if !validID(id) {
		return nil, core.NotFoundError("ground")
	}
	g, err := s.repo.GetGround(ctx, id)
	return g, notFound(err, "ground")
}

func (s *Service) CreateGround(ctx context.Context, req GroundRequest) (*GroundResponse, error) {
	g := &Ground{ID: uuid.NewString(), IsActive: true}
	req.Name = strings.TrimSpace(req.Name)
	req.apply(g)

	if err := s.repo.CreateGround(ctx, g); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ground created", "ground_id", g.ID, "name", g.Name)
	resp := ToGroundResponse(g)
	return &resp, nil
}

func (s *Service) UpdateGround(ctx context.Context, id string, req GroundRequest) (*GroundResponse, error) {
	g, err := s.loadGround(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.apply(g)
	if err := s.repo.UpdateGround(ctx, g); err != nil {
		return nil, notFound(err, "ground")
	}

	resp := ToGroundResponse(g)
	return &resp, nil
}

func (s *Service) DeleteGround(ctx context.Context, id string) error {
	if !validID(id) {
		return core.NotFoundError("ground")
	}
	if err := s.repo.DeleteGround(ctx, id); err != nil {
		return notFound(err, "ground")
	}
	s.logger.InfoContext(ctx, "ground deleted", "ground_id", id)
	return nil
}

func (s *Service) ToggleGround(ctx context.Context, id string) (*GroundResponse, error) {
	if !validID(id) {
		return nil, core.NotFoundError("ground")
	}
	g, err := s.repo.ToggleGround(ctx, id)
	if err != nil {
		return nil, notFound(err, "ground")
	}
	resp := ToGroundResponse(g)
	return &resp, nil
}

func (s *Service) ListNets(ctx context.Context, filter NetFilter) ([]NetResponse, error) {
	if filter.GroundID != "" {
		if _, err := s.loadGround(ctx, filter.GroundID); err != nil {
			return nil, err
		}
	}

	nets, err := s.repo.ListNets(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toNetList(nets), nil
}

func (s *Service) GetNet(ctx context.Context, id string) (*NetResponse, error) {
	n, err := s.loadNet(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToNetResponse(n)
	return &resp, nil
}

func (s *Service) loadNet(ctx context.Context, id string) (*Net, error) {
	if !validID(id) {
		return nil, core.NotFoundError("net")
	}
	n, err := s.repo.GetNet(ctx, id)
	return n, notFound(err, "net")
}

// CreateNet adds a net. A non-empty groundID from the route wins over the
// one in the body.
func (s *Service) CreateNet(ctx context.Context, groundID string, req NetRequest) (*NetResponse, error) {
	if groundID != "" {
		req.GroundID = &groundID
	}
	if err := s.checkGround(ctx, req.GroundID); err != nil {
		return nil, err
	}

	n := &Net{ID: uuid.NewString(), IsAvailable: true}
	req.Name = strings.TrimSpace(req.Name)
	req.apply(n)

	if err := s.repo.CreateNet(ctx, n); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "net created", "net_id", n.ID, "name", n.Name)
	resp := ToNetResponse(n)
	return &resp, nil
}

func (s *Service) UpdateNet(ctx context.Context, id string, req NetRequest) (*NetResponse, error) {
	n, err := s.loadNet(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkGround(ctx, req.GroundID); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.apply(n)
	if err := s.repo.UpdateNet(ctx, n); err != nil {
		return nil, notFound(err, "net")
	}

	resp := ToNetResponse(n)
	return &resp, nil
}

func (s *Service) checkGround(ctx context.Context, groundID *string) error {
	if groundID == nil || *groundID == "" {
		return nil
	}
	_, err := s.loadGround(ctx, *groundID)
	return err
}

func (s *Service) DeleteNet(ctx context.Context, id string) error {
	if !validID(id) {
		return core.NotFoundError("net")
	}
	if err := s.repo.DeleteNet(ctx, id); err != nil {
		return notFound(err, "net")
	}
	s.logger.InfoContext(ctx, "net deleted", "net_id", id)
	return nil
}

func (s *Service) ToggleNet(ctx context.Context, id string) (*NetResponse, error) {
	if !validID(id) {
		return nil, core.NotFoundError("net")
	}
	n, err := s.repo.ToggleNet(ctx, id)
	if err != nil {
		return nil, notFound(err, "net")
	}
	resp := ToNetResponse(n)
	return &resp, nil
}

// Resource resolves what a booking is made against. Inactive grounds and
// unavailable nets cannot be booked.
func (s *Service) Resource(ctx context.Context, bookingType, id string) (*booking.Resource, error) {
	switch bookingType {
	case booking.TypeGround:
		g, err := s.loadGround(ctx, id)
		if err != nil {
			return nil, err
		}
		if !g.IsActive {
			return nil, core.NotFoundError("ground")
		}
		return &booking.Resource{
			ID:           g.ID,
			Name:         g.Name,
			Description:  g.Description,
			PricePerHour: g.PricePerHour,
		}, nil

	case booking.TypeNet:
		n, err := s.loadNet(ctx, id)
		if err != nil {
			return nil, err
		}
		if !n.IsAvailable {
			return nil, core.NotFoundError("net")
		}
		return &booking.Resource{
			ID:           n.ID,
			Name:         n.Name,
			Description:  n.Description,
			PricePerHour: n.PricePerHour,
		}, nil

	default:
		return nil, core.ValidationError("booking_type must be ground or net")
	}
}

var _ booking.ResourceLookup = (*Service)(nil)
