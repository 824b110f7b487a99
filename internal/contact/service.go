// AngelaMos | 2026
// service.go

package contact

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

const resource = "contact info"

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("component", "contact")}
}

func notFound(err error) error {
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(resource)
	}
	return err
}

func (s *Service) List(ctx context.Context) ([]InfoResponse, error) {
	infos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]InfoResponse, 0, len(infos))
	for i := range infos {
		out = append(out, ToInfoResponse(&infos[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*InfoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError(resource)
	}
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := ToInfoResponse(c)
	return &resp, nil
}

func (s *Service) Create(ctx context.Context, req InfoRequest) (*InfoResponse, error) {
	c := &Info{ID: uuid.NewString()}
	req.apply(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "contact info created", "contact_id", c.ID)
	resp := ToInfoResponse(c)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req InfoRequest) (*InfoResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError(resource)
	}
	c := &Info{ID: id}
	req.apply(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err)
	}

	s.logger.InfoContext(ctx, "contact info updated", "contact_id", c.ID)
	resp := ToInfoResponse(c)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError(resource)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	s.logger.InfoContext(ctx, "contact info deleted", "contact_id", id)
	return nil
}
