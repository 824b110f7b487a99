// AngelaMos | 2026
// service.go

package content

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cache == nil {
		cache = noCache{}
	}
	return &Service{repo: repo, cache: cache, logger: logger.With("component", "content")}
}

func notFound(err error, resource string) error {
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(resource)
	}
	return err
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "homepage cache invalidation failed", "error", err)
	}
}

// Homepage serves from cache when possible. A missing hero image yields a
// null heroImage rather than an error.
func (s *Service) Homepage(ctx context.Context) (*HomepageResponse, error) {
	if page, err := s.cache.Get(ctx); err == nil {
		return page, nil
	} else if !errors.Is(err, core.ErrNotFound) {
		s.logger.WarnContext(ctx, "homepage cache read failed", "error", err)
	}

	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	facilities, err := s.repo.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}

	page := &HomepageResponse{
		StarPlayers: toPlayerList(players),
		Facilities:  toFacilityList(facilities),
	}
	hero, err := s.repo.GetHero(ctx)
	switch {
	case err == nil:
		page.HeroImage = &HeroImageResponse{ImageURL: hero.ImageURL, UpdatedAt: hero.UpdatedAt}
	case !errors.Is(err, core.ErrNotFound):
		return nil, err
	}

	if err := s.cache.Put(ctx, page); err != nil {
		s.logger.WarnContext(ctx, "homepage cache write failed", "error", err)
	}
	return page, nil
}

func (s *Service) ListPlayers(ctx context.Context) ([]StarPlayerResponse, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	return toPlayerList(players), nil
}

func (s *Service) GetPlayer(ctx context.Context, id string) (*StarPlayerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("star player")
	}
	p, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, notFound(err, "star player")
	}
	resp := ToStarPlayerResponse(p)
	return &resp, nil
}

func (s *Service) CreatePlayer(ctx context.Context, req StarPlayerRequest) (*StarPlayerResponse, error) {
	p := &StarPlayer{ID: uuid.NewString()}
	req.apply(p)

	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.InfoContext(ctx, "star player created", "player_id", p.ID)
	resp := ToStarPlayerResponse(p)
	return &resp, nil
}

func (s *Service) UpdatePlayer(ctx context.Context, id string, req StarPlayerRequest) (*StarPlayerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("star player")
	}
	p, err := s.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, notFound(err, "star player")
	}
	req.apply(p)

	if err := s.repo.UpdatePlayer(ctx, p); err != nil {
		return nil, notFound(err, "star player")
	}
	s.invalidate(ctx)

	resp := ToStarPlayerResponse(p)
	return &resp, nil
}

func (s *Service) DeletePlayer(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("star player")
	}
	if err := s.repo.DeletePlayer(ctx, id); err != nil {
		return notFound(err, "star player")
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) ListFacilities(ctx context.Context) ([]FacilityResponse, error) {
	facilities, err := s.repo.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	return toFacilityList(facilities), nil
}

func (s *Service) GetFacility(ctx context.Context, id string) (*FacilityResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("facility")
	}
	f, err := s.repo.GetFacility(ctx, id)
	if err != nil {
		return nil, notFound(err, "facility")
	}
	resp := ToFacilityResponse(f)
	return &resp, nil
}

func (s *Service) CreateFacility(ctx context.Context, req FacilityRequest) (*FacilityResponse, error) {
	f := &Facility{ID: uuid.NewString()}
	req.apply(f)

	if err := s.repo.CreateFacility(ctx, f); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	resp := ToFacilityResponse(f)
	return &resp, nil
}

func (s *Service) UpdateFacility(ctx context.Context, id string, req FacilityRequest) (*FacilityResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("facility")
	}
	f, err := s.repo.GetFacility(ctx, id)
	if err != nil {
		return nil, notFound(err, "facility")
	}
	req.apply(f)

	if err := s.repo.UpdateFacility(ctx, f); err != nil {
		return nil, notFound(err, "facility")
	}
	s.invalidate(ctx)

	resp := ToFacilityResponse(f)
	return &resp, nil
}

func (s *Service) DeleteFacility(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("facility")
	}
	if err := s.repo.DeleteFacility(ctx, id); err != nil {
		return notFound(err, "facility")
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) HeroImage(ctx context.Context) (*HeroImageResponse, error) {
	h, err := s.repo.GetHero(ctx)
	if err != nil {
		return nil, notFound(err, "hero image")
	}
	return &HeroImageResponse{ImageURL: h.ImageURL, UpdatedAt: h.UpdatedAt}, nil
}

func (s *Service) SetHeroImage(ctx context.Context, req HeroImageRequest) (*HeroImageResponse, error) {
	h, err := s.repo.SetHero(ctx, req.ImageURL)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return &HeroImageResponse{ImageURL: h.ImageURL, UpdatedAt: h.UpdatedAt}, nil
}

func (s *Service) ClearHeroImage(ctx context.Context) error {
	if err := s.repo.ClearHero(ctx); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Reorder drops items whose id is not a UUID before touching the store;
// those can never match a row.
func (s *Service) Reorder(ctx context.Context, target ReorderTarget, items []SortItem) (*ReorderResponse, error) {
	valid := make([]SortItem, 0, len(items))
	for _, item := range items {
		if _, err := uuid.Parse(item.ID); err == nil {
			valid = append(valid, item)
		}
	}
	if len(valid) == 0 {
		return &ReorderResponse{}, nil
	}

	n, err := s.repo.Reorder(ctx, target, valid)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.logger.InfoContext(ctx, "content reordered",
		"target", string(target),
		"requested", len(items),
		"updated", n,
	)
	return &ReorderResponse{Updated: n}, nil
}
