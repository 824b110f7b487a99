// AngelaMos | 2026
// service.go

package pricing

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

var (
	ErrAddOnUnavailable   = core.ConflictError("add-on service is not available")
	ErrPackageInactive    = core.ConflictError("pricing package is not active")
	errNegativeQuoteHours = core.ValidationError("hours must not be negative")
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("component", "pricing")}
}

func notFound(err error, resource string) error {
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(resource)
	}
	return err
}

func (s *Service) ListAddOns(ctx context.Context, availableOnly bool, category string) ([]AddOnResponse, error) {
	addOns, err := s.repo.ListAddOns(ctx, availableOnly, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}
	return toAddOnList(addOns), nil
}

func (s *Service) GetAddOn(ctx context.Context, id string) (*AddOnResponse, error) {
	a, err := s.loadAddOn(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAddOnResponse(a)
	return &resp, nil
}

func (s *Service) loadAddOn(ctx context.Context, id string) (*AddOn, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("add-on service")
	}
	a, err := s.repo.GetAddOn(ctx, id)
	return a, notFound(err, "add-on service")
}

func (s *Service) CreateAddOn(ctx context.Context, req AddOnRequest) (*AddOnResponse, error) {
	a := &AddOn{ID: uuid.NewString(), IsAvailable: true}
	req.apply(a)

	if err := s.repo.CreateAddOn(ctx, a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "add-on created", "add_on_id", a.ID, "category", a.Category)
	resp := ToAddOnResponse(a)
	return &resp, nil
}

func (s *Service) UpdateAddOn(ctx context.Context, id string, req AddOnRequest) (*AddOnResponse, error) {
	a, err := s.loadAddOn(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(a)

	if err := s.repo.UpdateAddOn(ctx, a); err != nil {
		return nil, notFound(err, "add-on service")
	}
	resp := ToAddOnResponse(a)
	return &resp, nil
}

func (s *Service) DeleteAddOn(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("add-on service")
	}
	return notFound(s.repo.DeleteAddOn(ctx, id), "add-on service")
}

func (s *Service) QuoteAddOn(
	ctx context.Context,
	id string,
	hours float64,
	weekend bool,
	quantity int,
) (*AddOnQuote, error) {
	if hours < 0 {
		return nil, errNegativeQuoteHours
	}
	a, err := s.loadAddOn(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsAvailable {
		return nil, ErrAddOnUnavailable
	}
	q := a.Quote(hours, weekend, quantity)
	return &q, nil
}

func (s *Service) ListPackages(ctx context.Context, activeOnly bool, packageType string) ([]PackageResponse, error) {
	packages, err := s.repo.ListPackages(ctx, activeOnly, strings.TrimSpace(packageType))
	if err != nil {
		return nil, err
	}
	return toPackageList(packages), nil
}

func (s *Service) GetPackage(ctx context.Context, id string) (*PackageResponse, error) {
	p, err := s.loadPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToPackageResponse(p)
	return &resp, nil
}

func (s *Service) loadPackage(ctx context.Context, id string) (*Package, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("pricing package")
	}
	p, err := s.repo.GetPackage(ctx, id)
	return p, notFound(err, "pricing package")
}

func (s *Service) CreatePackage(ctx context.Context, req PackageRequest) (*PackageResponse, error) {
	p := &Package{ID: uuid.NewString(), IsActive: true}
	req.apply(p)

	if err := s.repo.CreatePackage(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "pricing package created", "package_id", p.ID, "type", p.PackageType)
	resp := ToPackageResponse(p)
	return &resp, nil
}

func (s *Service) UpdatePackage(ctx context.Context, id string, req PackageRequest) (*PackageResponse, error) {
	p, err := s.loadPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(p)

	if err := s.repo.UpdatePackage(ctx, p); err != nil {
		return nil, notFound(err, "pricing package")
	}
	resp := ToPackageResponse(p)
	return &resp, nil
}

func (s *Service) DeletePackage(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("pricing package")
	}
	return notFound(s.repo.DeletePackage(ctx, id), "pricing package")
}

func (s *Service) QuotePackage(
	ctx context.Context,
	id string,
	hours float64,
	players int,
	weekend, peak bool,
) (*PackageQuote, error) {
	if hours < 0 {
		return nil, errNegativeQuoteHours
	}
	p, err := s.loadPackage(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrPackageInactive
	}
	q := p.Quote(hours, players, weekend, peak)
	return &q, nil
}
