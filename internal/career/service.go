// AngelaMos | 2026
// service.go

package career

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

var errEmptyStatus = core.ValidationError("onboard_status or job_status is required")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("component", "career")}
}

func (s *Service) Apply(ctx context.Context, kind Kind, req ApplyRequest) (*ApplicationResponse, error) {
	a := &Application{
		ID:            uuid.NewString(),
		OnboardStatus: OnboardPending,
		JobStatus:     JobApplied,
	}
	req.apply(a)

	if err := s.repo.Create(ctx, kind, a); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "career application received",
		"kind", kind.Slug,
		"application_id", a.ID,
	)
	resp := ToApplicationResponse(kind, a)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, kind Kind, onboardStatus, jobStatus string) ([]ApplicationResponse, error) {
	apps, err := s.repo.List(ctx, kind,
		strings.ToUpper(strings.TrimSpace(onboardStatus)),
		strings.ToUpper(strings.TrimSpace(jobStatus)))
	if err != nil {
		return nil, err
	}
	return toApplicationList(kind, apps), nil
}

func (s *Service) Get(ctx context.Context, kind Kind, id string) (*ApplicationResponse, error) {
	a, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	resp := ToApplicationResponse(kind, a)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, kind Kind, id string) (*Application, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError(kind.Label)
	}
	a, err := s.repo.GetByID(ctx, kind, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError(kind.Label)
	}
	return a, err
}

// UpdateStatus changes either status independently; an empty field keeps
// the stored value.
func (s *Service) UpdateStatus(ctx context.Context, kind Kind, id string, req StatusRequest) (*ApplicationResponse, error) {
	if req.OnboardStatus == "" && req.JobStatus == "" {
		return nil, errEmptyStatus
	}

	a, err := s.load(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if req.OnboardStatus != "" {
		a.OnboardStatus = req.OnboardStatus
	}
	if req.JobStatus != "" {
		a.JobStatus = req.JobStatus
	}

	if err := s.repo.UpdateStatus(ctx, kind, a); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.NotFoundError(kind.Label)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "career application status changed",
		"kind", kind.Slug,
		"application_id", a.ID,
		"onboard_status", a.OnboardStatus,
		"job_status", a.JobStatus,
	)
	resp := ToApplicationResponse(kind, a)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError(kind.Label)
	}
	err := s.repo.Delete(ctx, kind, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(kind.Label)
	}
	return err
}
