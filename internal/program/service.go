// AngelaMos | 2026
// service.go

package program

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

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
	return &Service{repo: repo, logger: logger.With("component", "program")}
}

func notFound(err error, resource string) error {
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError(resource)
	}
	return err
}

func (s *Service) List(ctx context.Context, filter ProgramFilter) ([]ProgramResponse, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	programs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toProgramList(programs), nil
}

// ListWithSuggested seeds the starter catalog on first use, then lists
// everything.
func (s *Service) ListWithSuggested(ctx context.Context) ([]ProgramResponse, error) {
	if _, err := s.SeedSuggested(ctx); err != nil {
		return nil, err
	}
	return s.List(ctx, ProgramFilter{})
}

func (s *Service) SeedSuggested(ctx context.Context) (int, error) {
	programs := make([]Program, len(suggestedPrograms))
	for i := range suggestedPrograms {
		programs[i] = newSuggested(uuid.NewString(), i)
	}

	created, err := s.repo.SeedSuggested(ctx, programs)
	if err != nil {
		return 0, err
	}
	if created > 0 {
		s.logger.InfoContext(ctx, "suggested programs seeded", "count", created)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*ProgramResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	coaches, err := s.repo.CoachesOf(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProgramResponse(p)
	resp.Coaches = toCoachList(coaches)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, id string) (*Program, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("program")
	}
	p, err := s.repo.GetByID(ctx, id)
	return p, notFound(err, "program")
}

func (s *Service) Create(ctx context.Context, req ProgramRequest) (*ProgramResponse, error) {
	p := &Program{ID: uuid.NewString(), IsActive: true}
	req.apply(p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "program created", "program_id", p.ID, "name", p.Name)
	resp := ToProgramResponse(p)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req ProgramRequest) (*ProgramResponse, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, notFound(err, "program")
	}

	resp := ToProgramResponse(p)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("program")
	}
	return notFound(s.repo.Delete(ctx, id), "program")
}

func (s *Service) AssignCoach(ctx context.Context, programID, coachID string) (*ProgramResponse, error) {
	if _, err := s.load(ctx, programID); err != nil {
		return nil, err
	}
	if _, err := s.loadCoach(ctx, coachID); err != nil {
		return nil, err
	}

	if err := s.repo.AssignCoach(ctx, programID, coachID); err != nil {
		return nil, err
	}
	return s.Get(ctx, programID)
}

func (s *Service) UnassignCoach(ctx context.Context, programID, coachID string) error {
	if _, err := uuid.Parse(programID); err != nil {
		return core.NotFoundError("program")
	}
	if _, err := uuid.Parse(coachID); err != nil {
		return core.NotFoundError("coach")
	}
	return notFound(s.repo.UnassignCoach(ctx, programID, coachID), "coach assignment")
}

func (s *Service) CoachesOf(ctx context.Context, programID string) ([]CoachResponse, error) {
	if _, err := s.load(ctx, programID); err != nil {
		return nil, err
	}
	coaches, err := s.repo.CoachesOf(ctx, programID)
	if err != nil {
		return nil, err
	}
	return toCoachList(coaches), nil
}

func (s *Service) ListCoaches(ctx context.Context, filter CoachFilter) ([]CoachResponse, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	coaches, err := s.repo.ListCoaches(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toCoachList(coaches), nil
}

func (s *Service) GetCoach(ctx context.Context, id string) (*CoachResponse, error) {
	c, err := s.loadCoach(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCoachResponse(c)
	return &resp, nil
}

func (s *Service) loadCoach(ctx context.Context, id string) (*Coach, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("coach")
	}
	c, err := s.repo.GetCoach(ctx, id)
	return c, notFound(err, "coach")
}

func (s *Service) CreateCoach(ctx context.Context, req CoachRequest) (*CoachResponse, error) {
	c := &Coach{ID: uuid.NewString(), IsAvailable: true}
	req.apply(c)

	if err := s.repo.CreateCoach(ctx, c); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "coach created", "coach_id", c.ID)
	resp := ToCoachResponse(c)
	return &resp, nil
}

func (s *Service) UpdateCoach(ctx context.Context, id string, req CoachRequest) (*CoachResponse, error) {
	c, err := s.loadCoach(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(c)
	if err := s.repo.UpdateCoach(ctx, c); err != nil {
		return nil, notFound(err, "coach")
	}

	resp := ToCoachResponse(c)
	return &resp, nil
}

func (s *Service) DeleteCoach(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("coach")
	}
	return notFound(s.repo.DeleteCoach(ctx, id), "coach")
}
