// AngelaMos | 2026
// service.go

package team

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/cricketacademy/academy-api/internal/core"
)

var ErrTeamFull = core.ConflictError("team already has its full squad")

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger.With("component", "team")}
}

func (s *Service) List(ctx context.Context, name, skillLevel string) ([]TeamResponse, error) {
	teams, err := s.repo.List(ctx, strings.TrimSpace(name), strings.TrimSpace(skillLevel))
	if err != nil {
		return nil, err
	}
	return toTeamList(teams), nil
}

func (s *Service) Get(ctx context.Context, id string) (*TeamResponse, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	players, err := s.repo.Players(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToTeamResponse(t)
	resp.Players = toPlayerList(players)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, id string) (*Team, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, core.NotFoundError("team")
	}
	t, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("team")
	}
	return t, err
}

func (s *Service) Create(ctx context.Context, req TeamRequest) (*TeamResponse, error) {
	t := &Team{ID: uuid.NewString()}
	req.apply(t)

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", t.ID, "name", t.Name)
	resp := ToTeamResponse(t)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req TeamRequest) (*TeamResponse, error) {
	t, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	req.apply(t)
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	resp := ToTeamResponse(t)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return core.NotFoundError("team")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return core.NotFoundError("team")
		}
		return err
	}
	return nil
}

func (s *Service) Players(ctx context.Context, teamID string) ([]PlayerResponse, error) {
	if _, err := s.load(ctx, teamID); err != nil {
		return nil, err
	}
	players, err := s.repo.Players(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return toPlayerList(players), nil
}

// AddPlayer refuses once the active roster reaches the team size.
func (s *Service) AddPlayer(ctx context.Context, teamID string, req PlayerRequest) (*PlayerResponse, error) {
	t, err := s.load(ctx, teamID)
	if err != nil {
		return nil, err
	}

	players, err := s.repo.Players(ctx, teamID)
	if err != nil {
		return nil, err
	}
	active := 0
	for _, p := range players {
		if p.IsActive {
			active++
		}
	}
	if active >= t.TeamSize {
		return nil, ErrTeamFull
	}

	p := &Player{ID: uuid.NewString(), TeamID: teamID, IsActive: true}
	req.apply(p)
	if err := s.repo.AddPlayer(ctx, p); err != nil {
		return nil, err
	}

	resp := ToPlayerResponse(p)
	return &resp, nil
}

func (s *Service) UpdatePlayer(ctx context.Context, teamID, playerID string, req PlayerRequest) (*PlayerResponse, error) {
	if _, err := uuid.Parse(playerID); err != nil {
		return nil, core.NotFoundError("player")
	}
	if _, err := uuid.Parse(teamID); err != nil {
		return nil, core.NotFoundError("team")
	}

	p, err := s.repo.GetPlayer(ctx, teamID, playerID)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("player")
	}
	if err != nil {
		return nil, err
	}

	req.apply(p)
	if err := s.repo.UpdatePlayer(ctx, p); err != nil {
		return nil, err
	}

	resp := ToPlayerResponse(p)
	return &resp, nil
}

func (s *Service) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	if _, err := uuid.Parse(playerID); err != nil {
		return core.NotFoundError("player")
	}
	err := s.repo.RemovePlayer(ctx, teamID, playerID)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("player")
	}
	return err
}
