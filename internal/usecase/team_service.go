package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Timsl1401/kosc-spitsenspel/internal/domain/team"
)

// TeamService serves the team catalog and the tariff derived from it.
type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return t, nil
}

// CurrentTariff builds the tariff from the team catalog as stored right now.
func (s *TeamService) CurrentTariff(ctx context.Context) (team.Tariff, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CurrentTariff")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return team.Tariff{}, fmt.Errorf("list teams: %w", err)
	}

	return team.NewTariff(teams), nil
}
