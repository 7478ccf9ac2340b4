package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/query-service/internal/domain"
	"github.com/spec-kit/query-service/internal/repository"
	apperrors "github.com/spec-kit/query-service/pkg/util"
)

// TeamService manages the assignment-target registry.
type TeamService struct {
	teams repository.TeamRepository
}

// TeamInput describes team create/update payload.
type TeamInput struct {
	Name       string
	Email      string
	Department string
}

// NewTeamService constructs the service.
func NewTeamService(teams repository.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// Create registers a new team.
func (s *TeamService) Create(ctx context.Context, input TeamInput) (*domain.Team, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("team name required", nil)
	}
	team := &domain.Team{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Department: strings.TrimSpace(input.Department),
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return team, nil
}

// Update modifies an existing team. Queries holding this team's name as an
// assignment snapshot are deliberately left untouched.
func (s *TeamService) Update(ctx context.Context, id string, input TeamInput) (*domain.Team, error) {
	team, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) != "" {
		team.Name = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		team.Email = strings.TrimSpace(input.Email)
	}
	if input.Department != "" {
		team.Department = strings.TrimSpace(input.Department)
	}
	if err := s.teams.Update(ctx, team); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team", map[string]any{"team_id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return team, nil
}

// Get fetches one team.
func (s *TeamService) Get(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("team", map[string]any{"team_id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return team, nil
}

// List returns all teams ordered by name.
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return teams, nil
}

// Delete removes a team. Existing assignment references are nulled by the
// store while name snapshots persist.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	ok, err := s.teams.Delete(ctx, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if !ok {
		return apperrors.NewNotFound("team", map[string]any{"team_id": id})
	}
	return nil
}
