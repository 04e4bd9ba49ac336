package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
)

var (
	ErrTeamCreationFailed = errors.New("failed to create team")
	ErrTeamUpdateFailed   = errors.New("failed to update team")
	ErrTeamDeleteFailed   = errors.New("failed to delete team")
)

type TeamService interface {
	ListTeams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}

// TeamInput carries every non-key column; updates replace the whole row.
type TeamInput struct {
	Name        string
	Region      string
	PlayerCount int
}

func (in TeamInput) toModel(id int) (*models.Team, error) {
	name, err := requireText(in.Name, ErrTeamNameRequired)
	if err != nil {
		return nil, err
	}
	region, err := requireText(in.Region, ErrTeamRegionRequired)
	if err != nil {
		return nil, err
	}
	if in.PlayerCount < 0 {
		return nil, ErrTeamInvalidPlayerCount
	}
	return &models.Team{ID: id, Name: name, Region: region, PlayerCount: in.PlayerCount}, nil
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{
		teamRepo: teamRepo,
	}
}

func (s *teamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teams: %w", err)
	}
	if teams == nil {
		return []models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*models.Team, error) {
	team, err := input.toModel(0)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTeamCreationFailed, err)
	}
	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	team, err := input.toModel(id)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTeamUpdateFailed, id, err)
	}
	return team, nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrTeamDeleteFailed, id, err)
	}
	return nil
}
