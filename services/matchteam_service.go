package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMatchTeamCreationFailed = errors.New("failed to add team to match")
	ErrMatchTeamUpdateFailed   = errors.New("failed to update match team")
	ErrMatchTeamDeleteFailed   = errors.New("failed to remove team from match")
)

type MatchTeamService interface {
	ListMatchTeamsPage(ctx context.Context) (*MatchTeamsPage, error)
	CreateMatchTeam(ctx context.Context, input MatchTeamInput) (*models.MatchTeam, error)
	UpdateMatchTeam(ctx context.Context, id int, input MatchTeamInput) (*models.MatchTeam, error)
	DeleteMatchTeam(ctx context.Context, id int) error
}

type MatchTeamsPage struct {
	MatchTeams []models.MatchTeam
	Matches    []models.Match
	Teams      []models.Team
}

type MatchTeamInput struct {
	MatchID int
	TeamID  int
}

func (in MatchTeamInput) toModel(id int) (*models.MatchTeam, error) {
	if err := requireID("matchID", in.MatchID); err != nil {
		return nil, err
	}
	if err := requireID("teamID", in.TeamID); err != nil {
		return nil, err
	}
	return &models.MatchTeam{ID: id, MatchID: in.MatchID, TeamID: in.TeamID}, nil
}

type matchTeamService struct {
	matchTeamRepo repositories.MatchTeamRepository
	matchRepo     repositories.MatchRepository
	teamRepo      repositories.TeamRepository
}

func NewMatchTeamService(
	matchTeamRepo repositories.MatchTeamRepository,
	matchRepo repositories.MatchRepository,
	teamRepo repositories.TeamRepository,
) MatchTeamService {
	return &matchTeamService{
		matchTeamRepo: matchTeamRepo,
		matchRepo:     matchRepo,
		teamRepo:      teamRepo,
	}
}

func (s *matchTeamService) ListMatchTeamsPage(ctx context.Context) (*MatchTeamsPage, error) {
	page := &MatchTeamsPage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.matchTeamRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get all match teams: %w", err)
		}
		page.MatchTeams = rows
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get matches for match team form: %w", err)
		}
		page.Matches = matches
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get teams for match team form: %w", err)
		}
		page.Teams = teams
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *matchTeamService) CreateMatchTeam(ctx context.Context, input MatchTeamInput) (*models.MatchTeam, error) {
	mt, err := input.toModel(0)
	if err != nil {
		return nil, err
	}
	if err := s.matchTeamRepo.Create(ctx, mt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatchTeamCreationFailed, err)
	}
	return mt, nil
}

func (s *matchTeamService) UpdateMatchTeam(ctx context.Context, id int, input MatchTeamInput) (*models.MatchTeam, error) {
	mt, err := input.toModel(id)
	if err != nil {
		return nil, err
	}
	if err := s.matchTeamRepo.Update(ctx, mt); err != nil {
		if errors.Is(err, repositories.ErrMatchTeamNotFound) {
			return nil, ErrMatchTeamNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrMatchTeamUpdateFailed, id, err)
	}
	return mt, nil
}

func (s *matchTeamService) DeleteMatchTeam(ctx context.Context, id int) error {
	if err := s.matchTeamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrMatchTeamDeleteFailed, id, err)
	}
	return nil
}
