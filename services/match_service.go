package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMatchCreationFailed = errors.New("failed to create match")
	ErrMatchUpdateFailed   = errors.New("failed to update match")
	ErrMatchDeleteFailed   = errors.New("failed to delete match")
)

type MatchService interface {
	ListMatchesPage(ctx context.Context) (*MatchesPage, error)
	CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error
}

// MatchesPage holds matches with resolved names plus the tournament and team
// lists the forms select from.
type MatchesPage struct {
	Matches     []models.Match
	Tournaments []models.Tournament
	Teams       []models.Team
}

type MatchInput struct {
	TournamentID  int
	ScheduledTime time.Time
	WinnerID      *int // nil until the match is decided
}

func (in MatchInput) toModel(id int) (*models.Match, error) {
	if err := requireID("tournamentID", in.TournamentID); err != nil {
		return nil, err
	}
	if in.ScheduledTime.IsZero() {
		return nil, ErrMatchScheduledTimeRequired
	}
	if err := requireOptionalID("winnerID", in.WinnerID); err != nil {
		return nil, err
	}
	return &models.Match{
		ID:            id,
		TournamentID:  in.TournamentID,
		ScheduledTime: in.ScheduledTime,
		WinnerID:      in.WinnerID,
	}, nil
}

type matchService struct {
	matchRepo      repositories.MatchRepository
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
) MatchService {
	return &matchService{
		matchRepo:      matchRepo,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
	}
}

func (s *matchService) ListMatchesPage(ctx context.Context) (*MatchesPage, error) {
	page := &MatchesPage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		matches, err := s.matchRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get all matches: %w", err)
		}
		page.Matches = matches
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get tournaments for match form: %w", err)
		}
		page.Tournaments = tournaments
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get teams for match form: %w", err)
		}
		page.Teams = teams
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	match, err := input.toModel(0)
	if err != nil {
		return nil, err
	}
	if err := s.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatchCreationFailed, err)
	}
	return match, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	match, err := input.toModel(id)
	if err != nil {
		return nil, err
	}
	if err := s.matchRepo.Update(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrMatchUpdateFailed, id, err)
	}
	return match, nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrMatchDeleteFailed, id, err)
	}
	return nil
}
