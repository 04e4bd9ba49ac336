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
	ErrTournamentMatchCreationFailed = errors.New("failed to add match to tournament")
	ErrTournamentMatchUpdateFailed   = errors.New("failed to update tournament match")
	ErrTournamentMatchDeleteFailed   = errors.New("failed to remove match from tournament")
)

type TournamentMatchService interface {
	ListTournamentMatchesPage(ctx context.Context) (*TournamentMatchesPage, error)
	CreateTournamentMatch(ctx context.Context, input TournamentMatchInput) (*models.TournamentMatch, error)
	UpdateTournamentMatch(ctx context.Context, id int, input TournamentMatchInput) (*models.TournamentMatch, error)
	DeleteTournamentMatch(ctx context.Context, id int) error
}

type TournamentMatchesPage struct {
	TournamentMatches []models.TournamentMatch
	Tournaments       []models.Tournament
	Matches           []models.Match
}

type TournamentMatchInput struct {
	TournamentID int
	MatchID      int
}

func (in TournamentMatchInput) toModel(id int) (*models.TournamentMatch, error) {
	if err := requireID("tournamentID", in.TournamentID); err != nil {
		return nil, err
	}
	if err := requireID("matchID", in.MatchID); err != nil {
		return nil, err
	}
	return &models.TournamentMatch{ID: id, TournamentID: in.TournamentID, MatchID: in.MatchID}, nil
}

type tournamentMatchService struct {
	tournamentMatchRepo repositories.TournamentMatchRepository
	tournamentRepo      repositories.TournamentRepository
	matchRepo           repositories.MatchRepository
}

func NewTournamentMatchService(
	tournamentMatchRepo repositories.TournamentMatchRepository,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
) TournamentMatchService {
	return &tournamentMatchService{
		tournamentMatchRepo: tournamentMatchRepo,
		tournamentRepo:      tournamentRepo,
		matchRepo:           matchRepo,
	}
}

func (s *tournamentMatchService) ListTournamentMatchesPage(ctx context.Context) (*TournamentMatchesPage, error) {
	page := &TournamentMatchesPage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.tournamentMatchRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get all tournament matches: %w", err)
		}
		page.TournamentMatches = rows
		return nil
	})
	g.Go(func() error {
		tournaments, err := s.tournamentRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get tournaments for tournament match form: %w", err)
		}
		page.Tournaments = tournaments
		return nil
	})
	g.Go(func() error {
		matches, err := s.matchRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get matches for tournament match form: %w", err)
		}
		page.Matches = matches
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *tournamentMatchService) CreateTournamentMatch(ctx context.Context, input TournamentMatchInput) (*models.TournamentMatch, error) {
	tm, err := input.toModel(0)
	if err != nil {
		return nil, err
	}
	if err := s.tournamentMatchRepo.Create(ctx, tm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTournamentMatchCreationFailed, err)
	}
	return tm, nil
}

func (s *tournamentMatchService) UpdateTournamentMatch(ctx context.Context, id int, input TournamentMatchInput) (*models.TournamentMatch, error) {
	tm, err := input.toModel(id)
	if err != nil {
		return nil, err
	}
	if err := s.tournamentMatchRepo.Update(ctx, tm); err != nil {
		if errors.Is(err, repositories.ErrTournamentMatchNotFound) {
			return nil, ErrTournamentMatchNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTournamentMatchUpdateFailed, id, err)
	}
	return tm, nil
}

func (s *tournamentMatchService) DeleteTournamentMatch(ctx context.Context, id int) error {
	if err := s.tournamentMatchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrTournamentMatchDeleteFailed, id, err)
	}
	return nil
}
