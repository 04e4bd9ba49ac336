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
	ErrTournamentCreationFailed = errors.New("failed to create tournament")
	ErrTournamentUpdateFailed   = errors.New("failed to update tournament")
	ErrTournamentDeleteFailed   = errors.New("failed to delete tournament")
)

type TournamentService interface {
	ListTournamentsPage(ctx context.Context) (*TournamentsPage, error)
	CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int) error
}

// TournamentsPage is everything the tournaments page renders: the rows plus
// the games offered in the add/edit form.
type TournamentsPage struct {
	Tournaments []models.Tournament
	Games       []models.Game
}

type TournamentInput struct {
	Name       string
	GameID     *int // nil leaves the tournament without a game
	PrizeMoney int
	Location   string
	StartDate  time.Time
	EndDate    time.Time
}

func (in TournamentInput) toModel(id int) (*models.Tournament, error) {
	name, err := requireText(in.Name, ErrTournamentNameRequired)
	if err != nil {
		return nil, err
	}
	location, err := requireText(in.Location, ErrTournamentLocationRequired)
	if err != nil {
		return nil, err
	}
	if err := requireOptionalID("gameID", in.GameID); err != nil {
		return nil, err
	}
	if in.PrizeMoney < 0 {
		return nil, ErrTournamentInvalidPrize
	}
	if err := validateTournamentDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	return &models.Tournament{
		ID:         id,
		Name:       name,
		GameID:     in.GameID,
		PrizeMoney: in.PrizeMoney,
		Location:   location,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
	}, nil
}

func validateTournamentDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrTournamentDatesRequired
	}
	if end.Before(start) {
		return fmt.Errorf("%w: start date (%s), end date (%s)", ErrTournamentInvalidDateRange,
			start.Format(time.DateOnly), end.Format(time.DateOnly))
	}
	return nil
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	gameRepo       repositories.GameRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	gameRepo repositories.GameRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		gameRepo:       gameRepo,
	}
}

func (s *tournamentService) ListTournamentsPage(ctx context.Context) (*TournamentsPage, error) {
	page := &TournamentsPage{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tournaments, err := s.tournamentRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get all tournaments: %w", err)
		}
		page.Tournaments = tournaments
		return nil
	})
	g.Go(func() error {
		games, err := s.gameRepo.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to get games for tournament form: %w", err)
		}
		page.Games = games
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *tournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	tournament, err := input.toModel(0)
	if err != nil {
		return nil, err
	}
	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTournamentCreationFailed, err)
	}
	return tournament, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id int, input TournamentInput) (*models.Tournament, error) {
	tournament, err := input.toModel(id)
	if err != nil {
		return nil, err
	}
	if err := s.tournamentRepo.Update(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrTournamentUpdateFailed, id, err)
	}
	return tournament, nil
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id int) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrTournamentDeleteFailed, id, err)
	}
	return nil
}
