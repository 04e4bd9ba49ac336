package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/esports-admin/models"
	"github.com/Dosada05/esports-admin/repositories"
)

var (
	ErrGameCreationFailed = errors.New("failed to create game")
	ErrGameUpdateFailed   = errors.New("failed to update game")
	ErrGameDeleteFailed   = errors.New("failed to delete game")
)

type GameService interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	CreateGame(ctx context.Context, input GameInput) (*models.Game, error)
	UpdateGame(ctx context.Context, id int, input GameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, id int) error
}

type GameInput struct {
	Title     string
	Developer string
	Genre     string
}

func (in GameInput) toModel(id int) (*models.Game, error) {
	title, err := requireText(in.Title, ErrGameTitleRequired)
	if err != nil {
		return nil, err
	}
	developer, err := requireText(in.Developer, ErrGameDeveloperRequired)
	if err != nil {
		return nil, err
	}
	genre, err := requireText(in.Genre, ErrGameGenreRequired)
	if err != nil {
		return nil, err
	}
	return &models.Game{ID: id, Title: title, Developer: developer, Genre: genre}, nil
}

type gameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	if games == nil {
		return []models.Game{}, nil
	}
	return games, nil
}

func (s *gameService) CreateGame(ctx context.Context, input GameInput) (*models.Game, error) {
	game, err := input.toModel(0)
	if err != nil {
		return nil, err
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGameCreationFailed, err)
	}
	return game, nil
}

func (s *gameService) UpdateGame(ctx context.Context, id int, input GameInput) (*models.Game, error) {
	game, err := input.toModel(id)
	if err != nil {
		return nil, err
	}
	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("%w (id: %d): %w", ErrGameUpdateFailed, id, err)
	}
	return game, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id int) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w (id: %d): %w", ErrGameDeleteFailed, id, err)
	}
	return nil
}
