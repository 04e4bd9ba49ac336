package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetAll(ctx context.Context) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id int) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `INSERT INTO games (title, developer, genre) VALUES ($1, $2, $3) RETURNING game_id`

	err := r.db.QueryRowContext(ctx, query, game.Title, game.Developer, game.Genre).Scan(&game.ID)
	return handlePQError(err)
}

func (r *postgresGameRepository) GetAll(ctx context.Context) ([]models.Game, error) {
	query := `SELECT game_id, title, developer, genre FROM games ORDER BY game_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if scanErr := rows.Scan(&g.ID, &g.Title, &g.Developer, &g.Genre); scanErr != nil {
			return nil, scanErr
		}
		games = append(games, g)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *postgresGameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `UPDATE games SET title = $1, developer = $2, genre = $3 WHERE game_id = $4`

	result, err := r.db.ExecContext(ctx, query, game.Title, game.Developer, game.Genre, game.ID)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

// Delete detaches tournaments played in the game (game_id becomes NULL) before
// removing the game itself.
func (r *postgresGameRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAll(ctx, tx, id,
			`UPDATE tournaments SET game_id = NULL WHERE game_id = $1`,
			`DELETE FROM games WHERE game_id = $1`,
		)
	})
}
