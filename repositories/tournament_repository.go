package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	// GetAll returns every tournament with the title of its game resolved.
	GetAll(ctx context.Context) ([]models.Tournament, error)
	Update(ctx context.Context, tournament *models.Tournament) error
	Delete(ctx context.Context, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, game_id, prize_money, location, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING tournament_id`

	err := r.db.QueryRowContext(ctx, query,
		t.Name, t.GameID, t.PrizeMoney, t.Location, t.StartDate, t.EndDate,
	).Scan(&t.ID)
	return handlePQError(err)
}

func (r *postgresTournamentRepository) GetAll(ctx context.Context) ([]models.Tournament, error) {
	query := `
		SELECT
			t.tournament_id, t.name, t.game_id, t.prize_money, t.location, t.start_date, t.end_date,
			g.title
		FROM tournaments t
		LEFT JOIN games g ON g.game_id = t.game_id
		ORDER BY t.tournament_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.GameID, &t.PrizeMoney, &t.Location, &t.StartDate, &t.EndDate,
			&t.GameTitle,
		); scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	query := `
		UPDATE tournaments SET
			name = $1,
			game_id = $2,
			prize_money = $3,
			location = $4,
			start_date = $5,
			end_date = $6
		WHERE tournament_id = $7`

	result, err := r.db.ExecContext(ctx, query,
		t.Name, t.GameID, t.PrizeMoney, t.Location, t.StartDate, t.EndDate,
		t.ID,
	)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

// Delete removes the tournament, its matches and every join row that points at
// either of them, all in one transaction.
func (r *postgresTournamentRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAll(ctx, tx, id,
			`DELETE FROM match_teams WHERE match_id IN (SELECT match_id FROM matches WHERE tournament_id = $1)`,
			`DELETE FROM tournament_matches WHERE tournament_id = $1
				OR match_id IN (SELECT match_id FROM matches WHERE tournament_id = $1)`,
			`DELETE FROM matches WHERE tournament_id = $1`,
			`DELETE FROM tournaments WHERE tournament_id = $1`,
		)
	})
}
