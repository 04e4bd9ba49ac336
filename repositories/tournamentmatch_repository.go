package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrTournamentMatchNotFound = errors.New("tournament match not found")

type TournamentMatchRepository interface {
	Create(ctx context.Context, tm *models.TournamentMatch) error
	GetAll(ctx context.Context) ([]models.TournamentMatch, error)
	Update(ctx context.Context, tm *models.TournamentMatch) error
	Delete(ctx context.Context, id int) error
}

type postgresTournamentMatchRepository struct {
	db *sql.DB
}

func NewPostgresTournamentMatchRepository(db *sql.DB) TournamentMatchRepository {
	return &postgresTournamentMatchRepository{db: db}
}

func (r *postgresTournamentMatchRepository) Create(ctx context.Context, tm *models.TournamentMatch) error {
	query := `INSERT INTO tournament_matches (tournament_id, match_id) VALUES ($1, $2) RETURNING tournament_match_id`

	err := r.db.QueryRowContext(ctx, query, tm.TournamentID, tm.MatchID).Scan(&tm.ID)
	return handlePQError(err)
}

func (r *postgresTournamentMatchRepository) GetAll(ctx context.Context) ([]models.TournamentMatch, error) {
	query := `
		SELECT tm.tournament_match_id, tm.tournament_id, tm.match_id, t.name, m.scheduled_time
		FROM tournament_matches tm
		LEFT JOIN tournaments t ON t.tournament_id = tm.tournament_id
		LEFT JOIN matches m ON m.match_id = tm.match_id
		ORDER BY tm.tournament_match_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.TournamentMatch, 0)
	for rows.Next() {
		var tm models.TournamentMatch
		if scanErr := rows.Scan(&tm.ID, &tm.TournamentID, &tm.MatchID, &tm.TournamentName, &tm.MatchScheduledTime); scanErr != nil {
			return nil, scanErr
		}
		result = append(result, tm)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresTournamentMatchRepository) Update(ctx context.Context, tm *models.TournamentMatch) error {
	query := `UPDATE tournament_matches SET tournament_id = $1, match_id = $2 WHERE tournament_match_id = $3`

	result, err := r.db.ExecContext(ctx, query, tm.TournamentID, tm.MatchID, tm.ID)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrTournamentMatchNotFound)
}

func (r *postgresTournamentMatchRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tournament_matches WHERE tournament_match_id = $1`, id)
	return handlePQError(err)
}
