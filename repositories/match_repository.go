package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	// GetAll returns every match with tournament and winner names resolved.
	GetAll(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (tournament_id, scheduled_time, winner_id)
		VALUES ($1, $2, $3)
		RETURNING match_id`

	err := r.db.QueryRowContext(ctx, query,
		match.TournamentID,
		match.ScheduledTime,
		match.WinnerID,
	).Scan(&match.ID)
	return handlePQError(err)
}

func (r *postgresMatchRepository) GetAll(ctx context.Context) ([]models.Match, error) {
	query := `
		SELECT
			m.match_id, m.tournament_id, m.scheduled_time, m.winner_id,
			t.name AS tournament_name,
			w.name AS winner_name
		FROM matches m
		LEFT JOIN tournaments t ON t.tournament_id = m.tournament_id
		LEFT JOIN teams w ON w.team_id = m.winner_id
		ORDER BY m.match_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID,
			&m.TournamentID,
			&m.ScheduledTime,
			&m.WinnerID,
			&m.TournamentName,
			&m.WinnerName,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `UPDATE matches SET tournament_id = $1, scheduled_time = $2, winner_id = $3 WHERE match_id = $4`

	result, err := r.db.ExecContext(ctx, query, match.TournamentID, match.ScheduledTime, match.WinnerID, match.ID)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAll(ctx, tx, id,
			`DELETE FROM match_teams WHERE match_id = $1`,
			`DELETE FROM tournament_matches WHERE match_id = $1`,
			`DELETE FROM matches WHERE match_id = $1`,
		)
	})
}
