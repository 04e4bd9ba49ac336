package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrMatchTeamNotFound = errors.New("match team not found")

type MatchTeamRepository interface {
	Create(ctx context.Context, mt *models.MatchTeam) error
	// GetAll only returns rows whose team still exists (INNER JOIN on teams).
	GetAll(ctx context.Context) ([]models.MatchTeam, error)
	Update(ctx context.Context, mt *models.MatchTeam) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchTeamRepository struct {
	db *sql.DB
}

func NewPostgresMatchTeamRepository(db *sql.DB) MatchTeamRepository {
	return &postgresMatchTeamRepository{db: db}
}

func (r *postgresMatchTeamRepository) Create(ctx context.Context, mt *models.MatchTeam) error {
	query := `INSERT INTO match_teams (match_id, team_id) VALUES ($1, $2) RETURNING match_team_id`

	err := r.db.QueryRowContext(ctx, query, mt.MatchID, mt.TeamID).Scan(&mt.ID)
	return handlePQError(err)
}

func (r *postgresMatchTeamRepository) GetAll(ctx context.Context) ([]models.MatchTeam, error) {
	query := `
		SELECT mt.match_team_id, mt.match_id, mt.team_id, t.name, m.scheduled_time
		FROM match_teams mt
		INNER JOIN teams t ON t.team_id = mt.team_id
		LEFT JOIN matches m ON m.match_id = mt.match_id
		ORDER BY mt.match_id ASC, mt.match_team_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]models.MatchTeam, 0)
	for rows.Next() {
		var mt models.MatchTeam
		if scanErr := rows.Scan(&mt.ID, &mt.MatchID, &mt.TeamID, &mt.TeamName, &mt.MatchScheduledTime); scanErr != nil {
			return nil, scanErr
		}
		result = append(result, mt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresMatchTeamRepository) Update(ctx context.Context, mt *models.MatchTeam) error {
	query := `UPDATE match_teams SET match_id = $1, team_id = $2 WHERE match_team_id = $3`

	result, err := r.db.ExecContext(ctx, query, mt.MatchID, mt.TeamID, mt.ID)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrMatchTeamNotFound)
}

func (r *postgresMatchTeamRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM match_teams WHERE match_team_id = $1`, id)
	return handlePQError(err)
}
