package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/esports-admin/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetAll(ctx context.Context) ([]models.Team, error)
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `INSERT INTO teams (name, region, player_count) VALUES ($1, $2, $3) RETURNING team_id`

	err := r.db.QueryRowContext(ctx, query, team.Name, team.Region, team.PlayerCount).Scan(&team.ID)
	return handlePQError(err)
}

func (r *postgresTeamRepository) GetAll(ctx context.Context) ([]models.Team, error) {
	query := `SELECT team_id, name, region, player_count FROM teams ORDER BY team_id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.Region, &t.PlayerCount); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Update(ctx context.Context, team *models.Team) error {
	query := `UPDATE teams SET name = $1, region = $2, player_count = $3 WHERE team_id = $4`

	result, err := r.db.ExecContext(ctx, query, team.Name, team.Region, team.PlayerCount, team.ID)
	if err != nil {
		return handlePQError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

// Delete removes the team together with its match participations and clears
// any match it is recorded as winning. Deleting a missing id is not an error.
func (r *postgresTeamRepository) Delete(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return execAll(ctx, tx, id,
			`DELETE FROM match_teams WHERE team_id = $1`,
			`UPDATE matches SET winner_id = NULL WHERE winner_id = $1`,
			`DELETE FROM teams WHERE team_id = $1`,
		)
	})
}
