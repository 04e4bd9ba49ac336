package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// AdminRepository covers whole-database operations.
type AdminRepository interface {
	// Reset restores every table to the seed dataset via sp_reset_database.
	Reset(ctx context.Context) error
	Ping(ctx context.Context) error
}

type postgresAdminRepository struct {
	db *sql.DB
}

func NewPostgresAdminRepository(db *sql.DB) AdminRepository {
	return &postgresAdminRepository{db: db}
}

func (r *postgresAdminRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `CALL sp_reset_database()`); err != nil {
		return fmt.Errorf("failed to call sp_reset_database: %w", err)
	}
	return nil
}

func (r *postgresAdminRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
