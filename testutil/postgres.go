package testutil

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Dosada05/esports-admin/db"
)

// SetupTestDB connects to TEST_DATABASE_URL, applies migrations and reloads
// the seed data. Tests are skipped when the variable is not set.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres test")
	}

	conn, err := db.Connect(dsn, 5*time.Second, db.PoolOptions{MaxOpenConns: 5, MaxIdleConns: 5})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(context.Background(), conn, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if _, err := conn.ExecContext(context.Background(), `CALL sp_reset_database()`); err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
	return conn
}
