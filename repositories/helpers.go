package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Ошибки уровня хранилища, общие для всех репозиториев.
var (
	ErrInvalidReference = errors.New("referenced row does not exist")
	ErrDuplicate        = errors.New("duplicate row")
	ErrCheckViolation   = errors.New("row violates a check constraint")
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError // Возвращаем переданную ошибку "не найдено"
	}
	return nil
}

// withTx runs fn inside a transaction, committing on success and rolling back otherwise.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// execAll runs each statement with the same single argument, stopping at the first failure.
func execAll(ctx context.Context, exec SQLExecutor, arg interface{}, queries ...string) error {
	for _, q := range queries {
		if _, err := exec.ExecContext(ctx, q, arg); err != nil {
			return handlePQError(err)
		}
	}
	return nil
}

// handlePQError tags postgres constraint violations with a repository sentinel
// while keeping the driver error in the chain.
func handlePQError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w (%s): %w", ErrInvalidReference, pqErr.Constraint, err)
		case "23505": // unique_violation
			return fmt.Errorf("%w (%s): %w", ErrDuplicate, pqErr.Constraint, err)
		case "23514": // check_violation
			return fmt.Errorf("%w (%s): %w", ErrCheckViolation, pqErr.Constraint, err)
		}
	}
	return err
}
