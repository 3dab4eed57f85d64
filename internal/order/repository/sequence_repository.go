package repository

import (
	"context"
	"database/sql"

	"puramente/internal/errors"
)

// MySQLSequenceRepository issues strictly increasing ids from named counter
// rows. The counter row is created lazily on first use.
type MySQLSequenceRepository struct {
	db *sql.DB
}

func NewMySQLSequenceRepository(db *sql.DB) *MySQLSequenceRepository {
	return &MySQLSequenceRepository{db: db}
}

// Next atomically increments the named counter and returns the new value.
// LAST_INSERT_ID(expr) makes the increment and the read a single statement,
// so two concurrent callers can never observe the same value.
func (r *MySQLSequenceRepository) Next(ctx context.Context, name string) (uint64, error) {
	query := `
		INSERT INTO SequenceCounters (name, value)
		VALUES (?, LAST_INSERT_ID(1))
		ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1)
	`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return 0, errors.NewAllocationError("incrementing sequence counter", err)
	}

	value, err := result.LastInsertId()
	if err != nil {
		return 0, errors.NewAllocationError("reading allocated sequence value", err)
	}

	return uint64(value), nil
}
