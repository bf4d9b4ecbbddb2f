package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// StatusRepository exercises database connectivity for diagnostics.
type StatusRepository struct {
	db *sqlx.DB
}

// NewStatusRepository creates a new instance of StatusRepository.
func NewStatusRepository(db *sqlx.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// ServerTime asks the database for its current time, proving the
// connection is usable end to end.
func (r *StatusRepository) ServerTime(ctx context.Context) (time.Time, error) {
	const query = `SELECT NOW()`
	var now time.Time
	if err := r.db.GetContext(ctx, &now, query); err != nil {
		return time.Time{}, fmt.Errorf("select server time: %w", err)
	}
	return now, nil
}
