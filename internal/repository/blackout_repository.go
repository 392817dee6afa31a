package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// BlackoutRepository persists facility blackout windows.
type BlackoutRepository struct {
	db *sqlx.DB
}

// NewBlackoutRepository constructs a blackout repository.
func NewBlackoutRepository(db *sqlx.DB) *BlackoutRepository {
	return &BlackoutRepository{db: db}
}

func (r *BlackoutRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// List returns all windows, most recent start date first, joined with the
// facility display name.
func (r *BlackoutRepository) List(ctx context.Context) ([]models.BlackoutView, error) {
	const query = `SELECT sb.id, sb.start_date, sb.end_date, sb.reason, sb.location_id, sb.created_at, sb.updated_at, l.name AS location_name
FROM session_blackouts sb
LEFT JOIN locations l ON l.id = sb.location_id
ORDER BY sb.start_date DESC, sb.id DESC`
	var windows []models.BlackoutView
	if err := r.db.SelectContext(ctx, &windows, query); err != nil {
		return nil, fmt.Errorf("list blackouts: %w", err)
	}
	return windows, nil
}

// Snapshot returns every stored window without joins. The generator loads
// this once per run instead of re-querying per day.
func (r *BlackoutRepository) Snapshot(ctx context.Context) ([]models.Blackout, error) {
	const query = `SELECT id, start_date, end_date, reason, location_id, created_at, updated_at FROM session_blackouts`
	var windows []models.Blackout
	if err := r.db.SelectContext(ctx, &windows, query); err != nil {
		return nil, fmt.Errorf("snapshot blackouts: %w", err)
	}
	return windows, nil
}

// Create inserts a window and fills in its assigned id.
func (r *BlackoutRepository) Create(ctx context.Context, exec sqlx.ExtContext, window *models.Blackout) error {
	const query = `INSERT INTO session_blackouts (start_date, end_date, reason, location_id)
VALUES ($1, $2, $3, $4) RETURNING id`
	row := r.exec(exec).QueryRowxContext(ctx, query, window.StartDate, window.EndDate, window.Reason, window.LocationID)
	if err := row.Scan(&window.ID); err != nil {
		return fmt.Errorf("create blackout: %w", err)
	}
	return nil
}

// Delete removes a window. Previously cancelled sessions stay cancelled;
// the cascade is one-directional.
func (r *BlackoutRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM session_blackouts WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete blackout: %w", err)
	}
	return nil
}

// CountBlocking counts windows covering the date at the location. Windows
// without a location block everywhere; a nil location is only blocked by
// those global windows.
func (r *BlackoutRepository) CountBlocking(ctx context.Context, date string, locationID *string) (int, error) {
	const query = `SELECT COUNT(*) FROM session_blackouts
WHERE $1 BETWEEN start_date AND end_date
  AND (location_id IS NULL OR location_id = $2)`
	var count int
	if err := r.db.GetContext(ctx, &count, query, date, locationID); err != nil {
		return 0, fmt.Errorf("count blocking blackouts: %w", err)
	}
	return count, nil
}
