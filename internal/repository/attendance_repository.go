package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// AttendanceRepository persists the attendance log.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// List returns the log, most recent date first then most recent id.
func (r *AttendanceRepository) List(ctx context.Context) ([]models.AttendanceEntry, error) {
	const query = `SELECT id, date, year_month, location_id, session_id, class_id, coach_id, slot, player_id, player_name, present, late, over_limit, remarks, created_at
FROM attendance_log ORDER BY date DESC, id DESC`
	var entries []models.AttendanceEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return entries, nil
}

// BulkCreate inserts entries using an existing transaction so a batch is
// committed whole or not at all.
func (r *AttendanceRepository) BulkCreate(ctx context.Context, tx *sqlx.Tx, entries []models.AttendanceEntry) error {
	if tx == nil {
		return fmt.Errorf("nil transaction provided")
	}
	const query = `INSERT INTO attendance_log (date, year_month, location_id, session_id, class_id, coach_id, slot, player_id, player_name, present, late, over_limit, remarks)
VALUES (:date, :year_month, :location_id, :session_id, :class_id, :coach_id, :slot, :player_id, :player_name, :present, :late, :over_limit, :remarks)`
	for i := range entries {
		if _, err := sqlx.NamedExecContext(ctx, tx, query, &entries[i]); err != nil {
			return fmt.Errorf("bulk insert attendance: %w", err)
		}
	}
	return nil
}
