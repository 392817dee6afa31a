package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// SessionRepository persists practice sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// List returns all sessions, most recent date first then most recent id,
// joined with class, coach and location display names.
func (r *SessionRepository) List(ctx context.Context) ([]models.SessionView, error) {
	const query = `SELECT s.id, s.name, s.class_id, s.coach_id, s.location_id, s.date, s.time, s.court, s.notes, s.status, s.created_at, s.updated_at,
c.name AS class_name, co.name AS coach_name, l.name AS location_name
FROM sessions s
LEFT JOIN classes c ON c.id = s.class_id
LEFT JOIN coaches co ON co.id = s.coach_id
LEFT JOIN locations l ON l.id = s.location_id
ORDER BY s.date DESC, s.id DESC`
	var sessions []models.SessionView
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// Create inserts a session and fills in its assigned id.
func (r *SessionRepository) Create(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error {
	const query = `INSERT INTO sessions (name, class_id, coach_id, location_id, date, time, court, notes, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	row := r.exec(exec).QueryRowxContext(ctx, query,
		session.Name, session.ClassID, session.CoachID, session.LocationID,
		session.Date, session.Time, session.Court, session.Notes, session.Status)
	if err := row.Scan(&session.ID); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// Update replaces the editable fields in place. Identifier and created
// timestamp are immutable.
func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = time.Now().UTC()
	const query = `UPDATE sessions
SET name = :name, class_id = :class_id, coach_id = :coach_id, location_id = :location_id,
    date = :date, time = :time, court = :court, notes = :notes, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// Delete removes a session unconditionally. Attendance rows referencing
// it are left in place.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// ExistsAt reports whether a non-cancelled session already occupies the
// (date, time slot, location) triple. Cancelled sessions do not count, so
// a cancelled slot may be regenerated.
func (r *SessionRepository) ExistsAt(ctx context.Context, exec sqlx.ExtContext, date, timeSlot string, locationID *string) (bool, error) {
	const query = `SELECT COUNT(*) FROM sessions
WHERE date = $1 AND time = $2
  AND (status IS NULL OR LOWER(status) <> 'cancelled')
  AND ((location_id IS NULL AND $3::text IS NULL) OR location_id = $3)`
	var count int
	if err := sqlx.GetContext(ctx, r.exec(exec), &count, query, date, timeSlot, locationID); err != nil {
		return false, fmt.Errorf("check session slot: %w", err)
	}
	return count > 0, nil
}

// CancelInRange flips every session in the inclusive date range (at the
// location, or everywhere when locationID is nil) to Cancelled and appends
// the blackout marker to its notes. The marker is never appended twice,
// but the status flip still applies to previously reactivated sessions.
func (r *SessionRepository) CancelInRange(ctx context.Context, exec sqlx.ExtContext, startDate, endDate string, locationID *string, marker string) (int64, error) {
	const query = `UPDATE sessions
SET status = 'Cancelled',
    notes = CASE
      WHEN notes LIKE '%' || $4 || '%' THEN notes
      WHEN notes IS NULL OR notes = '' THEN $4
      ELSE notes || ' | ' || $4
    END,
    updated_at = now()
WHERE date BETWEEN $1 AND $2
  AND ($3::text IS NULL OR location_id = $3)`
	result, err := r.exec(exec).ExecContext(ctx, query, startDate, endDate, locationID, marker)
	if err != nil {
		return 0, fmt.Errorf("cancel sessions in range: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cancel sessions in range: %w", err)
	}
	return affected, nil
}
