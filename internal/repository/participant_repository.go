package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// ParticipantRepository manages the ad-hoc roster attached to a session.
type ParticipantRepository struct {
	db *sqlx.DB
}

// NewParticipantRepository constructs a participant repository.
func NewParticipantRepository(db *sqlx.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// ListBySession returns the roster for a session, newest entry first.
func (r *ParticipantRepository) ListBySession(ctx context.Context, sessionID int64) ([]models.Participant, error) {
	const query = `SELECT id, session_id, player_id, player_name, created_at
FROM session_participants WHERE session_id = $1 ORDER BY id DESC`
	var participants []models.Participant
	if err := r.db.SelectContext(ctx, &participants, query, sessionID); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

// ExistsByPlayer reports whether the player is already on the roster.
func (r *ParticipantRepository) ExistsByPlayer(ctx context.Context, sessionID int64, playerID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM session_participants WHERE session_id = $1 AND player_id = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, sessionID, playerID); err != nil {
		return false, fmt.Errorf("check participant: %w", err)
	}
	return count > 0, nil
}

// Create adds a roster entry and fills in its assigned id.
func (r *ParticipantRepository) Create(ctx context.Context, participant *models.Participant) error {
	const query = `INSERT INTO session_participants (session_id, player_id, player_name)
VALUES ($1, $2, $3) RETURNING id`
	row := r.db.QueryRowxContext(ctx, query, participant.SessionID, participant.PlayerID, participant.PlayerName)
	if err := row.Scan(&participant.ID); err != nil {
		return fmt.Errorf("create participant: %w", err)
	}
	return nil
}

// Delete removes a roster entry scoped to its session.
func (r *ParticipantRepository) Delete(ctx context.Context, id, sessionID int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM session_participants WHERE id = $1 AND session_id = $2", id, sessionID); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}
