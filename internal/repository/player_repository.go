package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// PlayerRepository persists enrolled students.
type PlayerRepository struct {
	db *sqlx.DB
}

// NewPlayerRepository constructs a player repository.
func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List returns all players ordered by id.
func (r *PlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	const query = `SELECT id, name, class_id, level, status, parent_name, parent_phone, start_date, payment_status, created_at, updated_at
FROM players ORDER BY id`
	var players []models.Player
	if err := r.db.SelectContext(ctx, &players, query); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// FindByID fetches one player. Returns sql.ErrNoRows when absent.
func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*models.Player, error) {
	const query = `SELECT id, name, class_id, level, status, parent_name, parent_phone, start_date, payment_status, created_at, updated_at
FROM players WHERE id = $1`
	var player models.Player
	if err := r.db.GetContext(ctx, &player, query, id); err != nil {
		return nil, err
	}
	return &player, nil
}

// Create inserts a player.
func (r *PlayerRepository) Create(ctx context.Context, player *models.Player) error {
	const query = `INSERT INTO players (id, name, class_id, level, status, parent_name, parent_phone, start_date, payment_status)
VALUES (:id, :name, :class_id, :level, :status, :parent_name, :parent_phone, :start_date, :payment_status)`
	if _, err := r.db.NamedExecContext(ctx, query, player); err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a player.
func (r *PlayerRepository) Update(ctx context.Context, player *models.Player) error {
	player.UpdatedAt = time.Now().UTC()
	const query = `UPDATE players
SET name = :name, class_id = :class_id, level = :level, status = :status, parent_name = :parent_name,
    parent_phone = :parent_phone, start_date = :start_date, payment_status = :payment_status, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, player); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

// Delete removes a player.
func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}
