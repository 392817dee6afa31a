package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// CoachRepository persists training staff.
type CoachRepository struct {
	db *sqlx.DB
}

// NewCoachRepository constructs a coach repository.
func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

// List returns all coaches ordered by id.
func (r *CoachRepository) List(ctx context.Context) ([]models.Coach, error) {
	const query = `SELECT id, name, phone, status, created_at, updated_at FROM coaches ORDER BY id`
	var coaches []models.Coach
	if err := r.db.SelectContext(ctx, &coaches, query); err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return coaches, nil
}

// Create inserts a coach.
func (r *CoachRepository) Create(ctx context.Context, coach *models.Coach) error {
	const query = `INSERT INTO coaches (id, name, phone, status) VALUES (:id, :name, :phone, :status)`
	if _, err := r.db.NamedExecContext(ctx, query, coach); err != nil {
		return fmt.Errorf("create coach: %w", err)
	}
	return nil
}

// Update replaces the editable fields of a coach.
func (r *CoachRepository) Update(ctx context.Context, coach *models.Coach) error {
	coach.UpdatedAt = time.Now().UTC()
	const query = `UPDATE coaches SET name = :name, phone = :phone, status = :status, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, coach); err != nil {
		return fmt.Errorf("update coach: %w", err)
	}
	return nil
}

// Delete removes a coach.
func (r *CoachRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM coaches WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete coach: %w", err)
	}
	return nil
}
