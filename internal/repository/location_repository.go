package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// LocationRepository persists training facilities.
type LocationRepository struct {
	db *sqlx.DB
}

// NewLocationRepository constructs a location repository.
func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns all locations ordered by id.
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	const query = `SELECT id, name, created_at, updated_at FROM locations ORDER BY id`
	var locations []models.Location
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

// Create inserts a location.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	const query = `INSERT INTO locations (id, name) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, location.ID, location.Name); err != nil {
		return fmt.Errorf("create location: %w", err)
	}
	return nil
}

// Update renames a location.
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	location.UpdatedAt = time.Now().UTC()
	const query = `UPDATE locations SET name = $1, updated_at = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, location.Name, location.UpdatedAt, location.ID); err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// Delete removes a location.
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}
