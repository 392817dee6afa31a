package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
)

// UserRepository persists staff accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByName fetches one account. Returns sql.ErrNoRows when absent.
func (r *UserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	const query = `SELECT id, name, role, pin_hash, active, created_at, updated_at FROM users WHERE name = $1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, name); err != nil {
		return nil, err
	}
	return &user, nil
}
