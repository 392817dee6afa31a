package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type playerRepository interface {
	List(ctx context.Context) ([]models.Player, error)
	FindByID(ctx context.Context, id string) (*models.Player, error)
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id string) error
}

// PlayerService manages enrolled students.
type PlayerService struct {
	players   playerRepository
	validator *validator.Validate
}

// NewPlayerService constructs the service.
func NewPlayerService(players playerRepository, validate *validator.Validate) *PlayerService {
	if validate == nil {
		validate = validator.New()
	}
	return &PlayerService{players: players, validator: validate}
}

// PlayerRequest is the create/update payload for a player.
type PlayerRequest struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	ClassID       *string `json:"class_id"`
	Level         *string `json:"level"`
	Status        *string `json:"status"`
	ParentName    *string `json:"parent_name"`
	ParentPhone   *string `json:"parent_phone"`
	StartDate     *string `json:"start_date"`
	PaymentStatus *string `json:"payment_status"`
}

// List returns all players.
func (s *PlayerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list players")
	}
	return players, nil
}

// Create inserts a player.
func (s *PlayerService) Create(ctx context.Context, req PlayerRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "player id and name required")
	}
	if err := s.players.Create(ctx, playerFromRequest(req)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create player")
	}
	return nil
}

// Update replaces a player's editable fields.
func (s *PlayerService) Update(ctx context.Context, id string, req PlayerRequest) error {
	req.ID = id
	if err := s.players.Update(ctx, playerFromRequest(req)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update player")
	}
	return nil
}

// Delete removes a player.
func (s *PlayerService) Delete(ctx context.Context, id string) error {
	if err := s.players.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete player")
	}
	return nil
}

func playerFromRequest(req PlayerRequest) *models.Player {
	return &models.Player{
		ID:            req.ID,
		Name:          req.Name,
		ClassID:       req.ClassID,
		Level:         req.Level,
		Status:        req.Status,
		ParentName:    req.ParentName,
		ParentPhone:   req.ParentPhone,
		StartDate:     req.StartDate,
		PaymentStatus: req.PaymentStatus,
	}
}
