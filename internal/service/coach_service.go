package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type coachRepository interface {
	List(ctx context.Context) ([]models.Coach, error)
	Create(ctx context.Context, coach *models.Coach) error
	Update(ctx context.Context, coach *models.Coach) error
	Delete(ctx context.Context, id string) error
}

// CoachService manages training staff.
type CoachService struct {
	coaches   coachRepository
	validator *validator.Validate
}

// NewCoachService constructs the service.
func NewCoachService(coaches coachRepository, validate *validator.Validate) *CoachService {
	if validate == nil {
		validate = validator.New()
	}
	return &CoachService{coaches: coaches, validator: validate}
}

// CoachRequest is the create/update payload for a coach.
type CoachRequest struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

// List returns all coaches.
func (s *CoachService) List(ctx context.Context) ([]models.Coach, error) {
	coaches, err := s.coaches.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list coaches")
	}
	return coaches, nil
}

// Create inserts a coach.
func (s *CoachService) Create(ctx context.Context, req CoachRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "coach id and name required")
	}
	coach := &models.Coach{ID: req.ID, Name: req.Name, Phone: req.Phone, Status: req.Status}
	if err := s.coaches.Create(ctx, coach); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create coach")
	}
	return nil
}

// Update replaces a coach's editable fields.
func (s *CoachService) Update(ctx context.Context, id string, req CoachRequest) error {
	coach := &models.Coach{ID: id, Name: req.Name, Phone: req.Phone, Status: req.Status}
	if err := s.coaches.Update(ctx, coach); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update coach")
	}
	return nil
}

// Delete removes a coach.
func (s *CoachService) Delete(ctx context.Context, id string) error {
	if err := s.coaches.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete coach")
	}
	return nil
}
