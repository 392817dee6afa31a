package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context) ([]models.ClassView, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*models.Class, error)
	Create(ctx context.Context, exec sqlx.ExtContext, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

// ClassService manages recurring training groups.
type ClassService struct {
	classes   classRepository
	validator *validator.Validate
}

// NewClassService constructs the service.
func NewClassService(classes classRepository, validate *validator.Validate) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	return &ClassService{classes: classes, validator: validate}
}

// ClassRequest is the create/update payload for a class.
type ClassRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Status     *string `json:"status"`
	LocationID string  `json:"location_id" validate:"required"`
	Day        *string `json:"day"`
	Court      *string `json:"court"`
}

// List returns all classes with their facility names.
func (s *ClassService) List(ctx context.Context) ([]models.ClassView, error) {
	classes, err := s.classes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Create inserts a class.
func (s *ClassService) Create(ctx context.Context, req ClassRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class id, name, and location required")
	}
	if err := s.classes.Create(ctx, nil, classFromRequest(req)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return nil
}

// Update replaces a class's editable fields.
func (s *ClassService) Update(ctx context.Context, id string, req ClassRequest) error {
	req.ID = id
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "class name and location required")
	}
	if err := s.classes.Update(ctx, classFromRequest(req)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return nil
}

// Delete removes a class.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	return nil
}

func classFromRequest(req ClassRequest) *models.Class {
	location := req.LocationID
	return &models.Class{
		ID:         req.ID,
		Name:       req.Name,
		Status:     req.Status,
		LocationID: &location,
		Day:        req.Day,
		Court:      req.Court,
	}
}
