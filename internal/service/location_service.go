package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type locationRepository interface {
	List(ctx context.Context) ([]models.Location, error)
	Create(ctx context.Context, location *models.Location) error
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id string) error
}

// LocationService manages training facilities.
type LocationService struct {
	locations locationRepository
	validator *validator.Validate
}

// NewLocationService constructs the service.
func NewLocationService(locations locationRepository, validate *validator.Validate) *LocationService {
	if validate == nil {
		validate = validator.New()
	}
	return &LocationService{locations: locations, validator: validate}
}

// LocationRequest is the create/update payload for a location.
type LocationRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

// List returns all locations.
func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list locations")
	}
	return locations, nil
}

// Create inserts a location.
func (s *LocationService) Create(ctx context.Context, req LocationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "location id and name required")
	}
	if err := s.locations.Create(ctx, &models.Location{ID: req.ID, Name: req.Name}); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create location")
	}
	return nil
}

// Update renames a location.
func (s *LocationService) Update(ctx context.Context, id, name string) error {
	if name == "" {
		return appErrors.Clone(appErrors.ErrValidation, "location name required")
	}
	if err := s.locations.Update(ctx, &models.Location{ID: id, Name: name}); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update location")
	}
	return nil
}

// Delete removes a location.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete location")
	}
	return nil
}
