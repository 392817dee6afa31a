package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/pkg/dateutil"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

// CancelledNoteMarker is appended to a session's notes when a blackout
// cascade cancels it. The annotation is idempotent: repeated cascades over
// the same range never duplicate it.
const CancelledNoteMarker = "Cancelled: blackout"

type blackoutRepository interface {
	List(ctx context.Context) ([]models.BlackoutView, error)
	Create(ctx context.Context, exec sqlx.ExtContext, window *models.Blackout) error
	Delete(ctx context.Context, id int64) error
	CountBlocking(ctx context.Context, date string, locationID *string) (int, error)
}

type sessionCanceller interface {
	CancelInRange(ctx context.Context, exec sqlx.ExtContext, startDate, endDate string, locationID *string, marker string) (int64, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// BlackoutService manages facility blackout windows. Declaring a window
// retroactively cancels the sessions already materialized inside it; this
// is the one configuration write in the system that corrects existing
// state instead of only gating future writes.
type BlackoutService struct {
	blackouts blackoutRepository
	sessions  sessionCanceller
	tx        txProvider
	cache     listCache
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBlackoutService wires blackout dependencies.
func NewBlackoutService(
	blackouts blackoutRepository,
	sessions sessionCanceller,
	tx txProvider,
	cache listCache,
	validate *validator.Validate,
	logger *zap.Logger,
) *BlackoutService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BlackoutService{
		blackouts: blackouts,
		sessions:  sessions,
		tx:        tx,
		cache:     cache,
		validator: validate,
		logger:    logger,
	}
}

// BlackoutRequest is the creation payload for a blackout window.
type BlackoutRequest struct {
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    string  `json:"end_date" validate:"required"`
	Reason     *string `json:"reason"`
	LocationID *string `json:"location_id"`
}

// List returns all windows, most recent start date first.
func (s *BlackoutService) List(ctx context.Context) ([]models.BlackoutView, error) {
	windows, err := s.blackouts.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list blackouts")
	}
	return windows, nil
}

// Create persists the window and cancels every session whose date falls
// inside it at the window's location (or everywhere for a global window).
// Insert and cascade run in one transaction so a failure leaves neither.
func (s *BlackoutService) Create(ctx context.Context, req BlackoutRequest) (*models.Blackout, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date range required")
	}

	start, ok := dateutil.ParseDateOnly(req.StartDate)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid start date")
	}
	end, ok := dateutil.ParseDateOnly(req.EndDate)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid end date")
	}
	if end.Before(start) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date must not be before start date")
	}

	window := &models.Blackout{
		StartDate:  dateutil.FormatDate(start),
		EndDate:    dateutil.FormatDate(end),
		Reason:     req.Reason,
		LocationID: normalizeLocation(req.LocationID),
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to start transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	if err := s.blackouts.Create(ctx, tx, window); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create blackout")
	}

	cancelled, err := s.sessions.CancelInRange(ctx, tx, window.StartDate, window.EndDate, window.LocationID, CancelledNoteMarker)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to cancel blacked-out sessions")
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit blackout")
	}

	if s.cache != nil {
		s.cache.Delete(ctx, sessionListCacheKey)
	}
	s.logger.Info("blackout created",
		zap.String("start_date", window.StartDate),
		zap.String("end_date", window.EndDate),
		zap.Int64("sessions_cancelled", cancelled),
	)
	return window, nil
}

// Delete removes the window. Sessions cancelled by its cascade stay
// cancelled: reactivation is a deliberate, separate edit.
func (s *BlackoutService) Delete(ctx context.Context, id int64) error {
	if err := s.blackouts.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete blackout")
	}
	return nil
}

// IsBlocked reports whether any window covers the date at the location.
func (s *BlackoutService) IsBlocked(ctx context.Context, date string, locationID *string) (bool, error) {
	count, err := s.blackouts.CountBlocking(ctx, date, locationID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check blackouts")
	}
	return count > 0, nil
}

func normalizeLocation(locationID *string) *string {
	if locationID == nil || *locationID == "" {
		return nil
	}
	return locationID
}
