package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/pkg/config"
	"github.com/smashpoint/academy-api/pkg/dateutil"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type sessionBatchWriter interface {
	Create(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error
	ExistsAt(ctx context.Context, exec sqlx.ExtContext, date, timeSlot string, locationID *string) (bool, error)
}

type blackoutSnapshotter interface {
	Snapshot(ctx context.Context) ([]models.Blackout, error)
}

type classEnsurer interface {
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*models.Class, error)
	Create(ctx context.Context, exec sqlx.ExtContext, class *models.Class) error
}

// GeneratorService materializes recurring practice sessions over a date
// range: every open day in the range gets the configured daily slots,
// minus blacked-out dates and slots that already hold a live session.
type GeneratorService struct {
	sessions   sessionBatchWriter
	blackouts  blackoutSnapshotter
	classes    classEnsurer
	tx         txProvider
	cache      listCache
	validator  *validator.Validate
	logger     *zap.Logger
	metrics    generationRecorder
	closedDays map[time.Weekday]bool
	slots      []config.SlotConfig
}

type generationRecorder interface {
	RecordGeneration(created, skipped int)
}

// SetMetrics attaches an optional generation instrumentation sink.
func (s *GeneratorService) SetMetrics(metrics generationRecorder) {
	s.metrics = metrics
}

// NewGeneratorService wires generator dependencies. Closed weekdays and
// the daily slot list are injected so tests can exercise other calendars.
func NewGeneratorService(
	sessions sessionBatchWriter,
	blackouts blackoutSnapshotter,
	classes classEnsurer,
	tx txProvider,
	cache listCache,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg config.SchedulingConfig,
) *GeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	closedDays := cfg.ClosedWeekdays
	if len(closedDays) == 0 {
		closedDays = config.DefaultClosedWeekdays()
	}
	slots := cfg.Slots
	if len(slots) == 0 {
		slots = config.DefaultSlots()
	}
	return &GeneratorService{
		sessions:   sessions,
		blackouts:  blackouts,
		classes:    classes,
		tx:         tx,
		cache:      cache,
		validator:  validate,
		logger:     logger,
		closedDays: weekdaySet(closedDays),
		slots:      slots,
	}
}

// GenerateRequest bounds a generation run. Class and location are
// optional; without a class the sentinel "General Session" class is used.
type GenerateRequest struct {
	StartDate  string  `json:"start_date" validate:"required"`
	EndDate    string  `json:"end_date" validate:"required"`
	ClassID    *string `json:"class_id"`
	LocationID *string `json:"location_id"`
}

// GenerateResult tallies a run. Skipped conflates closed days, blackouts
// and existing duplicates into one number; callers depend on the total.
type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Generate materializes sessions for every open date in the inclusive
// range. The whole batch commits atomically: a failure mid-range leaves
// no partial generation behind. The blackout list is snapshotted once at
// the start; windows declared concurrently are not seen by this run.
func (s *GeneratorService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "start and end date required")
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
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date must be after start date")
	}

	targetLocation := normalizeLocation(req.LocationID)

	blackouts, err := s.blackouts.Snapshot(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load blackouts")
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to start transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	classID, err := s.resolveClass(ctx, tx, req.ClassID)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if s.closedDays[day.Weekday()] {
			result.Skipped += len(s.slots)
			continue
		}
		dateStr := dateutil.FormatDate(day)
		if anyCovers(blackouts, dateStr, targetLocation) {
			result.Skipped += len(s.slots)
			continue
		}
		for _, slot := range s.slots {
			exists, err := s.sessions.ExistsAt(ctx, tx, dateStr, slot.Time, targetLocation)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check existing sessions")
			}
			if exists {
				result.Skipped++
				continue
			}
			slotTime := slot.Time
			notes := "Auto-generated"
			session := &models.Session{
				Name:       slot.Name,
				ClassID:    classID,
				LocationID: targetLocation,
				Date:       dateStr,
				Time:       &slotTime,
				Notes:      &notes,
				Status:     models.SessionStatusActive,
			}
			if err := s.sessions.Create(ctx, tx, session); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
			}
			result.Created++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit generated sessions")
	}

	if s.cache != nil {
		s.cache.Delete(ctx, sessionListCacheKey)
	}
	if s.metrics != nil {
		s.metrics.RecordGeneration(result.Created, result.Skipped)
	}
	s.logger.Info("sessions generated",
		zap.String("start_date", dateutil.FormatDate(start)),
		zap.String("end_date", dateutil.FormatDate(end)),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// resolveClass returns the requested class id or lazily ensures the
// sentinel class inside the batch transaction. The check-then-insert is
// tolerant of the sentinel already existing.
func (s *GeneratorService) resolveClass(ctx context.Context, tx *sqlx.Tx, classID *string) (string, error) {
	if classID != nil && *classID != "" {
		return *classID, nil
	}
	_, err := s.classes.FindByID(ctx, tx, models.SystemClassID)
	if err == nil {
		return models.SystemClassID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve system class")
	}

	status := models.SystemClassStatus
	sentinel := &models.Class{
		ID:     models.SystemClassID,
		Name:   models.SystemClassName,
		Status: &status,
	}
	if err := s.classes.Create(ctx, tx, sentinel); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create system class")
	}
	return models.SystemClassID, nil
}

func anyCovers(blackouts []models.Blackout, date string, locationID *string) bool {
	for _, window := range blackouts {
		if window.Covers(date, locationID) {
			return true
		}
	}
	return false
}
