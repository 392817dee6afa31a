package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type attendanceRepository interface {
	List(ctx context.Context) ([]models.AttendanceEntry, error)
	BulkCreate(ctx context.Context, tx *sqlx.Tx, entries []models.AttendanceEntry) error
}

// AttendanceService records per-session attendance batches.
type AttendanceService struct {
	attendance attendanceRepository
	tx         txProvider
	logger     *zap.Logger
}

// NewAttendanceService wires attendance dependencies.
func NewAttendanceService(attendance attendanceRepository, tx txProvider, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, tx: tx, logger: logger}
}

// List returns the full log, newest first.
func (s *AttendanceService) List(ctx context.Context) ([]models.AttendanceEntry, error) {
	entries, err := s.attendance.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return entries, nil
}

// RecordBatch persists an attendance batch in a single transaction and
// returns the number of rows written.
func (s *AttendanceService) RecordBatch(ctx context.Context, entries []models.AttendanceEntry) (int, error) {
	if len(entries) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "no attendance rows provided")
	}
	for i := range entries {
		if entries[i].YearMonth == nil && entries[i].Date != nil && len(*entries[i].Date) >= 7 {
			ym := (*entries[i].Date)[:7]
			entries[i].YearMonth = &ym
		}
	}

	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to start transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	if err := s.attendance.BulkCreate(ctx, tx, entries); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record attendance")
	}
	if err := tx.Commit(); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit attendance")
	}

	s.logger.Info("attendance recorded", zap.Int("rows", len(entries)))
	return len(entries), nil
}
