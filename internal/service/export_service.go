package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/export"
)

type sessionViewLister interface {
	List(ctx context.Context) ([]models.SessionView, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

const scheduleExportTitle = "Practice Schedule"

// ExportService renders the session schedule for download.
type ExportService struct {
	sessions sessionViewLister
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService wires exporters over the session store.
func NewExportService(sessions sessionViewLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{sessions: sessions, csv: csv, pdf: pdf, logger: logger}
}

// SessionsCSV renders the full schedule as CSV bytes.
func (s *ExportService) SessionsCSV(ctx context.Context) ([]byte, error) {
	data, err := s.scheduleDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return out, nil
}

// SessionsPDF renders the full schedule as a landscape PDF.
func (s *ExportService) SessionsPDF(ctx context.Context) ([]byte, error) {
	data, err := s.scheduleDataset(ctx)
	if err != nil {
		return nil, err
	}
	out, err := s.pdf.Render(data, scheduleExportTitle)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return out, nil
}

func (s *ExportService) scheduleDataset(ctx context.Context) (export.Dataset, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	data := export.Dataset{
		Headers: []string{"ID", "Date", "Time", "Name", "Class", "Coach", "Location", "Court", "Status", "Notes"},
		Rows:    make([]map[string]string, 0, len(sessions)),
	}
	for _, sv := range sessions {
		data.Rows = append(data.Rows, map[string]string{
			"ID":       strconv.FormatInt(sv.ID, 10),
			"Date":     sv.Date,
			"Time":     derefOr(sv.Time, ""),
			"Name":     sv.Name,
			"Class":    derefOr(sv.ClassName, sv.ClassID),
			"Coach":    derefOr(sv.CoachName, derefOr(sv.CoachID, "")),
			"Location": derefOr(sv.LocationName, derefOr(sv.LocationID, "")),
			"Court":    derefOr(sv.Court, ""),
			"Status":   sv.Status,
			"Notes":    derefOr(sv.Notes, ""),
		})
	}
	s.logger.Debug("schedule dataset built", zap.Int("rows", len(data.Rows)))
	return data, nil
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}
