package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/repository"
	"github.com/smashpoint/academy-api/pkg/config"
	"github.com/smashpoint/academy-api/pkg/dateutil"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

const sessionListCacheKey = "sessions:list"

type sessionRepository interface {
	List(ctx context.Context) ([]models.SessionView, error)
	Create(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id int64) error
}

type blackoutChecker interface {
	CountBlocking(ctx context.Context, date string, locationID *string) (int, error)
}

type classLocationReader interface {
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*models.Class, error)
}

type participantRepository interface {
	ListBySession(ctx context.Context, sessionID int64) ([]models.Participant, error)
	ExistsByPlayer(ctx context.Context, sessionID int64, playerID string) (bool, error)
	Create(ctx context.Context, participant *models.Participant) error
	Delete(ctx context.Context, id, sessionID int64) error
}

type playerNameReader interface {
	FindByID(ctx context.Context, id string) (*models.Player, error)
}

type listCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string)
}

type cacheMetricsRecorder interface {
	RecordCacheOperation(hit bool)
}

// SessionService manages practice sessions and their rosters. Creation
// and edits enforce the closed-weekday rule and the blackout registry
// before any row is written.
type SessionService struct {
	sessions     sessionRepository
	blackouts    blackoutChecker
	classes      classLocationReader
	participants participantRepository
	players      playerNameReader
	cache        listCache
	validator    *validator.Validate
	logger       *zap.Logger
	metrics      cacheMetricsRecorder
	closedDays   map[time.Weekday]bool
	closedMsg    string
	cacheTTL     time.Duration
}

// SetMetrics attaches an optional cache instrumentation sink.
func (s *SessionService) SetMetrics(metrics cacheMetricsRecorder) {
	s.metrics = metrics
}

// NewSessionService wires session dependencies. The closed weekday set
// comes from configuration rather than being baked into the checks.
func NewSessionService(
	sessions sessionRepository,
	blackouts blackoutChecker,
	classes classLocationReader,
	participants participantRepository,
	players playerNameReader,
	cache listCache,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg config.SchedulingConfig,
) *SessionService {
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
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SessionService{
		sessions:     sessions,
		blackouts:    blackouts,
		classes:      classes,
		participants: participants,
		players:      players,
		cache:        cache,
		validator:    validate,
		logger:       logger,
		closedDays:   weekdaySet(closedDays),
		closedMsg:    closedDayMessage(closedDays),
		cacheTTL:     ttl,
	}
}

// SessionRequest is the create/update payload for a session.
type SessionRequest struct {
	Name       string  `json:"name" validate:"required"`
	ClassID    string  `json:"class_id" validate:"required"`
	CoachID    *string `json:"coach_id"`
	LocationID *string `json:"location_id"`
	Date       string  `json:"date" validate:"required"`
	Time       *string `json:"time"`
	Court      *string `json:"court"`
	Notes      *string `json:"notes"`
}

// List returns all sessions with joined display names. An optional
// weekday label filters by the session date's weekday; empty or
// unrecognized labels keep every row. The unfiltered list is served from
// cache when available.
func (s *SessionService) List(ctx context.Context, day string) ([]models.SessionView, error) {
	if day == "" && s.cache != nil {
		var cached []models.SessionView
		if err := s.cache.Get(ctx, sessionListCacheKey, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheOperation(true)
			}
			return cached, nil
		} else if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("session list cache read failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordCacheOperation(false)
		}
	}

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	if day == "" {
		if s.cache != nil {
			if err := s.cache.Set(ctx, sessionListCacheKey, sessions, s.cacheTTL); err != nil {
				s.logger.Warn("session list cache write failed", zap.Error(err))
			}
		}
		return sessions, nil
	}

	filtered := make([]models.SessionView, 0, len(sessions))
	for _, session := range sessions {
		date, ok := dateutil.ParseDateOnly(session.Date)
		if !ok || dateutil.DayMatches(day, date.Weekday()) {
			filtered = append(filtered, session)
		}
	}
	return filtered, nil
}

// Create validates the payload against the closed-weekday rule and the
// blackout registry, resolves the effective location, and inserts an
// Active session.
func (s *SessionService) Create(ctx context.Context, req SessionRequest) (*models.Session, error) {
	session, err := s.validateAndResolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, nil, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}
	s.invalidateList(ctx)
	return session, nil
}

// Update applies the same validation as creation to the replacement
// values, then overwrites the row in place.
func (s *SessionService) Update(ctx context.Context, id int64, req SessionRequest) error {
	session, err := s.validateAndResolve(ctx, req)
	if err != nil {
		return err
	}
	session.ID = id
	if err := s.sessions.Update(ctx, session); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update session")
	}
	s.invalidateList(ctx)
	return nil
}

// Delete removes a session unconditionally.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete session")
	}
	s.invalidateList(ctx)
	return nil
}

// ListParticipants returns the roster attached to a session.
func (s *SessionService) ListParticipants(ctx context.Context, sessionID int64) ([]models.Participant, error) {
	participants, err := s.participants.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list participants")
	}
	return participants, nil
}

// ParticipantRequest adds a roster entry by player reference or by name.
type ParticipantRequest struct {
	PlayerID   *string `json:"player_id"`
	PlayerName string  `json:"player_name"`
}

// AddParticipant attaches a roster entry. Adding the same player twice is
// a silent no-op; name-only walk-ins may repeat.
func (s *SessionService) AddParticipant(ctx context.Context, sessionID int64, req ParticipantRequest) error {
	name := strings.TrimSpace(req.PlayerName)
	if name == "" && req.PlayerID != nil {
		player, err := s.players.FindByID(ctx, *req.PlayerID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up player")
		}
		if player != nil {
			name = player.Name
		}
	}
	if name == "" {
		return appErrors.Clone(appErrors.ErrValidation, "student name required")
	}

	if req.PlayerID != nil {
		exists, err := s.participants.ExistsByPlayer(ctx, sessionID, *req.PlayerID)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check roster")
		}
		if exists {
			return nil
		}
	}

	participant := &models.Participant{SessionID: sessionID, PlayerID: req.PlayerID, PlayerName: name}
	if err := s.participants.Create(ctx, participant); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add participant")
	}
	return nil
}

// RemoveParticipant drops a roster entry scoped to its session.
func (s *SessionService) RemoveParticipant(ctx context.Context, id, sessionID int64) error {
	if err := s.participants.Delete(ctx, id, sessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove participant")
	}
	return nil
}

func (s *SessionService) validateAndResolve(ctx context.Context, req SessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "session name, class, and date required")
	}

	date, ok := dateutil.ParseDateOnly(req.Date)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid session date")
	}
	if s.closedDays[date.Weekday()] {
		return nil, appErrors.Clone(appErrors.ErrValidation, s.closedMsg)
	}
	dateStr := dateutil.FormatDate(date)

	location, err := s.effectiveLocation(ctx, req.LocationID, req.ClassID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.blackouts.CountBlocking(ctx, dateStr, location)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check blackouts")
	}
	if blocked > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "sessions are blocked on this date")
	}

	return &models.Session{
		Name:       req.Name,
		ClassID:    req.ClassID,
		CoachID:    req.CoachID,
		LocationID: location,
		Date:       dateStr,
		Time:       req.Time,
		Court:      req.Court,
		Notes:      req.Notes,
		Status:     models.SessionStatusActive,
	}, nil
}

// effectiveLocation is the explicit location when given, else the class's
// home location. A dangling class reference resolves to no location.
func (s *SessionService) effectiveLocation(ctx context.Context, locationID *string, classID string) (*string, error) {
	if locationID != nil && *locationID != "" {
		return locationID, nil
	}
	class, err := s.classes.FindByID(ctx, nil, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve class location")
	}
	return class.LocationID, nil
}

func (s *SessionService) invalidateList(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, sessionListCacheKey)
	}
}

func weekdaySet(days []time.Weekday) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, day := range days {
		set[day] = true
	}
	return set
}

func closedDayMessage(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	switch len(names) {
	case 0:
		return "sessions are blocked on closed days"
	case 1:
		return fmt.Sprintf("sessions are blocked on %s", names[0])
	default:
		return fmt.Sprintf("sessions are blocked on %s and %s", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}
