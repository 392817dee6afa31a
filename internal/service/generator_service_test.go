package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/repository"
	"github.com/smashpoint/academy-api/pkg/config"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

// 2024-06-03 is a Monday; the default closed weekdays are Thursday and
// Friday, so a Mon..Fri range has three open days.

func TestGeneratorServiceGenerateOpenDays(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Created)
	assert.Equal(t, 4, result.Skipped)
	assert.Len(t, fx.sessions.created, 6)
	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestGeneratorServiceGenerateSkipsBlackedOutDates(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{
		blackouts: []models.Blackout{{StartDate: "2024-06-05", EndDate: "2024-06-05"}},
	})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Created)
	assert.Equal(t, 6, result.Skipped)
	for _, session := range fx.sessions.created {
		assert.NotEqual(t, "2024-06-05", session.Date)
	}
	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestGeneratorServiceGenerateLocalBlackoutIgnoresOtherLocations(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{
		blackouts: []models.Blackout{{StartDate: "2024-06-03", EndDate: "2024-06-07", LocationID: strPtr("loc-2")}},
	})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate:  "2024-06-03",
		EndDate:    "2024-06-07",
		LocationID: strPtr("loc-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Created)
	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestGeneratorServiceGenerateClosedOnlyRangeCreatesNothing(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-06",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 4, result.Skipped)
	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestGeneratorServiceGenerateHonoursCustomCalendar(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{
		scheduling: &config.SchedulingConfig{
			ClosedWeekdays: []time.Weekday{time.Sunday},
			Slots:          []config.SlotConfig{{Name: "Morning Drill", Time: "07.00-08.30"}},
		},
	})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Created)
	assert.Equal(t, 0, result.Skipped)

	dates := make(map[string]bool)
	for _, session := range fx.sessions.created {
		dates[session.Date] = true
		assert.Equal(t, "Morning Drill", session.Name)
		require.NotNil(t, session.Time)
		assert.Equal(t, "07.00-08.30", *session.Time)
	}
	assert.True(t, dates["2024-06-06"], "Thursday is open under the custom calendar")
	assert.True(t, dates["2024-06-07"], "Friday is open under the custom calendar")
}

func TestGeneratorServiceGenerateIsIdempotent(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	first, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	require.Equal(t, 6, first.Created)

	fx.expectTx()
	second, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-07",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 10, second.Skipped)
	assert.Len(t, fx.sessions.created, 6)
	assert.NoError(t, fx.mock.ExpectationsWereMet())
}

func TestGeneratorServiceGenerateEnsuresSystemClass(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	_, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-03",
	})
	require.NoError(t, err)
	require.Contains(t, fx.classes.items, models.SystemClassID)
	assert.Equal(t, models.SystemClassName, fx.classes.items[models.SystemClassID].Name)
	for _, session := range fx.sessions.created {
		assert.Equal(t, models.SystemClassID, session.ClassID)
	}
}

func TestGeneratorServiceGenerateUsesRequestedClass(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{
		classes: map[string]*models.Class{"junior-a": {ID: "junior-a", Name: "Junior A"}},
	})
	fx.expectTx()

	_, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-03",
		ClassID:   strPtr("junior-a"),
	})
	require.NoError(t, err)
	assert.NotContains(t, fx.classes.items, models.SystemClassID)
	for _, session := range fx.sessions.created {
		assert.Equal(t, "junior-a", session.ClassID)
	}
}

func TestGeneratorServiceGenerateRejectsInvertedRange(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})

	_, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-07",
		EndDate:   "2024-06-03",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGeneratorServiceGenerateRejectsMissingDates(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})

	_, err := fx.service.Generate(context.Background(), GenerateRequest{StartDate: "2024-06-03"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGeneratorServiceGenerateAcceptsLegacyDateFormat(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	result, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "03-06-2024",
		EndDate:   "03/06/2024",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	for _, session := range fx.sessions.created {
		assert.Equal(t, "2024-06-03", session.Date)
	}
}

func TestGeneratorServiceGenerateInvalidatesListCache(t *testing.T) {
	fx := newGeneratorFixture(t, generatorFixtureConfig{})
	fx.expectTx()

	_, err := fx.service.Generate(context.Background(), GenerateRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-03",
	})
	require.NoError(t, err)
	assert.Contains(t, fx.cache.deleted, sessionListCacheKey)
}

// --- Fixtures ---

type generatorFixtureConfig struct {
	blackouts  []models.Blackout
	classes    map[string]*models.Class
	scheduling *config.SchedulingConfig
}

type generatorFixture struct {
	service  *GeneratorService
	sessions *sessionStoreStub
	classes  *classStoreStub
	cache    *cacheStub
	mock     sqlmock.Sqlmock
}

func (f *generatorFixture) expectTx() {
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
}

func newGeneratorFixture(t *testing.T, cfg generatorFixtureConfig) *generatorFixture {
	sessions := &sessionStoreStub{}
	classes := &classStoreStub{items: cfg.classes}
	if classes.items == nil {
		classes.items = make(map[string]*models.Class)
	}
	cache := &cacheStub{}
	tx, mock := newServiceTxMock(t)
	scheduling := config.SchedulingConfig{}
	if cfg.scheduling != nil {
		scheduling = *cfg.scheduling
	}

	service := NewGeneratorService(
		sessions,
		blackoutSnapshotStub{items: cfg.blackouts},
		classes,
		tx,
		cache,
		nil,
		nil,
		scheduling,
	)
	return &generatorFixture{service: service, sessions: sessions, classes: classes, cache: cache, mock: mock}
}

type sessionStoreStub struct {
	created []models.Session
	nextID  int64
}

func sessionSlotKey(date, timeSlot string, locationID *string) string {
	location := "<none>"
	if locationID != nil {
		location = *locationID
	}
	return fmt.Sprintf("%s|%s|%s", date, timeSlot, location)
}

func (s *sessionStoreStub) Create(ctx context.Context, exec sqlx.ExtContext, session *models.Session) error {
	s.nextID++
	session.ID = s.nextID
	s.created = append(s.created, *session)
	return nil
}

func (s *sessionStoreStub) ExistsAt(ctx context.Context, exec sqlx.ExtContext, date, timeSlot string, locationID *string) (bool, error) {
	key := sessionSlotKey(date, timeSlot, locationID)
	for _, session := range s.created {
		slotTime := ""
		if session.Time != nil {
			slotTime = *session.Time
		}
		if sessionSlotKey(session.Date, slotTime, session.LocationID) == key && session.Status != models.SessionStatusCancelled {
			return true, nil
		}
	}
	return false, nil
}

type blackoutSnapshotStub struct {
	items []models.Blackout
}

func (s blackoutSnapshotStub) Snapshot(ctx context.Context) ([]models.Blackout, error) {
	return s.items, nil
}

type classStoreStub struct {
	items map[string]*models.Class
}

func (s *classStoreStub) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*models.Class, error) {
	if class, ok := s.items[id]; ok {
		return class, nil
	}
	return nil, sql.ErrNoRows
}

func (s *classStoreStub) Create(ctx context.Context, exec sqlx.ExtContext, class *models.Class) error {
	s.items[class.ID] = class
	return nil
}

type cacheStub struct {
	entries map[string][]byte
	deleted []string
	sets    int
}

func (c *cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	return repository.ErrCacheMiss
}

func (c *cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.sets++
	return nil
}

func (c *cacheStub) Delete(ctx context.Context, keys ...string) {
	c.deleted = append(c.deleted, keys...)
}

type serviceTxMock struct {
	db *sqlx.DB
}

func newServiceTxMock(t *testing.T) (txProvider, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { db.Close() })
	return &serviceTxMock{db: sqlxdb}, mock
}

func (p *serviceTxMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return p.db.BeginTxx(ctx, opts)
}

func strPtr(s string) *string {
	return &s
}
