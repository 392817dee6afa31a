package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashpoint/academy-api/internal/models"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

func TestBlackoutServiceCreateCancelsCoveredSessions(t *testing.T) {
	blackouts := &blackoutStoreStub{}
	canceller := &cancellerStub{affected: 3}
	tx, mock := newServiceTxMock(t)
	cache := &cacheStub{}
	service := NewBlackoutService(blackouts, canceller, tx, cache, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	window, err := service.Create(context.Background(), BlackoutRequest{
		StartDate:  "2024-06-05",
		EndDate:    "2024-06-07",
		Reason:     strPtr("court resurfacing"),
		LocationID: strPtr("loc-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", window.StartDate)
	assert.Equal(t, "2024-06-07", window.EndDate)

	require.Len(t, canceller.calls, 1)
	call := canceller.calls[0]
	assert.Equal(t, "2024-06-05", call.start)
	assert.Equal(t, "2024-06-07", call.end)
	require.NotNil(t, call.location)
	assert.Equal(t, "loc-1", *call.location)
	assert.Equal(t, CancelledNoteMarker, call.marker)

	assert.Contains(t, cache.deleted, sessionListCacheKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlackoutServiceCreateGlobalWindowCancelsEverywhere(t *testing.T) {
	blackouts := &blackoutStoreStub{}
	canceller := &cancellerStub{}
	tx, mock := newServiceTxMock(t)
	service := NewBlackoutService(blackouts, canceller, tx, nil, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	window, err := service.Create(context.Background(), BlackoutRequest{
		StartDate:  "2024-06-05",
		EndDate:    "2024-06-05",
		LocationID: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, window.LocationID)
	require.Len(t, canceller.calls, 1)
	assert.Nil(t, canceller.calls[0].location)
}

func TestBlackoutServiceCreateNormalizesLegacyDates(t *testing.T) {
	blackouts := &blackoutStoreStub{}
	canceller := &cancellerStub{}
	tx, mock := newServiceTxMock(t)
	service := NewBlackoutService(blackouts, canceller, tx, nil, nil, nil)

	mock.ExpectBegin()
	mock.ExpectCommit()

	window, err := service.Create(context.Background(), BlackoutRequest{
		StartDate: "05-06-2024",
		EndDate:   "07/06/2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", window.StartDate)
	assert.Equal(t, "2024-06-07", window.EndDate)
}

func TestBlackoutServiceCreateRejectsInvertedRange(t *testing.T) {
	service := NewBlackoutService(&blackoutStoreStub{}, &cancellerStub{}, nil, nil, nil, nil)

	_, err := service.Create(context.Background(), BlackoutRequest{
		StartDate: "2024-06-07",
		EndDate:   "2024-06-05",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBlackoutServiceCreateRejectsMissingDates(t *testing.T) {
	service := NewBlackoutService(&blackoutStoreStub{}, &cancellerStub{}, nil, nil, nil, nil)

	_, err := service.Create(context.Background(), BlackoutRequest{StartDate: "2024-06-05"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestBlackoutServiceDeleteLeavesSessionsCancelled(t *testing.T) {
	blackouts := &blackoutStoreStub{}
	canceller := &cancellerStub{}
	service := NewBlackoutService(blackouts, canceller, nil, nil, nil, nil)

	require.NoError(t, service.Delete(context.Background(), 7))
	assert.Equal(t, []int64{7}, blackouts.deleted)
	assert.Empty(t, canceller.calls, "deleting a window must not touch sessions")
}

func TestBlackoutServiceIsBlocked(t *testing.T) {
	blackouts := &blackoutStoreStub{blocking: 2}
	service := NewBlackoutService(blackouts, &cancellerStub{}, nil, nil, nil, nil)

	blocked, err := service.IsBlocked(context.Background(), "2024-06-05", strPtr("loc-1"))
	require.NoError(t, err)
	assert.True(t, blocked)

	blackouts.blocking = 0
	blocked, err = service.IsBlocked(context.Background(), "2024-06-10", nil)
	require.NoError(t, err)
	assert.False(t, blocked)
}

// --- Fixtures ---

type blackoutStoreStub struct {
	windows  []models.BlackoutView
	deleted  []int64
	blocking int
	nextID   int64
}

func (s *blackoutStoreStub) List(ctx context.Context) ([]models.BlackoutView, error) {
	return s.windows, nil
}

func (s *blackoutStoreStub) Create(ctx context.Context, exec sqlx.ExtContext, window *models.Blackout) error {
	s.nextID++
	window.ID = s.nextID
	s.windows = append(s.windows, models.BlackoutView{Blackout: *window})
	return nil
}

func (s *blackoutStoreStub) Delete(ctx context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *blackoutStoreStub) CountBlocking(ctx context.Context, date string, locationID *string) (int, error) {
	return s.blocking, nil
}

type cancelCall struct {
	start    string
	end      string
	location *string
	marker   string
}

type cancellerStub struct {
	affected int64
	calls    []cancelCall
}

func (s *cancellerStub) CancelInRange(ctx context.Context, exec sqlx.ExtContext, startDate, endDate string, locationID *string, marker string) (int64, error) {
	s.calls = append(s.calls, cancelCall{start: startDate, end: endDate, location: locationID, marker: marker})
	return s.affected, nil
}
