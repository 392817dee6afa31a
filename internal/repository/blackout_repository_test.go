package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smashpoint/academy-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func strPtr(s string) *string { return &s }

func TestBlackoutRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlackoutRepository(db)

	rows := sqlmock.NewRows([]string{"id", "start_date", "end_date", "reason", "location_id", "created_at", "updated_at", "location_name"}).
		AddRow(2, "2024-06-10", "2024-06-12", "court resurfacing", "loc-1", time.Now(), time.Now(), "Main Hall").
		AddRow(1, "2024-06-01", "2024-06-01", nil, nil, time.Now(), time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sb.start_date DESC, sb.id DESC")).WillReturnRows(rows)

	windows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "2024-06-10", windows[0].StartDate)
	require.NotNil(t, windows[0].LocationName)
	assert.Equal(t, "Main Hall", *windows[0].LocationName)
	assert.Nil(t, windows[1].LocationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlackoutRepositoryCreateReturnsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlackoutRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO session_blackouts")).
		WithArgs("2024-06-05", "2024-06-05", strPtr("holiday"), nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	window := &models.Blackout{StartDate: "2024-06-05", EndDate: "2024-06-05", Reason: strPtr("holiday")}
	require.NoError(t, repo.Create(context.Background(), nil, window))
	assert.Equal(t, int64(7), window.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlackoutRepositoryCountBlocking(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlackoutRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("BETWEEN start_date AND end_date")).
		WithArgs("2024-06-05", strPtr("loc-1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountBlocking(context.Background(), "2024-06-05", strPtr("loc-1"))
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlackoutRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBlackoutRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_blackouts WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
