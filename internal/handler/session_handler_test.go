package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

type sessionManagerMock struct {
	views        []models.SessionView
	day          string
	created      service.SessionRequest
	updatedID    int64
	deletedID    int64
	participants []models.Participant
	addedTo      int64
	added        service.ParticipantRequest
	removed      [2]int64
	err          error
}

func (m *sessionManagerMock) List(ctx context.Context, day string) ([]models.SessionView, error) {
	m.day = day
	return m.views, m.err
}

func (m *sessionManagerMock) Create(ctx context.Context, req service.SessionRequest) (*models.Session, error) {
	m.created = req
	if m.err != nil {
		return nil, m.err
	}
	return &models.Session{ID: 21, Name: req.Name, Date: req.Date}, nil
}

func (m *sessionManagerMock) Update(ctx context.Context, id int64, req service.SessionRequest) error {
	m.updatedID = id
	return m.err
}

func (m *sessionManagerMock) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

func (m *sessionManagerMock) ListParticipants(ctx context.Context, sessionID int64) ([]models.Participant, error) {
	return m.participants, m.err
}

func (m *sessionManagerMock) AddParticipant(ctx context.Context, sessionID int64, req service.ParticipantRequest) error {
	m.addedTo = sessionID
	m.added = req
	return m.err
}

func (m *sessionManagerMock) RemoveParticipant(ctx context.Context, id, sessionID int64) error {
	m.removed = [2]int64{id, sessionID}
	return m.err
}

func TestSessionHandlerListPassesDayFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{views: []models.SessionView{{Session: models.Session{ID: 1, Date: "2024-06-03"}}}}
	handler := &SessionHandler{sessions: mockSvc}
	router := gin.New()
	router.GET("/sessions", handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/sessions?day=mon", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "mon", mockSvc.day)
	require.Contains(t, w.Body.String(), `"2024-06-03"`)
}

func TestSessionHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{}
	handler := &SessionHandler{sessions: mockSvc}

	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewReader([]byte(`{"name":"Evening Drill","class_id":"junior-a","date":"2024-06-03"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true,"id":21}`, w.Body.String())
	require.Equal(t, "Evening Drill", mockSvc.created.Name)
}

func TestSessionHandlerCreateClosedDay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{err: appErrors.Clone(appErrors.ErrValidation, "sessions are blocked on Thursday and Friday")}
	handler := &SessionHandler{sessions: mockSvc}

	req, _ := http.NewRequest(http.MethodPost, "/sessions", bytes.NewReader([]byte(`{"name":"Evening Drill","class_id":"junior-a","date":"2024-06-06"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"sessions are blocked on Thursday and Friday"}`, w.Body.String())
}

func TestSessionHandlerUpdateParsesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{}
	handler := &SessionHandler{sessions: mockSvc}
	router := gin.New()
	router.PUT("/sessions/:id", handler.Update)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/sessions/21", bytes.NewReader([]byte(`{"name":"Moved","class_id":"junior-a","date":"2024-06-04"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(21), mockSvc.updatedID)
}

func TestSessionHandlerAddParticipant(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{}
	handler := &SessionHandler{sessions: mockSvc}
	router := gin.New()
	router.POST("/sessions/:id/participants", handler.AddParticipant)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sessions/3/participants", bytes.NewReader([]byte(`{"player_name":"Guest"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, int64(3), mockSvc.addedTo)
	require.Equal(t, "Guest", mockSvc.added.PlayerName)
}

func TestSessionHandlerRemoveParticipantScopedToSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sessionManagerMock{}
	handler := &SessionHandler{sessions: mockSvc}
	router := gin.New()
	router.DELETE("/sessions/:id/participants/:participantId", handler.RemoveParticipant)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/sessions/3/participants/9", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, [2]int64{9, 3}, mockSvc.removed)
}
