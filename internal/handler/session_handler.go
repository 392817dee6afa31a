package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

type sessionManager interface {
	List(ctx context.Context, day string) ([]models.SessionView, error)
	Create(ctx context.Context, req service.SessionRequest) (*models.Session, error)
	Update(ctx context.Context, id int64, req service.SessionRequest) error
	Delete(ctx context.Context, id int64) error
	ListParticipants(ctx context.Context, sessionID int64) ([]models.Participant, error)
	AddParticipant(ctx context.Context, sessionID int64, req service.ParticipantRequest) error
	RemoveParticipant(ctx context.Context, id, sessionID int64) error
}

// SessionHandler exposes session scheduling endpoints.
type SessionHandler struct {
	sessions sessionManager
}

// NewSessionHandler constructs a session handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// List godoc
// @Summary List sessions
// @Tags Sessions
// @Produce json
// @Param day query string false "Filter by weekday label (e.g. mon)"
// @Success 200 {array} models.SessionView
// @Router /sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context(), c.Query("day"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions)
}

// Create godoc
// @Summary Create a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.SessionRequest true "Session payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req service.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid session payload"))
		return
	}
	session, err := h.sessions.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": session.ID})
}

// Update godoc
// @Summary Update a session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param payload body service.SessionRequest true "Session payload"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [put]
func (h *SessionHandler) Update(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid session payload"))
		return
	}
	if err := h.sessions.Update(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete a session
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// ListParticipants godoc
// @Summary List session roster
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Success 200 {array} models.Participant
// @Router /sessions/{id}/participants [get]
func (h *SessionHandler) ListParticipants(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	participants, err := h.sessions.ListParticipants(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, participants)
}

// AddParticipant godoc
// @Summary Add a roster entry
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param payload body service.ParticipantRequest true "Participant payload"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/participants [post]
func (h *SessionHandler) AddParticipant(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid participant payload"))
		return
	}
	if err := h.sessions.AddParticipant(c.Request.Context(), id, req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// RemoveParticipant godoc
// @Summary Remove a roster entry
// @Tags Sessions
// @Produce json
// @Param id path int true "Session ID"
// @Param participantId path int true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/participants/{participantId} [delete]
func (h *SessionHandler) RemoveParticipant(c *gin.Context) {
	sessionID, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	participantID, err := idParam(c, "participantId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.sessions.RemoveParticipant(c.Request.Context(), participantID, sessionID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
