package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/service"
	"github.com/smashpoint/academy-api/pkg/dateutil"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

type blackoutManager interface {
	List(ctx context.Context) ([]models.BlackoutView, error)
	Create(ctx context.Context, req service.BlackoutRequest) (*models.Blackout, error)
	Delete(ctx context.Context, id int64) error
	IsBlocked(ctx context.Context, date string, locationID *string) (bool, error)
}

// BlackoutHandler exposes blackout window endpoints.
type BlackoutHandler struct {
	blackouts blackoutManager
}

// NewBlackoutHandler constructs a blackout handler.
func NewBlackoutHandler(blackouts *service.BlackoutService) *BlackoutHandler {
	return &BlackoutHandler{blackouts: blackouts}
}

// List godoc
// @Summary List blackout windows
// @Tags Blackouts
// @Produce json
// @Success 200 {array} models.BlackoutView
// @Router /session-blackouts [get]
func (h *BlackoutHandler) List(c *gin.Context) {
	windows, err := h.blackouts.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, windows)
}

// Create godoc
// @Summary Declare a blackout window
// @Description Persists the window and cancels every covered session
// @Tags Blackouts
// @Accept json
// @Produce json
// @Param payload body service.BlackoutRequest true "Blackout payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /session-blackouts [post]
func (h *BlackoutHandler) Create(c *gin.Context) {
	var req service.BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid blackout payload"))
		return
	}
	window, err := h.blackouts.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": window.ID})
}

// Delete godoc
// @Summary Delete a blackout window
// @Description Removes the window; sessions cancelled by it stay cancelled
// @Tags Blackouts
// @Produce json
// @Param id path int true "Blackout ID"
// @Success 200 {object} map[string]interface{}
// @Router /session-blackouts/{id} [delete]
func (h *BlackoutHandler) Delete(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.blackouts.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Check godoc
// @Summary Check whether a date is blocked
// @Tags Blackouts
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param location_id query string false "Facility ID"
// @Success 200 {object} map[string]interface{}
// @Router /session-blackouts/check [get]
func (h *BlackoutHandler) Check(c *gin.Context) {
	parsed, ok := dateutil.ParseDateOnly(c.Query("date"))
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "valid date required"))
		return
	}
	date := dateutil.FormatDate(parsed)
	var location *string
	if v := c.Query("location_id"); v != "" {
		location = &v
	}
	blocked, err := h.blackouts.IsBlocked(c.Request.Context(), date, location)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"blocked": blocked})
}
