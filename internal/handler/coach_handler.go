package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

// CoachHandler exposes coach endpoints.
type CoachHandler struct {
	coaches *service.CoachService
}

// NewCoachHandler constructs a coach handler.
func NewCoachHandler(coaches *service.CoachService) *CoachHandler {
	return &CoachHandler{coaches: coaches}
}

// List godoc
// @Summary List coaches
// @Tags Coaches
// @Produce json
// @Success 200 {array} models.Coach
// @Router /coaches [get]
func (h *CoachHandler) List(c *gin.Context) {
	coaches, err := h.coaches.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, coaches)
}

// Create godoc
// @Summary Create a coach
// @Tags Coaches
// @Accept json
// @Produce json
// @Param payload body service.CoachRequest true "Coach payload"
// @Success 200 {object} map[string]interface{}
// @Router /coaches [post]
func (h *CoachHandler) Create(c *gin.Context) {
	var req service.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid coach payload"))
		return
	}
	if err := h.coaches.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Update godoc
// @Summary Update a coach
// @Tags Coaches
// @Accept json
// @Produce json
// @Param id path string true "Coach ID"
// @Param payload body service.CoachRequest true "Coach payload"
// @Success 200 {object} map[string]interface{}
// @Router /coaches/{id} [put]
func (h *CoachHandler) Update(c *gin.Context) {
	var req service.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid coach payload"))
		return
	}
	if err := h.coaches.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete a coach
// @Tags Coaches
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} map[string]interface{}
// @Router /coaches/{id} [delete]
func (h *CoachHandler) Delete(c *gin.Context) {
	if err := h.coaches.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
