package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

// PlayerHandler exposes player endpoints.
type PlayerHandler struct {
	players *service.PlayerService
}

// NewPlayerHandler constructs a player handler.
func NewPlayerHandler(players *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{players: players}
}

// List godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.players.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, players)
}

// Create godoc
// @Summary Create a player
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body service.PlayerRequest true "Player payload"
// @Success 200 {object} map[string]interface{}
// @Router /players [post]
func (h *PlayerHandler) Create(c *gin.Context) {
	var req service.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid player payload"))
		return
	}
	if err := h.players.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Update godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param payload body service.PlayerRequest true "Player payload"
// @Success 200 {object} map[string]interface{}
// @Router /players/{id} [put]
func (h *PlayerHandler) Update(c *gin.Context) {
	var req service.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid player payload"))
		return
	}
	if err := h.players.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete a player
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /players/{id} [delete]
func (h *PlayerHandler) Delete(c *gin.Context) {
	if err := h.players.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
