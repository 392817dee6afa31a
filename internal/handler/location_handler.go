package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

// LocationHandler exposes facility endpoints.
type LocationHandler struct {
	locations *service.LocationService
}

// NewLocationHandler constructs a location handler.
func NewLocationHandler(locations *service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// List godoc
// @Summary List facilities
// @Tags Locations
// @Produce json
// @Success 200 {array} models.Location
// @Router /locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, locations)
}

// Create godoc
// @Summary Create a facility
// @Tags Locations
// @Accept json
// @Produce json
// @Param payload body service.LocationRequest true "Location payload"
// @Success 200 {object} map[string]interface{}
// @Router /locations [post]
func (h *LocationHandler) Create(c *gin.Context) {
	var req service.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid location payload"))
		return
	}
	if err := h.locations.Create(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Update godoc
// @Summary Rename a facility
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param payload body object true "Name payload"
// @Success 200 {object} map[string]interface{}
// @Router /locations/{id} [put]
func (h *LocationHandler) Update(c *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid location payload"))
		return
	}
	if err := h.locations.Update(c.Request.Context(), c.Param("id"), payload.Name); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Delete godoc
// @Summary Delete a facility
// @Tags Locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} map[string]interface{}
// @Router /locations/{id} [delete]
func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}
