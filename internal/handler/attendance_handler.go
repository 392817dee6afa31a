package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/models"
	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

// AttendanceHandler exposes attendance log endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs an attendance handler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary List the attendance log
// @Tags Attendance
// @Produce json
// @Success 200 {array} models.AttendanceEntry
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	entries, err := h.attendance.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}

// Record godoc
// @Summary Record an attendance batch
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body []models.AttendanceEntry true "Attendance rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /attendance [post]
func (h *AttendanceHandler) Record(c *gin.Context) {
	var entries []models.AttendanceEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}
	count, err := h.attendance.RecordBatch(c.Request.Context(), entries)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"count": count})
}
