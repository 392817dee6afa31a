package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Sessions godoc
// @Summary Download the schedule
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {string} string
// @Router /sessions/export [get]
func (h *ExportHandler) Sessions(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.exports.SessionsCSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", attachmentName("csv"))
		c.Data(http.StatusOK, "text/csv", data)
	case "pdf":
		data, err := h.exports.SessionsPDF(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", attachmentName("pdf"))
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func attachmentName(ext string) string {
	return fmt.Sprintf(`attachment; filename="schedule-%s.%s"`, time.Now().Format("2006-01-02"), ext)
}
