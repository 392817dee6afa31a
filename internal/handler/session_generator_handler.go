package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smashpoint/academy-api/internal/service"
	appErrors "github.com/smashpoint/academy-api/pkg/errors"
	"github.com/smashpoint/academy-api/pkg/response"
)

type sessionGenerator interface {
	Generate(ctx context.Context, req service.GenerateRequest) (*service.GenerateResult, error)
}

// SessionGeneratorHandler exposes bulk session generation.
type SessionGeneratorHandler struct {
	generator sessionGenerator
}

// NewSessionGeneratorHandler constructs a generator handler.
func NewSessionGeneratorHandler(generator *service.GeneratorService) *SessionGeneratorHandler {
	return &SessionGeneratorHandler{generator: generator}
}

// Generate godoc
// @Summary Generate sessions over a date range
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body service.GenerateRequest true "Generation payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /sessions/generate [post]
func (h *SessionGeneratorHandler) Generate(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}
	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"created": result.Created, "skipped": result.Skipped})
}
