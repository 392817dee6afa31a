package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/smashpoint/academy-api/pkg/errors"
)

// The admin frontend predates this server and expects flat response
// bodies: lists and objects as-is, mutations as {"ok":true}, failures as
// {"error":"message"}. Helpers here keep that contract while errors stay
// typed internally.

// JSON sends data verbatim with the given status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK sends {"ok":true} optionally merged with extra fields.
func OK(c *gin.Context, extra ...gin.H) {
	body := gin.H{"ok": true}
	if len(extra) > 0 {
		for k, v := range extra[0] {
			body[k] = v
		}
	}
	JSON(c, http.StatusOK, body)
}

// Error maps the error to its HTTP status and sends {"error":"message"}.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
