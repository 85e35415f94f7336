package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hashirsyed/portfolio-api/pkg/validation"
)

// Message sends the single-message body used by the contact endpoint
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// ValidationFailed sends the per-field error list for a rejected submission
func ValidationFailed(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}
