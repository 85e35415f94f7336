package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hashirsyed/portfolio-api/internal/delivery/http/response"
	"github.com/hashirsyed/portfolio-api/pkg/apperror"
	"github.com/hashirsyed/portfolio-api/pkg/logger"
)

// ErrorHandler is the last-resort backstop: any error appended to the
// context becomes an HTTP response here, and internal detail stays in the
// server log only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqID, _ := c.Get("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			logger.Log.Error("request failed",
				"request_id", reqID,
				"status", appErr.Code,
				"error", err,
			)
			response.Message(c, appErr.Code, appErr.Message)
			return
		}

		// SECURITY: never expose internal error details to clients
		logger.Log.Error("unhandled error", "request_id", reqID, "error", err)
		response.Message(c, http.StatusInternalServerError, "Something went wrong!")
	}
}
