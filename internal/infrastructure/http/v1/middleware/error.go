package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instock/internal/core/apperror"
	"instock/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// The wire shape is always {"message": string}; codes and details stay in
// the server logs. Hides internal errors from clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal cause if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, gin.H{"message": appErr.Message})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
			"request_id", c.GetString("request_id"),
		)

		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
