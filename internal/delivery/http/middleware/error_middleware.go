package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorHandler maps errors attached to the gin context onto the JSON
// error shape. Internal details are logged server-side only; clients get
// a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				c.JSON(appErr.Code, errorBody{Error: appErr.Message, Details: appErr.Details})
			} else {
				logger.Log.Error("Unhandled request error", "error", err, "path", c.FullPath())
				c.JSON(http.StatusInternalServerError, errorBody{Error: "An unexpected error occurred. Please try again later."})
			}
		}
	}
}
