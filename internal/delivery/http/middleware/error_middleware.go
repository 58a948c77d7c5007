package middleware

import (
	"errors"
	"net/http"

	"estate-site-backend/internal/delivery/http/response"
	"estate-site-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error pushed with c.Error as {"error": "..."}.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil && appErr.Code >= http.StatusInternalServerError {
				log.Error("request failed",
					zap.Int("status", appErr.Code),
					zap.Error(appErr.Err),
					zap.String("request_id", c.GetString(RequestIDKey)),
				)
			}
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never expose internal error details to clients.
		log.Error("internal server error", zap.Error(err), zap.String("request_id", c.GetString(RequestIDKey)))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
	}
}
