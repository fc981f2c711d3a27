package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/pkg/apperror"
	"github.com/Koushik2208/contentgen-pro/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// SECURITY: Never expose internal error details to clients.
				// Log the actual error server-side for debugging, but send a
				// generic message to the user to prevent information disclosure.
				logger.Log.Error("unhandled request error",
					"error", err,
					"path", c.FullPath(),
					"request_id", c.GetString(string(domain.KeyRequestID)),
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
