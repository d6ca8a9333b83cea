package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/bahadricoz/Shopify-r-n-converter/server/errors"
	"github.com/bahadricoz/Shopify-r-n-converter/server/middleware"
)

// SendJSONResponse sends a JSON response through the Gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError sends a JSON error through the Gin context and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", middleware.GetRequestIDFromGin(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// HandleAppError writes an error response using the AppError status when
// available, 500 otherwise.
func HandleAppError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	SendJSONError(c, http.StatusInternalServerError, "internal server error")
}
