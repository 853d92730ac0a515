package utils

import (
	"github.com/gin-gonic/gin"

	apperrors "cabin-backend/errors"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONAppError writes a structured engine error: code, message, and the
// offending field or conflicting bookings when present.
func JSONAppError(c *gin.Context, httpStatus int, appErr *apperrors.AppError) {
	body := gin.H{
		"success": false,
		"code":    appErr.Code,
		"error":   appErr.Message,
	}
	if appErr.Field != "" {
		body["field"] = appErr.Field
	}
	if len(appErr.Conflicts) > 0 {
		body["conflicts"] = appErr.Conflicts
	}
	c.JSON(httpStatus, body)
}
