package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cabin-backend/errors"
	"cabin-backend/utils"
)

// respondError maps engine error codes onto HTTP statuses. Anything the
// engine did not classify is an infrastructure failure: the caller must
// treat the outcome as unknown, so it gets a 500, never a business status.
func respondError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.ErrCodePermissionDenied:
		status = http.StatusForbidden
	case apperrors.ErrCodeValidationFailed, apperrors.ErrCodeInvalidDateRange:
		status = http.StatusBadRequest
	case apperrors.ErrCodeCabinUnavailable:
		status = http.StatusConflict
	}
	utils.JSONAppError(c, status, appErr)
}
