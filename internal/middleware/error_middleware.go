package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juko/registry/internal/app/models/dto"
	"github.com/juko/registry/internal/pkg/apperrors"
	"github.com/juko/registry/internal/pkg/logger"
)

// HandleAPIError maps application errors to the HTTP status and {message}
// body the UI expects. Callers pattern-match on status only, so the body
// carries nothing beyond the message string.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewMessageResponse("Student not found"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse(err.Error()))
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error().Err(err).Msg("Student store unavailable")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Could not connect to database"))
	default:
		logger.Error().Err(err).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewMessageResponse("Internal server error"))
	}
}
