package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/planner"
	"smart-day-planner/pkg/response"
)

// mapError translates domain errors into HTTP responses. Unknown errors
// become a 500 without leaking details to the client.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrEmptyInput),
		errors.Is(err, planner.ErrInvalidDate),
		errors.Is(err, planner.ErrInvalidPreferences),
		errors.Is(err, planner.ErrCalendarNotConfigured):
		response.Error(c, err)
	case errors.Is(err, planner.ErrScheduleNotFound),
		errors.Is(err, planner.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
