package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyInput            = errors.New("input text is empty")
	ErrInvalidDate           = errors.New("date must be YYYY-MM-DD")
	ErrScheduleNotFound      = errors.New("no schedule stored for date")
	ErrTaskNotFound          = errors.New("task not found")
	ErrInvalidPreferences    = errors.New("invalid preferences")
	ErrCalendarNotConfigured = errors.New("calendar sync is not configured")
)
