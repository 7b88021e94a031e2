package repository

import (
	"context"

	"smart-day-planner/internal/model"
)

// Repository is the persistence contract for the planner domain.
type Repository interface {
	// CreateTasks inserts tasks. IDs must already be assigned.
	CreateTasks(ctx context.Context, tasks []model.Task) error

	// ListTasks returns tasks matching the options, ordered by insertion.
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)

	// GetTask returns one task by ID, or ErrNotFound.
	GetTask(ctx context.Context, id string) (model.Task, error)

	// SetTaskCompleted flips the completed flag, or ErrNotFound.
	SetTaskCompleted(ctx context.Context, id string, completed bool) error

	// SaveSchedule stores a schedule, replacing any prior one for the date.
	SaveSchedule(ctx context.Context, schedule model.Schedule) error

	// GetSchedule returns the stored schedule for a date, or ErrNotFound.
	GetSchedule(ctx context.Context, date string) (model.Schedule, error)

	// GetPreferences returns stored preferences; found is false when none
	// were ever saved.
	GetPreferences(ctx context.Context) (prefs model.Preferences, found bool, err error)

	// SavePreferences stores the single preferences row.
	SavePreferences(ctx context.Context, prefs model.Preferences) error

	// CountByDateRange aggregates task counts per date over [start, end],
	// both inclusive YYYY-MM-DD.
	CountByDateRange(ctx context.Context, start, end string) ([]DateCount, error)
}
