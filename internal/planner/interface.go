package planner

import (
	"context"

	"smart-day-planner/internal/model"
)

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// ParseTasks turns free-text task descriptions into stored Task records.
	// Parsing never fails on ambiguous fragments; every fragment yields a task.
	ParseTasks(ctx context.Context, input ParseTasksInput) (ParseTasksOutput, error)

	// Optimize runs the genetic search over the date's pending tasks and
	// replaces the stored schedule for that date with the result.
	Optimize(ctx context.Context, input OptimizeInput) (OptimizeOutput, error)

	// Reschedule carries uncompleted tasks from one date to another with a
	// priority bump, then optimizes the target date.
	Reschedule(ctx context.Context, input RescheduleInput) (OptimizeOutput, error)

	// CompleteTask flips a task's completed flag and mirrors it into the
	// stored schedule for its date.
	CompleteTask(ctx context.Context, input CompleteTaskInput) error

	// GetSchedule returns the stored schedule for a date.
	GetSchedule(ctx context.Context, date string) (model.Schedule, error)

	// Preferences returns stored preferences, falling back to defaults.
	Preferences(ctx context.Context) (model.Preferences, error)

	// SavePreferences validates and stores preferences.
	SavePreferences(ctx context.Context, prefs model.Preferences) (model.Preferences, error)

	// DailyStats reports completion metrics for one date.
	DailyStats(ctx context.Context, date string) (DailyStats, error)

	// WeeklyStats reports completion metrics for the seven days ending at
	// endDate.
	WeeklyStats(ctx context.Context, endDate string) (WeeklyStats, error)

	// SyncCalendar pushes the stored schedule's task slots to the external
	// calendar.
	SyncCalendar(ctx context.Context, input SyncCalendarInput) (SyncCalendarOutput, error)
}
