package planner

import "smart-day-planner/internal/model"

// ParseTasksInput is the input for natural-language task creation.
type ParseTasksInput struct {
	RawText string // free-text task descriptions
	Date    string // target day YYYY-MM-DD; empty means today
}

// ParseTasksOutput is the result of task parsing.
type ParseTasksOutput struct {
	Tasks []model.Task
	Count int
}

// OptimizeInput is the input for one schedule optimization run.
type OptimizeInput struct {
	Date string // YYYY-MM-DD; empty means today
	// Tasks, when non-empty, is optimized directly instead of the stored
	// pending tasks for the date.
	Tasks          []model.Task
	Seed           *int64 // explicit RNG seed for reproducible runs
	MaxGenerations int    // 0 means the configured default
}

// OptimizeOutput is the result of an optimization run. The caller always
// receives a complete, consistent schedule; infeasible tasks are reported
// in Schedule.Unscheduled, never raised as errors.
type OptimizeOutput struct {
	Schedule       model.Schedule
	ScheduledCount int
	TotalCount     int
	BestScore      float64
}

// RescheduleInput carries unfinished tasks from FromDate to ToDate.
type RescheduleInput struct {
	FromDate       string
	ToDate         string // empty means today
	RawText        string // optional extra tasks to parse for ToDate
	Seed           *int64
	MaxGenerations int
}

// CompleteTaskInput marks a task (un)completed.
type CompleteTaskInput struct {
	TaskID    string
	Completed bool
}

// DailyStats holds completion metrics for one date.
type DailyStats struct {
	Date             string  `json:"date"`
	TotalTasks       int     `json:"total_tasks"`
	CompletedTasks   int     `json:"completed_tasks"`
	CompletionRate   float64 `json:"completion_rate"` // 0-1
	TotalMinutes     int     `json:"total_minutes"`
	CompletedMinutes int     `json:"completed_minutes"`
}

// WeeklyStats aggregates seven consecutive days of metrics.
type WeeklyStats struct {
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	Days           []DailyStats `json:"days"`
	TotalTasks     int          `json:"total_tasks"`
	CompletedTasks int          `json:"completed_tasks"`
	CompletionRate float64      `json:"completion_rate"`
}

// SyncCalendarInput selects the schedule to push to the calendar.
type SyncCalendarInput struct {
	Date       string
	CalendarID string // empty means primary
}

// SyncedEvent is one calendar event created from a schedule slot.
type SyncedEvent struct {
	TaskID    string `json:"task_id"`
	TaskName  string `json:"task_name"`
	EventID   string `json:"event_id"`
	EventLink string `json:"event_link"`
}

// SyncCalendarOutput is the result of a calendar sync.
type SyncCalendarOutput struct {
	Events      []SyncedEvent
	SyncedCount int
}
