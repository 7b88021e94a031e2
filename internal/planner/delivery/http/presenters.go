package http

import (
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/pkg/response"
)

// --- Request DTOs ---

type parseTasksReq struct {
	Text string `json:"text" binding:"required"`
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r parseTasksReq) toInput() planner.ParseTasksInput {
	return planner.ParseTasksInput{
		RawText: r.Text,
		Date:    r.Date,
	}
}

// ---

type optimizeReq struct {
	Date           string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Seed           *int64 `json:"seed"`
	MaxGenerations int    `json:"max_generations" binding:"omitempty,min=1"`
}

func (r optimizeReq) toInput() planner.OptimizeInput {
	return planner.OptimizeInput{
		Date:           r.Date,
		Seed:           r.Seed,
		MaxGenerations: r.MaxGenerations,
	}
}

// ---

type rescheduleReq struct {
	FromDate       string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate         string `json:"to_date" binding:"omitempty,datetime=2006-01-02"`
	Text           string `json:"text"`
	Seed           *int64 `json:"seed"`
	MaxGenerations int    `json:"max_generations" binding:"omitempty,min=1"`
}

func (r rescheduleReq) toInput() planner.RescheduleInput {
	return planner.RescheduleInput{
		FromDate:       r.FromDate,
		ToDate:         r.ToDate,
		RawText:        r.Text,
		Seed:           r.Seed,
		MaxGenerations: r.MaxGenerations,
	}
}

// ---

type completeTaskReq struct {
	TaskID    string `json:"task_id" binding:"required"`
	Completed *bool  `json:"completed"`
}

func (r completeTaskReq) toInput() planner.CompleteTaskInput {
	completed := true
	if r.Completed != nil {
		completed = *r.Completed
	}
	return planner.CompleteTaskInput{
		TaskID:    r.TaskID,
		Completed: completed,
	}
}

// ---

type preferencesReq struct {
	WorkStartHour  int `json:"work_start_hour" binding:"min=0,max=23"`
	WorkEndHour    int `json:"work_end_hour" binding:"min=0,max=23"`
	LunchDuration  int `json:"lunch_duration" binding:"min=0"`
	BreakDuration  int `json:"break_duration" binding:"min=0"`
	PopulationSize int `json:"population_size" binding:"omitempty,min=2"`
	Generations    int `json:"generations" binding:"omitempty,min=1"`
}

func (r preferencesReq) toModel() model.Preferences {
	return model.Preferences{
		WorkStartHour:  r.WorkStartHour,
		WorkEndHour:    r.WorkEndHour,
		LunchDuration:  r.LunchDuration,
		BreakDuration:  r.BreakDuration,
		PopulationSize: r.PopulationSize,
		Generations:    r.Generations,
	}
}

// ---

type syncCalendarReq struct {
	Date       string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	CalendarID string `json:"calendar_id"`
}

func (r syncCalendarReq) toInput() planner.SyncCalendarInput {
	return planner.SyncCalendarInput{
		Date:       r.Date,
		CalendarID: r.CalendarID,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Duration      int                   `json:"duration"`
	Priority      int                   `json:"priority"`
	Deadline      *time.Time            `json:"deadline,omitempty"`
	PreferredTime *model.TimePreference `json:"preferred_time,omitempty"`
	Completed     bool                  `json:"completed"`
	Date          string                `json:"date"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Name:          t.Name,
		Duration:      t.Duration,
		Priority:      t.Priority,
		Deadline:      t.Deadline,
		PreferredTime: t.PreferredTime,
		Completed:     t.Completed,
		Date:          t.Date,
	}
}

type parseTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newParseTasksResp(out planner.ParseTasksOutput) parseTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return parseTasksResp{Tasks: tasks, Count: out.Count}
}

type slotResp struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Task      *taskResp `json:"task,omitempty"`
	IsBreak   bool      `json:"is_break"`
}

type unscheduledResp struct {
	Task   taskResp `json:"task"`
	Reason string   `json:"reason"`
}

type scheduleResp struct {
	Date        string            `json:"date"`
	Slots       []slotResp        `json:"slots"`
	Unscheduled []unscheduledResp `json:"unscheduled"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newScheduleResp(s model.Schedule) scheduleResp {
	slots := make([]slotResp, len(s.Slots))
	for i, slot := range s.Slots {
		sr := slotResp{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBreak:   slot.IsBreak,
		}
		if slot.Task != nil {
			tr := newTaskResp(*slot.Task)
			sr.Task = &tr
		}
		slots[i] = sr
	}

	unscheduled := make([]unscheduledResp, len(s.Unscheduled))
	for i, u := range s.Unscheduled {
		unscheduled[i] = unscheduledResp{
			Task:   newTaskResp(u.Task),
			Reason: string(u.Reason),
		}
	}

	return scheduleResp{
		Date:        s.Date,
		Slots:       slots,
		Unscheduled: unscheduled,
		CreatedAt:   response.DateTime(s.CreatedAt),
	}
}

type optimizeResp struct {
	Schedule       scheduleResp `json:"schedule"`
	ScheduledCount int          `json:"scheduled_count"`
	TotalCount     int          `json:"total_count"`
	BestScore      float64      `json:"best_score"`
}

func (h *handler) newOptimizeResp(out planner.OptimizeOutput) optimizeResp {
	return optimizeResp{
		Schedule:       newScheduleResp(out.Schedule),
		ScheduledCount: out.ScheduledCount,
		TotalCount:     out.TotalCount,
		BestScore:      out.BestScore,
	}
}

type preferencesResp struct {
	WorkStartHour  int `json:"work_start_hour"`
	WorkEndHour    int `json:"work_end_hour"`
	LunchDuration  int `json:"lunch_duration"`
	BreakDuration  int `json:"break_duration"`
	PopulationSize int `json:"population_size"`
	Generations    int `json:"generations"`
}

func newPreferencesResp(p model.Preferences) preferencesResp {
	return preferencesResp{
		WorkStartHour:  p.WorkStartHour,
		WorkEndHour:    p.WorkEndHour,
		LunchDuration:  p.LunchDuration,
		BreakDuration:  p.BreakDuration,
		PopulationSize: p.PopulationSize,
		Generations:    p.Generations,
	}
}

type syncCalendarResp struct {
	Events      []planner.SyncedEvent `json:"events"`
	SyncedCount int                   `json:"synced_count"`
}

func (h *handler) newSyncCalendarResp(out planner.SyncCalendarOutput) syncCalendarResp {
	events := out.Events
	if events == nil {
		events = []planner.SyncedEvent{}
	}
	return syncCalendarResp{Events: events, SyncedCount: out.SyncedCount}
}
