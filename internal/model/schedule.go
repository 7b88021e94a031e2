package model

import "time"

// UnscheduledReason explains why a task was left out of the timeline.
type UnscheduledReason string

const (
	// ReasonOverflow: insufficient remaining work-day capacity.
	ReasonOverflow UnscheduledReason = "overflow"
	// ReasonDeadlinePassed: the deadline precedes the work-day start.
	ReasonDeadlinePassed UnscheduledReason = "deadline_passed"
)

// TimeSlot is a contiguous interval of the day holding either a task or a
// break, never both.
type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Task      *Task     `json:"task,omitempty"`
	IsBreak   bool      `json:"is_break"`
}

// UnscheduledTask is a task that could not be placed, with the reason.
type UnscheduledTask struct {
	Task   Task              `json:"task"`
	Reason UnscheduledReason `json:"reason"`
}

// Schedule is one day's ordered, non-overlapping timeline plus the tasks
// that did not fit. A new optimize call replaces the whole value.
type Schedule struct {
	Date        string            `json:"date"` // YYYY-MM-DD
	Slots       []TimeSlot        `json:"slots"`
	Unscheduled []UnscheduledTask `json:"unscheduled"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ScheduledCount returns the number of task (non-break) slots.
func (s Schedule) ScheduledCount() int {
	n := 0
	for _, slot := range s.Slots {
		if slot.Task != nil && !slot.IsBreak {
			n++
		}
	}
	return n
}
