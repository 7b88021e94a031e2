package model

import "time"

// Priority bounds for a task. 5 is the highest.
const (
	PriorityMin     = 1
	PriorityLow     = 2
	PriorityDefault = 3
	PriorityHigh    = 4
	PriorityMax     = 5
)

// TimeBand is a vague time-of-day preference.
type TimeBand string

const (
	BandMorning   TimeBand = "morning"
	BandAfternoon TimeBand = "afternoon"
	BandEvening   TimeBand = "evening"
)

// TimePreference is a soft scheduling preference attached to a task: either
// a vague band or an explicit clock time, never both.
type TimePreference struct {
	Band TimeBand `json:"band,omitempty"`
	// ClockHour/ClockMinute hold an explicit time like "at 3pm".
	// Valid only when HasClock is true.
	HasClock    bool `json:"has_clock,omitempty"`
	ClockHour   int  `json:"clock_hour,omitempty"`
	ClockMinute int  `json:"clock_minute,omitempty"`
}

// Task is a single unit of schedulable work.
type Task struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Duration      int             `json:"duration"` // minutes, always > 0
	Priority      int             `json:"priority"` // 1-5, 5 highest
	Deadline      *time.Time      `json:"deadline,omitempty"`
	PreferredTime *TimePreference `json:"preferred_time,omitempty"`
	Completed     bool            `json:"completed"`
	Category      string          `json:"category,omitempty"`
	Date          string          `json:"date"` // target day, YYYY-MM-DD
	RawInput      string          `json:"raw_input,omitempty"`
}

// Preferences holds the fixed work-day constraints and optimizer knobs.
type Preferences struct {
	WorkStartHour  int `json:"work_start_hour"`
	WorkEndHour    int `json:"work_end_hour"`
	LunchDuration  int `json:"lunch_duration"` // minutes
	BreakDuration  int `json:"break_duration"` // minutes
	PopulationSize int `json:"population_size"`
	Generations    int `json:"generations"`
}

// DefaultPreferences mirrors the documented option defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		WorkStartHour:  8,
		WorkEndHour:    20,
		LunchDuration:  60,
		BreakDuration:  15,
		PopulationSize: 100,
		Generations:    50,
	}
}
