package genetic

import (
	"time"

	"smart-day-planner/internal/model"
)

// Builder decodes a chromosome into a concrete day schedule. Build is pure
// and deterministic: identical arguments always yield identical output.
type Builder struct{}

// NewBuilder creates a schedule builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build materializes the ordering into time slots plus the list of tasks
// that could not be placed. Slots come out sorted by start time and
// non-overlapping by construction.
func (b *Builder) Build(chrom Chromosome, tasks []model.Task, prefs model.Preferences, day time.Time) model.Schedule {
	d := decode(chrom, tasks, prefs, day)

	schedule := model.Schedule{
		Date:  day.Format("2006-01-02"),
		Slots: make([]model.TimeSlot, 0, len(d.slots)),
	}

	for _, s := range d.slots {
		slot := model.TimeSlot{
			StartTime: s.start,
			EndTime:   s.end,
			IsBreak:   s.isBreak,
		}
		if s.taskIdx >= 0 {
			t := tasks[s.taskIdx]
			slot.Task = &t
		}
		schedule.Slots = append(schedule.Slots, slot)
	}

	for _, dt := range d.tasks {
		if dt.scheduled {
			continue
		}
		schedule.Unscheduled = append(schedule.Unscheduled, model.UnscheduledTask{
			Task:   tasks[dt.idx],
			Reason: dt.reason,
		})
	}

	return schedule
}
