package genetic

import (
	"fmt"
	"time"

	"smart-day-planner/internal/model"
)

// decodedSlot is one interval of the provisional timeline.
type decodedSlot struct {
	start, end time.Time
	taskIdx    int // -1 for break/lunch slots
	isBreak    bool
	isLunch    bool
}

// decodedTask records where a gene's task landed, or why it did not.
type decodedTask struct {
	idx       int
	start     time.Time
	finish    time.Time
	scheduled bool
	reason    model.UnscheduledReason
}

// decoded is the result of walking one chromosome with the deterministic
// placement rule. Both the fitness evaluator and the schedule builder use
// this single decoder so ties always break the same way.
type decoded struct {
	slots     []decodedSlot
	tasks     []decodedTask // in chromosome order
	workStart time.Time
	workEnd   time.Time
}

// decode walks the ordering starting at work start: place each fitting
// task, insert a break after it, and insert the single lunch slot at the
// first point the current time crosses the day's midpoint. Tasks whose
// deadline precedes work start never consume timeline space; tasks that
// would run past work end are overflow. Panics if chrom is not a
// permutation, which is an implementation bug, not a runtime condition.
func decode(chrom Chromosome, tasks []model.Task, prefs model.Preferences, day time.Time) decoded {
	if !chrom.Valid(len(tasks)) {
		panic(fmt.Sprintf("genetic: chromosome %v is not a permutation of %d tasks", chrom, len(tasks)))
	}

	workStart := time.Date(day.Year(), day.Month(), day.Day(), prefs.WorkStartHour, 0, 0, 0, day.Location())
	workEnd := time.Date(day.Year(), day.Month(), day.Day(), prefs.WorkEndHour, 0, 0, 0, day.Location())
	midpoint := workStart.Add(workEnd.Sub(workStart) / 2)

	d := decoded{
		tasks:     make([]decodedTask, 0, len(chrom)),
		workStart: workStart,
		workEnd:   workEnd,
	}

	cur := workStart
	lunchInserted := false

	for _, idx := range chrom {
		t := tasks[idx]

		if t.Deadline != nil && t.Deadline.Before(workStart) {
			d.tasks = append(d.tasks, decodedTask{idx: idx, reason: model.ReasonDeadlinePassed})
			continue
		}

		if !lunchInserted && !cur.Before(midpoint) {
			lunchEnd := cur.Add(time.Duration(prefs.LunchDuration) * time.Minute)
			d.slots = append(d.slots, decodedSlot{start: cur, end: lunchEnd, taskIdx: -1, isBreak: true, isLunch: true})
			cur = lunchEnd
			lunchInserted = true
		}

		finish := cur.Add(time.Duration(t.Duration) * time.Minute)
		if finish.After(workEnd) {
			d.tasks = append(d.tasks, decodedTask{idx: idx, reason: model.ReasonOverflow})
			continue
		}

		d.slots = append(d.slots, decodedSlot{start: cur, end: finish, taskIdx: idx})
		d.tasks = append(d.tasks, decodedTask{idx: idx, start: cur, finish: finish, scheduled: true})
		cur = finish

		if prefs.BreakDuration > 0 {
			breakEnd := cur.Add(time.Duration(prefs.BreakDuration) * time.Minute)
			d.slots = append(d.slots, decodedSlot{start: cur, end: breakEnd, taskIdx: -1, isBreak: true})
			cur = breakEnd
		}
	}

	// No break after the final task. Lunch stays: it is day structure,
	// not an inter-task break.
	if n := len(d.slots); n > 0 && d.slots[n-1].isBreak && !d.slots[n-1].isLunch {
		d.slots = d.slots[:n-1]
	}

	return d
}

// idleMinutes sums gaps between consecutive slots. The decoder packs the
// day contiguously, so this is non-zero only for degenerate inputs; the
// fitness term stays general regardless.
func (d decoded) idleMinutes() float64 {
	idle := 0.0
	cur := d.workStart
	for _, s := range d.slots {
		if s.start.After(cur) {
			idle += s.start.Sub(cur).Minutes()
		}
		if s.end.After(cur) {
			cur = s.end
		}
	}
	return idle
}
