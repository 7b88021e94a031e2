package genetic_test

import (
	"reflect"
	"testing"
	"time"

	"smart-day-planner/internal/genetic"
	"smart-day-planner/internal/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestBuildLayout(t *testing.T) {
	builder := genetic.NewBuilder()
	tasks := []model.Task{
		{ID: "1", Name: "write report", Duration: 60, Priority: 3},
		{ID: "2", Name: "review designs", Duration: 90, Priority: 4},
	}

	schedule := builder.Build(genetic.Chromosome{0, 1}, tasks, testPrefs(), testDay)

	if schedule.Date != "2024-05-01" {
		t.Errorf("date = %q, want 2024-05-01", schedule.Date)
	}
	if len(schedule.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %+v", len(schedule.Slots), schedule.Slots)
	}

	checks := []struct {
		start, end time.Time
		taskID     string
		isBreak    bool
	}{
		{at(8, 0), at(9, 0), "1", false},
		{at(9, 0), at(9, 15), "", true},
		{at(9, 15), at(10, 45), "2", false},
	}
	for i, c := range checks {
		slot := schedule.Slots[i]
		if !slot.StartTime.Equal(c.start) || !slot.EndTime.Equal(c.end) {
			t.Errorf("slot %d = %v-%v, want %v-%v", i, slot.StartTime, slot.EndTime, c.start, c.end)
		}
		if slot.IsBreak != c.isBreak {
			t.Errorf("slot %d IsBreak = %v, want %v", i, slot.IsBreak, c.isBreak)
		}
		if c.taskID == "" && slot.Task != nil {
			t.Errorf("slot %d: unexpected task %+v", i, slot.Task)
		}
		if c.taskID != "" && (slot.Task == nil || slot.Task.ID != c.taskID) {
			t.Errorf("slot %d task = %+v, want id %q", i, slot.Task, c.taskID)
		}
	}

	if len(schedule.Unscheduled) != 0 {
		t.Errorf("unexpected unscheduled tasks: %+v", schedule.Unscheduled)
	}
	if schedule.ScheduledCount() != 2 {
		t.Errorf("ScheduledCount = %d, want 2", schedule.ScheduledCount())
	}
}

func TestBuildLunchInsertion(t *testing.T) {
	builder := genetic.NewBuilder()
	tasks := []model.Task{
		{ID: "1", Duration: 120, Priority: 3},
		{ID: "2", Duration: 120, Priority: 3},
		{ID: "3", Duration: 120, Priority: 3},
		{ID: "4", Duration: 120, Priority: 3},
	}

	schedule := builder.Build(genetic.Chromosome{0, 1, 2, 3}, tasks, testPrefs(), testDay)

	// Timeline: task 08:00-10:00, break, task 10:15-12:15, break, task
	// 12:30-14:30, break, then lunch once past the 14:00 midpoint, then the
	// last task. Trailing break trimmed.
	if len(schedule.Slots) != 8 {
		t.Fatalf("expected 8 slots, got %d", len(schedule.Slots))
	}

	lunch := schedule.Slots[6]
	if !lunch.IsBreak || lunch.Task != nil {
		t.Fatalf("slot 6 should be the lunch break, got %+v", lunch)
	}
	if !lunch.StartTime.Equal(at(14, 45)) || !lunch.EndTime.Equal(at(15, 45)) {
		t.Errorf("lunch = %v-%v, want 14:45-15:45", lunch.StartTime, lunch.EndTime)
	}

	last := schedule.Slots[7]
	if last.Task == nil || last.Task.ID != "4" {
		t.Errorf("last slot task = %+v, want id 4", last.Task)
	}
	if !last.StartTime.Equal(at(15, 45)) || !last.EndTime.Equal(at(17, 45)) {
		t.Errorf("last slot = %v-%v, want 15:45-17:45", last.StartTime, last.EndTime)
	}

	lunches := 0
	for _, slot := range schedule.Slots {
		if slot.IsBreak && slot.EndTime.Sub(slot.StartTime) == 60*time.Minute {
			lunches++
		}
	}
	if lunches != 1 {
		t.Errorf("expected exactly one lunch slot, found %d", lunches)
	}
}

func TestBuildDeadlinePassed(t *testing.T) {
	builder := genetic.NewBuilder()
	yesterday := at(0, 0).AddDate(0, 0, -1)
	tasks := []model.Task{
		{ID: "1", Name: "expired", Duration: 30, Priority: 5, Deadline: &yesterday},
		{ID: "2", Name: "fresh", Duration: 30, Priority: 3},
	}

	schedule := builder.Build(genetic.Chromosome{0, 1}, tasks, testPrefs(), testDay)

	if schedule.ScheduledCount() != 1 {
		t.Fatalf("ScheduledCount = %d, want 1", schedule.ScheduledCount())
	}
	if len(schedule.Unscheduled) != 1 {
		t.Fatalf("expected 1 unscheduled task, got %d", len(schedule.Unscheduled))
	}
	u := schedule.Unscheduled[0]
	if u.Task.ID != "1" || u.Reason != model.ReasonDeadlinePassed {
		t.Errorf("unscheduled = %+v, want task 1 with deadline_passed", u)
	}

	// The expired task consumes no timeline space.
	if !schedule.Slots[0].StartTime.Equal(at(8, 0)) {
		t.Errorf("first slot starts %v, want 08:00", schedule.Slots[0].StartTime)
	}
}

func TestBuildOverflow(t *testing.T) {
	builder := genetic.NewBuilder()
	tasks := []model.Task{
		{ID: "1", Name: "marathon", Duration: 13 * 60, Priority: 2},
	}

	schedule := builder.Build(genetic.Chromosome{0}, tasks, testPrefs(), testDay)

	if len(schedule.Slots) != 0 {
		t.Errorf("expected no slots, got %+v", schedule.Slots)
	}
	if len(schedule.Unscheduled) != 1 || schedule.Unscheduled[0].Reason != model.ReasonOverflow {
		t.Fatalf("expected one overflow task, got %+v", schedule.Unscheduled)
	}
}

func TestBuildDeterministic(t *testing.T) {
	builder := genetic.NewBuilder()
	tasks := []model.Task{
		{ID: "1", Duration: 45, Priority: 2},
		{ID: "2", Duration: 60, Priority: 4},
		{ID: "3", Duration: 30, Priority: 1},
	}
	chrom := genetic.Chromosome{1, 2, 0}

	a := builder.Build(chrom, tasks, testPrefs(), testDay)
	b := builder.Build(chrom, tasks, testPrefs(), testDay)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Build is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestBuildInvalidChromosomePanics(t *testing.T) {
	builder := genetic.NewBuilder()
	tasks := []model.Task{{ID: "1", Duration: 30}, {ID: "2", Duration: 30}}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for non-permutation chromosome")
		}
	}()
	builder.Build(genetic.Chromosome{0, 0}, tasks, testPrefs(), testDay)
}
