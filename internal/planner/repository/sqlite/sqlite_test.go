package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/planner/repository/sqlite"
	pkgLog "smart-day-planner/pkg/log"
)

func newTestRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewMemory(pkgLog.NewNop())
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestTaskRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	deadline := time.Date(2024, 5, 1, 17, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			ID:       "t1",
			Name:     "write report",
			Duration: 120,
			Priority: 4,
			Deadline: &deadline,
			PreferredTime: &model.TimePreference{
				Band: model.BandMorning,
			},
			Category: "work",
			Date:     "2024-05-01",
			RawInput: "urgent write report for 2 hours by 5pm morning",
		},
		{
			ID:       "t2",
			Name:     "call bank",
			Duration: 30,
			Priority: 3,
			Date:     "2024-05-01",
		},
	}

	if err := repo.CreateTasks(ctx, tasks); err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}

	got, err := repo.GetTask(ctx, "t1")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Name != "write report" || got.Duration != 120 || got.Priority != 4 {
		t.Errorf("task = %+v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("deadline = %v, want %v", got.Deadline, deadline)
	}
	if got.PreferredTime == nil || got.PreferredTime.Band != model.BandMorning {
		t.Errorf("preference = %+v", got.PreferredTime)
	}

	got2, err := repo.GetTask(ctx, "t2")
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got2.Deadline != nil || got2.PreferredTime != nil {
		t.Errorf("optional fields should be nil, got %+v", got2)
	}

	_, err = repo.GetTask(ctx, "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListTasksFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tasks := []model.Task{
		{ID: "a", Name: "first", Duration: 30, Priority: 3, Date: "2024-05-01"},
		{ID: "b", Name: "second", Duration: 30, Priority: 3, Date: "2024-05-01", Completed: true},
		{ID: "c", Name: "elsewhere", Duration: 30, Priority: 3, Date: "2024-05-02"},
	}
	if err := repo.CreateTasks(ctx, tasks); err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}

	all, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}

	byDate, err := repo.ListTasks(ctx, repository.ListTasksOptions{Date: "2024-05-01"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(byDate) != 2 {
		t.Errorf("byDate = %d, want 2", len(byDate))
	}

	pending, err := repo.ListTasks(ctx, repository.ListTasksOptions{Date: "2024-05-01", PendingOnly: true})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != "a" {
		t.Errorf("pending = %+v, want only task a", pending)
	}

	// Insertion order is preserved.
	if all[0].ID != "a" || all[1].ID != "b" || all[2].ID != "c" {
		t.Errorf("order = %v %v %v", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestSetTaskCompleted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateTasks(ctx, []model.Task{{ID: "a", Name: "t", Duration: 30, Priority: 3, Date: "2024-05-01"}}); err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}

	if err := repo.SetTaskCompleted(ctx, "a", true); err != nil {
		t.Fatalf("SetTaskCompleted: %v", err)
	}
	got, _ := repo.GetTask(ctx, "a")
	if !got.Completed {
		t.Errorf("task not completed")
	}

	if err := repo.SetTaskCompleted(ctx, "a", false); err != nil {
		t.Fatalf("SetTaskCompleted: %v", err)
	}
	got, _ = repo.GetTask(ctx, "a")
	if got.Completed {
		t.Errorf("task still completed")
	}

	if err := repo.SetTaskCompleted(ctx, "missing", true); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	task := model.Task{ID: "a", Name: "write report", Duration: 60, Priority: 3, Date: "2024-05-01"}
	schedule := model.Schedule{
		Date: "2024-05-01",
		Slots: []model.TimeSlot{
			{
				StartTime: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
				Task:      &task,
			},
			{
				StartTime: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC),
				IsBreak:   true,
			},
		},
		Unscheduled: []model.UnscheduledTask{
			{Task: model.Task{ID: "b", Name: "marathon", Duration: 800}, Reason: model.ReasonOverflow},
		},
		CreatedAt: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC),
	}

	if err := repo.SaveSchedule(ctx, schedule); err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}

	got, err := repo.GetSchedule(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(got.Slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(got.Slots))
	}
	if got.Slots[0].Task == nil || got.Slots[0].Task.ID != "a" {
		t.Errorf("slot 0 task = %+v", got.Slots[0].Task)
	}
	if !got.Slots[1].IsBreak {
		t.Errorf("slot 1 should be a break")
	}
	if len(got.Unscheduled) != 1 || got.Unscheduled[0].Reason != model.ReasonOverflow {
		t.Errorf("unscheduled = %+v", got.Unscheduled)
	}
	if !got.CreatedAt.Equal(schedule.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, schedule.CreatedAt)
	}

	// Saving again replaces the stored value.
	schedule.Slots = schedule.Slots[:1]
	if err := repo.SaveSchedule(ctx, schedule); err != nil {
		t.Fatalf("SaveSchedule (replace): %v", err)
	}
	got, err = repo.GetSchedule(ctx, "2024-05-01")
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if len(got.Slots) != 1 {
		t.Errorf("slots after replace = %d, want 1", len(got.Slots))
	}

	_, err = repo.GetSchedule(ctx, "2024-06-01")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, found, err := repo.GetPreferences(ctx)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if found {
		t.Errorf("expected no preferences in a fresh database")
	}

	prefs := model.Preferences{WorkStartHour: 9, WorkEndHour: 18, LunchDuration: 45, BreakDuration: 10, PopulationSize: 80, Generations: 40}
	if err := repo.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}

	got, found, err := repo.GetPreferences(ctx)
	if err != nil {
		t.Fatalf("GetPreferences: %v", err)
	}
	if !found || got != prefs {
		t.Errorf("got %+v found=%v, want %+v", got, found, prefs)
	}

	// Upsert keeps a single row.
	prefs.WorkEndHour = 20
	if err := repo.SavePreferences(ctx, prefs); err != nil {
		t.Fatalf("SavePreferences (update): %v", err)
	}
	got, _, _ = repo.GetPreferences(ctx)
	if got.WorkEndHour != 20 {
		t.Errorf("WorkEndHour = %d, want 20", got.WorkEndHour)
	}
}

func TestCountByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tasks := []model.Task{
		{ID: "a", Name: "t", Duration: 60, Priority: 3, Date: "2024-05-01", Completed: true},
		{ID: "b", Name: "t", Duration: 30, Priority: 3, Date: "2024-05-01"},
		{ID: "c", Name: "t", Duration: 45, Priority: 3, Date: "2024-05-03", Completed: true},
		{ID: "d", Name: "t", Duration: 15, Priority: 3, Date: "2024-06-01"},
	}
	if err := repo.CreateTasks(ctx, tasks); err != nil {
		t.Fatalf("CreateTasks: %v", err)
	}

	counts, err := repo.CountByDateRange(ctx, "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("CountByDateRange: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts = %+v, want 2 dates", counts)
	}

	first := counts[0]
	if first.Date != "2024-05-01" || first.Total != 2 || first.Completed != 1 {
		t.Errorf("first = %+v", first)
	}
	if first.TotalMinutes != 90 || first.CompletedMinutes != 60 {
		t.Errorf("first minutes = %d/%d, want 90/60", first.CompletedMinutes, first.TotalMinutes)
	}

	second := counts[1]
	if second.Date != "2024-05-03" || second.Total != 1 || second.Completed != 1 {
		t.Errorf("second = %+v", second)
	}
}
