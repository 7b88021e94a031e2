package usecase_test

import (
	"context"
	"testing"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/nlp"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
	"smart-day-planner/internal/planner/usecase"
	"smart-day-planner/pkg/datemath"
	"smart-day-planner/pkg/gcalendar"
	pkgLog "smart-day-planner/pkg/log"
)

// mockRepository is an in-memory Repository with per-method error hooks.
type mockRepository struct {
	tasks     []model.Task
	schedules map[string]model.Schedule
	prefs     *model.Preferences
	counts    []repository.DateCount

	createTasksErr error
	listTasksErr   error
	saveSchedErr   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{schedules: make(map[string]model.Schedule)}
}

func (m *mockRepository) CreateTasks(_ context.Context, tasks []model.Task) error {
	if m.createTasksErr != nil {
		return m.createTasksErr
	}
	m.tasks = append(m.tasks, tasks...)
	return nil
}

func (m *mockRepository) ListTasks(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listTasksErr != nil {
		return nil, m.listTasksErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Date != "" && t.Date != opt.Date {
			continue
		}
		if opt.PendingOnly && t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) GetTask(_ context.Context, id string) (model.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (m *mockRepository) SetTaskCompleted(_ context.Context, id string, completed bool) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Completed = completed
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockRepository) SaveSchedule(_ context.Context, schedule model.Schedule) error {
	if m.saveSchedErr != nil {
		return m.saveSchedErr
	}
	m.schedules[schedule.Date] = schedule
	return nil
}

func (m *mockRepository) GetSchedule(_ context.Context, date string) (model.Schedule, error) {
	s, ok := m.schedules[date]
	if !ok {
		return model.Schedule{}, repository.ErrNotFound
	}
	return s, nil
}

func (m *mockRepository) GetPreferences(_ context.Context) (model.Preferences, bool, error) {
	if m.prefs == nil {
		return model.Preferences{}, false, nil
	}
	return *m.prefs, true, nil
}

func (m *mockRepository) SavePreferences(_ context.Context, prefs model.Preferences) error {
	m.prefs = &prefs
	return nil
}

func (m *mockRepository) CountByDateRange(_ context.Context, start, end string) ([]repository.DateCount, error) {
	var out []repository.DateCount
	for _, c := range m.counts {
		if c.Date >= start && c.Date <= end {
			out = append(out, c)
		}
	}
	return out, nil
}

// mockCalendar records created and deleted events; existing seeds ListEvents.
type mockCalendar struct {
	events   []gcalendar.CreateEventRequest
	existing []gcalendar.Event
	deleted  []string

	createErr error
	listErr   error
	deleteErr error
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary, HtmlLink: "https://calendar/evt-1"}, nil
}

func (m *mockCalendar) ListEvents(_ context.Context, _ string, _, _ time.Time) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.existing, nil
}

func (m *mockCalendar) DeleteEvent(_ context.Context, _ string, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	return nil
}

func newTestUC(t *testing.T, repo *mockRepository, cal usecase.CalendarClient) planner.UseCase {
	t.Helper()

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	parser := nlp.New(nlp.DefaultConfig(), dm)

	return usecase.New(pkgLog.NewNop(), repo, parser, dm, cal, usecase.Config{Timezone: "UTC"})
}
