package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-day-planner/internal/planner"
)

// ParseTasks segments and parses raw text into stored Task records for the
// target date. Individual fragments never fail: ambiguity resolves to
// documented defaults, so every non-blank fragment yields a task.
func (uc *implUseCase) ParseTasks(ctx context.Context, input planner.ParseTasksInput) (planner.ParseTasksOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return planner.ParseTasksOutput{}, planner.ErrEmptyInput
	}

	date, day, err := uc.resolveDate(input.Date)
	if err != nil {
		return planner.ParseTasksOutput{}, err
	}

	uc.l.Infof(ctx, "ParseTasks: date=%s input_length=%d", date, len(input.RawText))

	tasks := uc.parser.ParseAll(input.RawText, day)
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
	}

	if err := uc.repo.CreateTasks(ctx, tasks); err != nil {
		return planner.ParseTasksOutput{}, fmt.Errorf("store parsed tasks: %w", err)
	}

	uc.l.Infof(ctx, "ParseTasks: created %d tasks for %s", len(tasks), date)

	return planner.ParseTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}
