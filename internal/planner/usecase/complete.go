package usecase

import (
	"context"
	"errors"
	"fmt"

	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
)

// CompleteTask flips a task's completed flag and mirrors the change into
// the stored schedule for its date, if one exists.
func (uc *implUseCase) CompleteTask(ctx context.Context, input planner.CompleteTaskInput) error {
	if err := uc.repo.SetTaskCompleted(ctx, input.TaskID, input.Completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return planner.ErrTaskNotFound
		}
		return fmt.Errorf("set task completed: %w", err)
	}

	task, err := uc.repo.GetTask(ctx, input.TaskID)
	if err != nil {
		return fmt.Errorf("reload task: %w", err)
	}

	schedule, err := uc.repo.GetSchedule(ctx, task.Date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil // nothing scheduled yet, task row is enough
	}
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	for i := range schedule.Slots {
		if t := schedule.Slots[i].Task; t != nil && t.ID == input.TaskID {
			t.Completed = input.Completed
		}
	}

	if err := uc.repo.SaveSchedule(ctx, schedule); err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	uc.cache.Add(task.Date, schedule)

	uc.l.Infof(ctx, "CompleteTask: id=%s completed=%v", input.TaskID, input.Completed)
	return nil
}
