package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
)

// Reschedule copies uncompleted tasks from FromDate to ToDate with their
// priority bumped by one, optionally parses extra raw text for ToDate, and
// optimizes the target date.
func (uc *implUseCase) Reschedule(ctx context.Context, input planner.RescheduleInput) (planner.OptimizeOutput, error) {
	fromDate, _, err := uc.resolveDate(input.FromDate)
	if err != nil {
		return planner.OptimizeOutput{}, err
	}
	toDate, toDay, err := uc.resolveDate(input.ToDate)
	if err != nil {
		return planner.OptimizeOutput{}, err
	}

	unfinished, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{Date: fromDate, PendingOnly: true})
	if err != nil {
		return planner.OptimizeOutput{}, fmt.Errorf("list unfinished tasks: %w", err)
	}

	carried := make([]model.Task, 0, len(unfinished))
	for _, t := range unfinished {
		t.ID = uuid.NewString()
		t.Date = toDate
		if t.Priority < model.PriorityMax {
			t.Priority++
		}
		carried = append(carried, t)
	}

	if err := uc.repo.CreateTasks(ctx, carried); err != nil {
		return planner.OptimizeOutput{}, fmt.Errorf("carry over tasks: %w", err)
	}

	if strings.TrimSpace(input.RawText) != "" {
		extra := uc.parser.ParseAll(input.RawText, toDay)
		for i := range extra {
			extra[i].ID = uuid.NewString()
		}
		if err := uc.repo.CreateTasks(ctx, extra); err != nil {
			return planner.OptimizeOutput{}, fmt.Errorf("store new tasks: %w", err)
		}
	}

	uc.l.Infof(ctx, "Reschedule: carried %d tasks from %s to %s", len(carried), fromDate, toDate)

	return uc.Optimize(ctx, planner.OptimizeInput{
		Date:           toDate,
		Seed:           input.Seed,
		MaxGenerations: input.MaxGenerations,
	})
}
