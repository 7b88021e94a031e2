package usecase

import (
	"context"
	"errors"
	"fmt"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
)

// GetSchedule returns the stored schedule for a date, serving recent
// results from the cache.
func (uc *implUseCase) GetSchedule(ctx context.Context, date string) (model.Schedule, error) {
	date, _, err := uc.resolveDate(date)
	if err != nil {
		return model.Schedule{}, err
	}

	if cached, ok := uc.cache.Get(date); ok {
		return cached, nil
	}

	schedule, err := uc.repo.GetSchedule(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Schedule{}, planner.ErrScheduleNotFound
	}
	if err != nil {
		return model.Schedule{}, fmt.Errorf("load schedule: %w", err)
	}

	uc.cache.Add(date, schedule)
	return schedule, nil
}
