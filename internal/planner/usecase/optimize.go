package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"smart-day-planner/internal/genetic"
	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
)

// Optimize runs the genetic search over the date's pending tasks and
// replaces the stored schedule for that date. Zero pending tasks is not an
// error: the result is an empty schedule.
func (uc *implUseCase) Optimize(ctx context.Context, input planner.OptimizeInput) (planner.OptimizeOutput, error) {
	date, day, err := uc.resolveDate(input.Date)
	if err != nil {
		return planner.OptimizeOutput{}, err
	}

	prefs, err := uc.Preferences(ctx)
	if err != nil {
		return planner.OptimizeOutput{}, err
	}

	tasks := input.Tasks
	if len(tasks) == 0 {
		tasks, err = uc.repo.ListTasks(ctx, repository.ListTasksOptions{Date: date, PendingOnly: true})
		if err != nil {
			return planner.OptimizeOutput{}, fmt.Errorf("list pending tasks: %w", err)
		}
	}
	tasks = dropCompleted(tasks)

	if len(tasks) == 0 {
		schedule := model.Schedule{Date: date, CreatedAt: time.Now().UTC()}
		if err := uc.repo.SaveSchedule(ctx, schedule); err != nil {
			return planner.OptimizeOutput{}, fmt.Errorf("save empty schedule: %w", err)
		}
		uc.cache.Add(date, schedule)
		return planner.OptimizeOutput{Schedule: schedule}, nil
	}

	cfg := uc.geneticConfig(prefs, input.MaxGenerations)

	seed := time.Now().UnixNano()
	if input.Seed != nil {
		seed = *input.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	uc.l.Infof(ctx, "Optimize: date=%s tasks=%d population=%d generations=%d seed=%d",
		date, len(tasks), cfg.PopulationSize, cfg.Generations, seed)

	optimizer := genetic.NewOptimizer(cfg, uc.cfg.Weights)
	best, score := optimizer.Run(ctx, tasks, day, prefs, rng)

	schedule := uc.builder.Build(best, tasks, prefs, day)
	schedule.CreatedAt = time.Now().UTC()

	if err := uc.repo.SaveSchedule(ctx, schedule); err != nil {
		return planner.OptimizeOutput{}, fmt.Errorf("save schedule: %w", err)
	}
	uc.cache.Add(date, schedule)

	out := planner.OptimizeOutput{
		Schedule:       schedule,
		ScheduledCount: schedule.ScheduledCount(),
		TotalCount:     len(tasks),
		BestScore:      score,
	}

	uc.l.Infof(ctx, "Optimize: date=%s scheduled=%d/%d score=%.1f",
		date, out.ScheduledCount, out.TotalCount, score)

	return out, nil
}

// geneticConfig merges stored preferences and per-call overrides onto the
// configured GA defaults.
func (uc *implUseCase) geneticConfig(prefs model.Preferences, maxGenerations int) genetic.Config {
	cfg := uc.cfg.Genetic
	if prefs.PopulationSize > 0 {
		cfg.PopulationSize = prefs.PopulationSize
	}
	if prefs.Generations > 0 {
		cfg.Generations = prefs.Generations
	}
	if maxGenerations > 0 && maxGenerations < cfg.Generations {
		cfg.Generations = maxGenerations
	}
	return cfg
}

// dropCompleted enforces the invariant that completed tasks never enter
// optimization, regardless of what the caller passes.
func dropCompleted(tasks []model.Task) []model.Task {
	kept := tasks[:0:0]
	for _, t := range tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	return kept
}
