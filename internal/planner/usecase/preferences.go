package usecase

import (
	"context"
	"fmt"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner"
)

// Preferences returns stored preferences, falling back to the documented
// defaults when none were saved yet.
func (uc *implUseCase) Preferences(ctx context.Context) (model.Preferences, error) {
	prefs, found, err := uc.repo.GetPreferences(ctx)
	if err != nil {
		return model.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	if !found {
		return model.DefaultPreferences(), nil
	}
	return prefs, nil
}

// SavePreferences validates and stores preferences. Zero-valued optimizer
// knobs are filled from the defaults before validation.
func (uc *implUseCase) SavePreferences(ctx context.Context, prefs model.Preferences) (model.Preferences, error) {
	def := model.DefaultPreferences()
	if prefs.PopulationSize == 0 {
		prefs.PopulationSize = def.PopulationSize
	}
	if prefs.Generations == 0 {
		prefs.Generations = def.Generations
	}

	if err := validatePreferences(prefs); err != nil {
		return model.Preferences{}, err
	}

	if err := uc.repo.SavePreferences(ctx, prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("save preferences: %w", err)
	}

	uc.l.Infof(ctx, "SavePreferences: work=%02d:00-%02d:00 lunch=%dm break=%dm",
		prefs.WorkStartHour, prefs.WorkEndHour, prefs.LunchDuration, prefs.BreakDuration)

	return prefs, nil
}

func validatePreferences(p model.Preferences) error {
	if p.WorkStartHour < 0 || p.WorkStartHour > 23 || p.WorkEndHour < 0 || p.WorkEndHour > 23 {
		return fmt.Errorf("%w: work hours must be 0-23", planner.ErrInvalidPreferences)
	}
	if p.WorkStartHour >= p.WorkEndHour {
		return fmt.Errorf("%w: work start must precede work end", planner.ErrInvalidPreferences)
	}
	if p.LunchDuration < 0 || p.BreakDuration < 0 {
		return fmt.Errorf("%w: break durations must not be negative", planner.ErrInvalidPreferences)
	}
	if window := (p.WorkEndHour - p.WorkStartHour) * 60; window < p.LunchDuration {
		return fmt.Errorf("%w: work window shorter than lunch", planner.ErrInvalidPreferences)
	}
	if p.PopulationSize < 2 {
		return fmt.Errorf("%w: population size must be at least 2", planner.ErrInvalidPreferences)
	}
	if p.Generations < 1 {
		return fmt.Errorf("%w: generations must be at least 1", planner.ErrInvalidPreferences)
	}
	return nil
}
