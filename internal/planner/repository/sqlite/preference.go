package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"smart-day-planner/internal/model"
)

// GetPreferences returns stored preferences; found is false when none were
// ever saved.
func (r *Repository) GetPreferences(ctx context.Context) (model.Preferences, bool, error) {
	var p model.Preferences
	err := r.db.QueryRowContext(ctx, `
		SELECT work_start_hour, work_end_hour, lunch_duration, break_duration, population_size, generations
		FROM preferences WHERE id = 1`).
		Scan(&p.WorkStartHour, &p.WorkEndHour, &p.LunchDuration, &p.BreakDuration, &p.PopulationSize, &p.Generations)
	if err == sql.ErrNoRows {
		return model.Preferences{}, false, nil
	}
	if err != nil {
		return model.Preferences{}, false, fmt.Errorf("get preferences: %w", err)
	}
	return p, true, nil
}

// SavePreferences stores the single preferences row.
func (r *Repository) SavePreferences(ctx context.Context, p model.Preferences) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (id, work_start_hour, work_end_hour, lunch_duration, break_duration, population_size, generations)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			work_start_hour = excluded.work_start_hour,
			work_end_hour   = excluded.work_end_hour,
			lunch_duration  = excluded.lunch_duration,
			break_duration  = excluded.break_duration,
			population_size = excluded.population_size,
			generations     = excluded.generations`,
		p.WorkStartHour, p.WorkEndHour, p.LunchDuration, p.BreakDuration, p.PopulationSize, p.Generations)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
