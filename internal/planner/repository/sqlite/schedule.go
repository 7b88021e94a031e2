package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"smart-day-planner/internal/model"
	"smart-day-planner/internal/planner/repository"
)

// SaveSchedule stores a schedule, replacing any prior one for the date.
func (r *Repository) SaveSchedule(ctx context.Context, schedule model.Schedule) error {
	slots, err := json.Marshal(schedule.Slots)
	if err != nil {
		return fmt.Errorf("marshal slots: %w", err)
	}
	unscheduled, err := json.Marshal(schedule.Unscheduled)
	if err != nil {
		return fmt.Errorf("marshal unscheduled: %w", err)
	}

	createdAt := schedule.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO schedules (date, slots, unscheduled, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			slots = excluded.slots,
			unscheduled = excluded.unscheduled,
			created_at = excluded.created_at`,
		schedule.Date, string(slots), string(unscheduled), createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save schedule %s: %w", schedule.Date, err)
	}
	return nil
}

// GetSchedule returns the stored schedule for a date.
func (r *Repository) GetSchedule(ctx context.Context, date string) (model.Schedule, error) {
	var (
		slots, unscheduled, createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT slots, unscheduled, created_at FROM schedules WHERE date = ?`, date).
		Scan(&slots, &unscheduled, &createdAt)
	if err == sql.ErrNoRows {
		return model.Schedule{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Schedule{}, fmt.Errorf("get schedule %s: %w", date, err)
	}

	schedule := model.Schedule{Date: date}
	if err := json.Unmarshal([]byte(slots), &schedule.Slots); err != nil {
		return model.Schedule{}, fmt.Errorf("unmarshal slots for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(unscheduled), &schedule.Unscheduled); err != nil {
		return model.Schedule{}, fmt.Errorf("unmarshal unscheduled for %s: %w", date, err)
	}
	schedule.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return schedule, nil
}
