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

// CreateTasks inserts tasks in a single transaction.
func (r *Repository) CreateTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (id, name, duration, priority, deadline, preferred_time, completed, category, date, raw_input)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		deadline := sql.NullString{}
		if t.Deadline != nil {
			deadline = sql.NullString{String: t.Deadline.Format(time.RFC3339), Valid: true}
		}

		pref := ""
		if t.PreferredTime != nil {
			raw, mErr := json.Marshal(t.PreferredTime)
			if mErr != nil {
				return fmt.Errorf("marshal preference for %s: %w", t.ID, mErr)
			}
			pref = string(raw)
		}

		if _, err := stmt.ExecContext(ctx, t.ID, t.Name, t.Duration, t.Priority,
			deadline, pref, boolToInt(t.Completed), t.Category, t.Date, t.RawInput); err != nil {
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// ListTasks returns tasks matching the options, ordered by insertion.
func (r *Repository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	query := `SELECT id, name, duration, priority, deadline, preferred_time, completed, category, date, raw_input
	          FROM tasks WHERE 1=1`
	var args []any
	if opt.Date != "" {
		query += " AND date = ?"
		args = append(args, opt.Date)
	}
	if opt.PendingOnly {
		query += " AND completed = 0"
	}
	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask returns one task by ID.
func (r *Repository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, duration, priority, deadline, preferred_time, completed, category, date, raw_input
		FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

// SetTaskCompleted flips the completed flag.
func (r *Repository) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("set task completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		deadline  sql.NullString
		pref      string
		completed int
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Duration, &t.Priority, &deadline, &pref,
		&completed, &t.Category, &t.Date, &t.RawInput); err != nil {
		return model.Task{}, err
	}

	if deadline.Valid {
		parsed, err := time.Parse(time.RFC3339, deadline.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("parse deadline for %s: %w", t.ID, err)
		}
		t.Deadline = &parsed
	}
	if pref != "" {
		var p model.TimePreference
		if err := json.Unmarshal([]byte(pref), &p); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal preference for %s: %w", t.ID, err)
		}
		t.PreferredTime = &p
	}
	t.Completed = completed != 0

	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
