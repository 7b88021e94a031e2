package sqlite

import (
	"context"
	"fmt"

	"smart-day-planner/internal/planner/repository"
)

// CountByDateRange aggregates task counts per date over [start, end].
func (r *Repository) CountByDateRange(ctx context.Context, start, end string) ([]repository.DateCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT date,
		       COUNT(*),
		       SUM(completed),
		       SUM(duration),
		       SUM(CASE WHEN completed = 1 THEN duration ELSE 0 END)
		FROM tasks
		WHERE date >= ? AND date <= ?
		GROUP BY date
		ORDER BY date`, start, end)
	if err != nil {
		return nil, fmt.Errorf("count by date range: %w", err)
	}
	defer rows.Close()

	var counts []repository.DateCount
	for rows.Next() {
		var c repository.DateCount
		if err := rows.Scan(&c.Date, &c.Total, &c.Completed, &c.TotalMinutes, &c.CompletedMinutes); err != nil {
			return nil, fmt.Errorf("scan date count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
