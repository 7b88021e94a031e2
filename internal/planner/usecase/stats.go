package usecase

import (
	"context"
	"fmt"

	"smart-day-planner/internal/planner"
	"smart-day-planner/internal/planner/repository"
)

// DailyStats reports completion metrics for one date.
func (uc *implUseCase) DailyStats(ctx context.Context, date string) (planner.DailyStats, error) {
	date, _, err := uc.resolveDate(date)
	if err != nil {
		return planner.DailyStats{}, err
	}

	counts, err := uc.repo.CountByDateRange(ctx, date, date)
	if err != nil {
		return planner.DailyStats{}, fmt.Errorf("count tasks: %w", err)
	}

	stats := planner.DailyStats{Date: date}
	if len(counts) > 0 {
		stats = dayStats(counts[0])
	}
	return stats, nil
}

// WeeklyStats reports metrics for the seven days ending at endDate. Days
// with no tasks appear with zero counts so the week is always complete.
func (uc *implUseCase) WeeklyStats(ctx context.Context, endDate string) (planner.WeeklyStats, error) {
	endDate, endDay, err := uc.resolveDate(endDate)
	if err != nil {
		return planner.WeeklyStats{}, err
	}

	startDay := endDay.AddDate(0, 0, -6)
	startDate := startDay.Format(dateLayout)

	counts, err := uc.repo.CountByDateRange(ctx, startDate, endDate)
	if err != nil {
		return planner.WeeklyStats{}, fmt.Errorf("count tasks: %w", err)
	}

	byDate := make(map[string]planner.DailyStats, len(counts))
	for _, c := range counts {
		byDate[c.Date] = dayStats(c)
	}

	week := planner.WeeklyStats{StartDate: startDate, EndDate: endDate}
	for i := 0; i < 7; i++ {
		date := startDay.AddDate(0, 0, i).Format(dateLayout)
		day, ok := byDate[date]
		if !ok {
			day = planner.DailyStats{Date: date}
		}
		week.Days = append(week.Days, day)
		week.TotalTasks += day.TotalTasks
		week.CompletedTasks += day.CompletedTasks
	}
	if week.TotalTasks > 0 {
		week.CompletionRate = float64(week.CompletedTasks) / float64(week.TotalTasks)
	}

	return week, nil
}

func dayStats(c repository.DateCount) planner.DailyStats {
	stats := planner.DailyStats{
		Date:             c.Date,
		TotalTasks:       c.Total,
		CompletedTasks:   c.Completed,
		TotalMinutes:     c.TotalMinutes,
		CompletedMinutes: c.CompletedMinutes,
	}
	if c.Total > 0 {
		stats.CompletionRate = float64(c.Completed) / float64(c.Total)
	}
	return stats
}
