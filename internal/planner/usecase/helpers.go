package usecase

import (
	"time"

	"smart-day-planner/internal/planner"
)

const dateLayout = "2006-01-02"

// resolveDate validates a YYYY-MM-DD string and returns the canonical
// string plus midnight of that day in the configured timezone. Empty input
// means today.
func (uc *implUseCase) resolveDate(date string) (string, time.Time, error) {
	loc := uc.dm.Location()

	if date == "" {
		day := uc.dm.StartOfDay(time.Now().In(loc))
		return day.Format(dateLayout), day, nil
	}

	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return "", time.Time{}, planner.ErrInvalidDate
	}
	return date, day, nil
}
