package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-day-planner/internal/planner"
	"smart-day-planner/pkg/gcalendar"
)

// calendarTag marks events this service created, so a re-sync can tell its
// own stale events apart from anything else on the calendar.
const calendarTag = "planned by smart-day-planner"

// SyncCalendar pushes the stored schedule's task slots to the external
// calendar. Individual event failures are logged and skipped so one bad
// slot does not abort the whole sync.
func (uc *implUseCase) SyncCalendar(ctx context.Context, input planner.SyncCalendarInput) (planner.SyncCalendarOutput, error) {
	if uc.calendar == nil {
		return planner.SyncCalendarOutput{}, planner.ErrCalendarNotConfigured
	}

	schedule, err := uc.GetSchedule(ctx, input.Date)
	if err != nil {
		return planner.SyncCalendarOutput{}, err
	}

	uc.clearSyncedEvents(ctx, input.CalendarID, schedule.Date)

	var out planner.SyncCalendarOutput
	for _, slot := range schedule.Slots {
		if slot.Task == nil || slot.IsBreak {
			continue
		}

		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  input.CalendarID,
			Summary:     slot.Task.Name,
			Description: fmt.Sprintf("Priority %d, %s", slot.Task.Priority, calendarTag),
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			Timezone:    uc.cfg.Timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "SyncCalendar: event for task %s failed (skipped): %v", slot.Task.ID, err)
			continue
		}

		out.Events = append(out.Events, planner.SyncedEvent{
			TaskID:    slot.Task.ID,
			TaskName:  slot.Task.Name,
			EventID:   event.ID,
			EventLink: event.HtmlLink,
		})
	}
	out.SyncedCount = len(out.Events)

	uc.l.Infof(ctx, "SyncCalendar: date=%s synced=%d", schedule.Date, out.SyncedCount)
	return out, nil
}

// clearSyncedEvents deletes tagged events from an earlier sync of the date
// so re-syncing a rebuilt schedule does not duplicate entries. Events
// without the tag are left alone. Cleanup failures only warn; the sync
// itself still runs.
func (uc *implUseCase) clearSyncedEvents(ctx context.Context, calendarID, date string) {
	day, err := time.ParseInLocation(dateLayout, date, uc.dm.Location())
	if err != nil {
		return
	}

	existing, err := uc.calendar.ListEvents(ctx, calendarID, day, day.AddDate(0, 0, 1))
	if err != nil {
		uc.l.Warnf(ctx, "SyncCalendar: listing existing events failed (skipping cleanup): %v", err)
		return
	}

	for _, ev := range existing {
		if !strings.Contains(ev.Description, calendarTag) {
			continue
		}
		if err := uc.calendar.DeleteEvent(ctx, calendarID, ev.ID); err != nil {
			uc.l.Warnf(ctx, "SyncCalendar: deleting stale event %s failed: %v", ev.ID, err)
		}
	}
}
