package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/pkg/response"
)

// ParseTasks turns free-text task descriptions into stored tasks.
func (h *handler) ParseTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParseTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParseTasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newParseTasksResp(output))
}

// Optimize runs the genetic search for a date's pending tasks.
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOptimizeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Optimize(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Optimize: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

// Reschedule carries uncompleted tasks to a new date and optimizes it.
func (h *handler) Reschedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRescheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reschedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Reschedule: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

// GetSchedule returns the stored schedule for a date.
func (h *handler) GetSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	date := c.Param("date")

	schedule, err := h.uc.GetSchedule(ctx, date)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSchedule: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newScheduleResp(schedule))
}

// CompleteTask marks a task completed or uncompleted.
func (h *handler) CompleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.CompleteTask(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.CompleteTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// GetPreferences returns the stored preferences or the defaults.
func (h *handler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	prefs, err := h.uc.Preferences(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preferences: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPreferencesResp(prefs))
}

// SavePreferences validates and stores preferences.
func (h *handler) SavePreferences(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreferencesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	prefs, err := h.uc.SavePreferences(ctx, req.toModel())
	if err != nil {
		h.l.Errorf(ctx, "uc.SavePreferences: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPreferencesResp(prefs))
}

// DailyReport returns completion metrics for one date.
func (h *handler) DailyReport(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.DailyStats(ctx, c.Query("date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyStats: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, stats)
}

// WeeklyReport returns metrics for the seven days ending at end_date.
func (h *handler) WeeklyReport(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.WeeklyStats(ctx, c.Query("end_date"))
	if err != nil {
		h.l.Errorf(ctx, "uc.WeeklyStats: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, stats)
}

// SyncCalendar pushes a date's schedule to the external calendar.
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncCalendarReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SyncCalendar(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSyncCalendarResp(output))
}
