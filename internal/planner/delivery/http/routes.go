package http

import (
	"github.com/gin-gonic/gin"

	"smart-day-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Optimization
// endpoints are rate limited since each call runs a full genetic search.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", h.ParseTasks)
		tasks.POST("/complete", h.CompleteTask)
	}

	schedule := rg.Group("/schedule")
	{
		schedule.POST("/optimize", mw.RateLimit(), h.Optimize)
		schedule.POST("/reschedule", mw.RateLimit(), h.Reschedule)
		schedule.GET("/:date", h.GetSchedule)
	}

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", h.GetPreferences)
		preferences.PUT("", h.SavePreferences)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.DailyReport)
		reports.GET("/weekly", h.WeeklyReport)
	}

	rg.POST("/calendar/sync", h.SyncCalendar)
}
