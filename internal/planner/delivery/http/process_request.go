package http

import (
	"github.com/gin-gonic/gin"
)

// processParseTasksReq binds and validates the parse request body.
func (h *handler) processParseTasksReq(c *gin.Context) (parseTasksReq, error) {
	var req parseTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processOptimizeReq binds and validates the optimize request body.
func (h *handler) processOptimizeReq(c *gin.Context) (optimizeReq, error) {
	var req optimizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRescheduleReq binds and validates the reschedule request body.
func (h *handler) processRescheduleReq(c *gin.Context) (rescheduleReq, error) {
	var req rescheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCompleteTaskReq binds and validates the complete-task request body.
func (h *handler) processCompleteTaskReq(c *gin.Context) (completeTaskReq, error) {
	var req completeTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPreferencesReq binds and validates the preferences request body.
func (h *handler) processPreferencesReq(c *gin.Context) (preferencesReq, error) {
	var req preferencesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSyncCalendarReq binds and validates the calendar sync request body.
func (h *handler) processSyncCalendarReq(c *gin.Context) (syncCalendarReq, error) {
	var req syncCalendarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
