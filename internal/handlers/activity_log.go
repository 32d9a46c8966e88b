package handlers

import (
	"net/http"
	"strconv"

	"HSP-PORTAL/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityLogHandler struct {
	activityLogService *services.ActivityLogService
}

func NewActivityLogHandler(activityLogService *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activityLogService: activityLogService}
}

// GetLogs returns request logs, newest first, with optional method/path filters
// GET /api/v1/logs?method=&path=&limit=&offset=
func (h *ActivityLogHandler) GetLogs(c *gin.Context) {
	limit := 100
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}
	offset := 0
	if o := c.Query("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	var err error
	var logs interface{}
	var total int64

	if method := c.Query("method"); method != "" {
		logs, total, err = h.activityLogService.GetLogsByMethod(method, limit, offset)
	} else if path := c.Query("path"); path != "" {
		logs, total, err = h.activityLogService.GetLogsByPath(path, limit, offset)
	} else {
		logs, total, err = h.activityLogService.GetAllLogs(limit, offset)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  logs,
		"total": total,
	})
}
