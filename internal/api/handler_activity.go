package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ccms-backend/internal/activity"
)

// activityFilters parses the shared query parameters of the activity
// endpoints. On a malformed parameter it writes the error response itself and
// returns ok=false.
func activityFilters(c *gin.Context) (activity.ListFilters, bool) {
	filters := activity.ListFilters{
		Type:   c.Query("type"),
		Actor:  c.Query("actor"),
		Search: c.Query("search"),
	}

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid 'start' timestamp format. Use RFC3339."})
			return activity.ListFilters{}, false
		}
		filters.Start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid 'end' timestamp format. Use RFC3339."})
			return activity.ListFilters{}, false
		}
		filters.End = t
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return activity.ListFilters{}, false
		}
		filters.Limit = n
	}
	return filters, true
}

// ListActivity handles GET /api/activity.
func (h *Handler) ListActivity(c *gin.Context) {
	filters, ok := activityFilters(c)
	if !ok {
		return
	}

	logs, err := h.activity.List(c.Request.Context(), filters)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
