package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetStats handles GET /api/stats, the dashboard counters.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// GetCategoryBreakdown handles GET /api/analytics/categories. Only observed
// categories appear; the charts derive their axes dynamically.
func (h *Handler) GetCategoryBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AggregateByCategory())
}

// GetStatusBreakdown handles GET /api/analytics/statuses.
func (h *Handler) GetStatusBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AggregateByStatus())
}

// GetPriorityBreakdown handles GET /api/analytics/priorities.
func (h *Handler) GetPriorityBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AggregateByPriority())
}

// GetLocationBreakdown handles GET /api/analytics/locations, grouped by
// building.
func (h *Handler) GetLocationBreakdown(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AggregateByLocation())
}

// GetTrend handles GET /api/analytics/trend: submissions per day over the
// last seven calendar days, empty days included.
func (h *Handler) GetTrend(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.TrendLast7Days())
}

// GetResolutionTime handles GET /api/analytics/resolution-time.
func (h *Handler) GetResolutionTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"averageHours": h.store.AverageResolutionHours()})
}

// GetRecentActivity handles GET /api/analytics/recent: the most recently
// updated complaints for the dashboard feed.
func (h *Handler) GetRecentActivity(c *gin.Context) {
	n := 5
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		n = parsed
	}
	c.JSON(http.StatusOK, redactAll(h.store.RecentActivity(n)))
}
