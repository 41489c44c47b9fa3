package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccms-backend/internal/export"
	"ccms-backend/internal/model"
	"ccms-backend/internal/store"
)

// ExportComplaints handles GET /api/complaints/export: the current filter
// result as a CSV download.
func (h *Handler) ExportComplaints(c *gin.Context) {
	var criteria store.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaints, err := h.store.Filter(criteria)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteComplaints(&buf, complaints); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to export complaints"})
		return
	}

	h.logActivity(c, model.ActivityComplaintExport, map[string]any{"rows": len(complaints)})

	c.Header("Content-Disposition", `attachment; filename="complaints.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportActivity handles GET /api/activity/export.
func (h *Handler) ExportActivity(c *gin.Context) {
	filters, ok := activityFilters(c)
	if !ok {
		return
	}

	logs, err := h.activity.List(c.Request.Context(), filters)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity logs"})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteActivityLogs(&buf, logs); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to export activity logs"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="activity-logs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
