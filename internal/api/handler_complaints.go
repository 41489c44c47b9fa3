package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ccms-backend/internal/model"
	"ccms-backend/internal/notification"
	"ccms-backend/internal/store"
)

// ListComplaints handles GET /api/complaints. With no query parameters it is
// the full list, newest first; status, search and date_range narrow it.
func (h *Handler) ListComplaints(c *gin.Context) {
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

	if criteria != (store.FilterCriteria{}) {
		h.logActivity(c, model.ActivityFilterApply, map[string]any{
			"status":    criteria.Status,
			"search":    criteria.Search,
			"dateRange": criteria.DateRange,
			"results":   len(complaints),
		})
	}

	c.JSON(http.StatusOK, redactAll(complaints))
}

// GetComplaint handles GET /api/complaints/:id.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	complaint, err := h.store.GetByID(id)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.logActivity(c, model.ActivityComplaintView, map[string]any{"complaintId": id})
	c.JSON(http.StatusOK, redact(complaint))
}

type createComplaintRequest struct {
	Subject              string                      `json:"subject" binding:"required"`
	Category             string                      `json:"category"`
	Location             string                      `json:"location"`
	Priority             string                      `json:"priority"`
	SubmittedBy          string                      `json:"submittedBy"`
	Email                string                      `json:"email"`
	IsAnonymous          bool                        `json:"isAnonymous"`
	Description          string                      `json:"description" binding:"required"`
	Images               []string                    `json:"images"`
	VerificationDocument *store.VerificationDocument `json:"verificationDocument"`
}

// CreateComplaint handles POST /api/complaints, the student submission flow.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.Create(store.NewComplaint{
		Subject:              req.Subject,
		Category:             req.Category,
		Location:             req.Location,
		Priority:             store.Priority(req.Priority),
		SubmittedBy:          req.SubmittedBy,
		Email:                req.Email,
		IsAnonymous:          req.IsAnonymous,
		Description:          req.Description,
		Images:               req.Images,
		VerificationDocument: req.VerificationDocument,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.flushCache()
	h.logActivity(c, model.ActivityComplaintCreate, map[string]any{
		"complaintId": created.ID,
		"category":    created.Category,
		"anonymous":   created.IsAnonymous,
	})
	c.JSON(http.StatusCreated, redact(created))
}

type updateStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Remarks string `json:"remarks"`
}

// UpdateStatus handles PUT /api/complaints/:id/status, the admin transition
// action. On success the analytics cache is flushed and watchers are pushed a
// notification.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid complaint ID"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.UpdateStatus(id, store.Status(req.Status), req.Remarks)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrInvalidTransition):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.flushCache()
	h.logActivity(c, model.ActivityStatusChange, map[string]any{
		"complaintId": updated.ID,
		"to":          string(updated.Status),
	})
	if h.notifier != nil {
		h.notifier.Dispatch(notification.Event{
			ComplaintID: updated.ID,
			Subject:     updated.Subject,
			Status:      updated.Status,
		})
	}

	c.JSON(http.StatusOK, redact(updated))
}
