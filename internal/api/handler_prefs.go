package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccms-backend/internal/model"
	"ccms-backend/internal/prefs"
)

// GetPreference handles GET /api/preferences/:key.
func (h *Handler) GetPreference(c *gin.Context) {
	pref, err := h.prefs.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, prefs.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to read preference"})
		}
		return
	}
	c.JSON(http.StatusOK, pref)
}

type putPreferenceRequest struct {
	Value string `json:"value" binding:"required"`
}

// PutPreference handles PUT /api/preferences/:key, e.g. the persisted
// dark-mode flag.
func (h *Handler) PutPreference(c *gin.Context) {
	var req putPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.prefs.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to store preference"})
		return
	}

	h.logActivity(c, model.ActivitySettingsChange, map[string]any{"key": pref.Key})
	c.JSON(http.StatusOK, pref)
}
