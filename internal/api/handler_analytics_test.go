package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccms-backend/internal/seed"
	"ccms-backend/internal/store"
)

func setupAnalyticsRouter() (*gin.Engine, store.Store) {
	s := store.NewMemStore(seed.Complaints(), "")
	handler := NewHandler(s, nil, nil, nil, nil, nil, nil)

	r := gin.Default()
	r.GET("/api/stats", handler.GetStats)
	r.GET("/api/analytics/categories", handler.GetCategoryBreakdown)
	r.GET("/api/analytics/statuses", handler.GetStatusBreakdown)
	r.GET("/api/analytics/resolution-time", handler.GetResolutionTime)
	r.GET("/api/analytics/recent", handler.GetRecentActivity)
	return r, s
}

func TestGetStats(t *testing.T) {
	router, _ := setupAnalyticsRouter()

	w := doJSON(t, router, "GET", "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats store.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 5, stats.Pending)
	assert.Equal(t, 4, stats.InProgress)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 1, stats.Rejected)
}

func TestGetBreakdowns(t *testing.T) {
	router, s := setupAnalyticsRouter()

	w := doJSON(t, router, "GET", "/api/analytics/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Equal(t, s.AggregateByCategory(), categories)
	assert.Equal(t, 3, categories["Infrastructure"])

	w = doJSON(t, router, "GET", "/api/analytics/statuses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var statuses map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	assert.Equal(t, 5, statuses["Pending"])
}

func TestGetResolutionTime(t *testing.T) {
	router, s := setupAnalyticsRouter()

	w := doJSON(t, router, "GET", "/api/analytics/resolution-time", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, s.AverageResolutionHours(), body["averageHours"])
}

func TestGetRecentActivity(t *testing.T) {
	router, _ := setupAnalyticsRouter()

	w := doJSON(t, router, "GET", "/api/analytics/recent?limit=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var complaints []store.Complaint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &complaints))
	assert.Len(t, complaints, 3)

	w = doJSON(t, router, "GET", "/api/analytics/recent?limit=nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
