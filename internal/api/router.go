package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"ccms-backend/config"
	"ccms-backend/internal/activity"
	"ccms-backend/internal/mw"
	"ccms-backend/internal/prefs"
	"ccms-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(
	s store.Store,
	db *gorm.DB,
	logger *activity.Logger,
	notifier Notifier,
	webpushOptions *webpush.Options,
	cfg *config.ServerConfig,
) *gin.Engine {
	r := gin.Default()

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	handler := NewHandler(s, db, logger, notifier, prefs.NewService(db), webpushOptions, cacheStore)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/complaints", handler.ListComplaints)
		api.POST("/complaints", handler.CreateComplaint)
		api.GET("/complaints/export", handler.ExportComplaints)
		api.GET("/complaints/:id", handler.GetComplaint)
		api.PUT("/complaints/:id/status", handler.UpdateStatus)

		api.GET("/stats", caching, handler.GetStats)
		api.GET("/analytics/categories", caching, handler.GetCategoryBreakdown)
		api.GET("/analytics/statuses", caching, handler.GetStatusBreakdown)
		api.GET("/analytics/priorities", caching, handler.GetPriorityBreakdown)
		api.GET("/analytics/locations", caching, handler.GetLocationBreakdown)
		api.GET("/analytics/trend", caching, handler.GetTrend)
		api.GET("/analytics/resolution-time", caching, handler.GetResolutionTime)
		api.GET("/analytics/recent", caching, handler.GetRecentActivity)

		api.GET("/activity", handler.ListActivity)
		api.GET("/activity/export", handler.ExportActivity)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		api.GET("/preferences/:key", handler.GetPreference)
		api.PUT("/preferences/:key", handler.PutPreference)
	}

	return r
}
