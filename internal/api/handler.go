package api

import (
	"context"
	"log"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"ccms-backend/internal/activity"
	"ccms-backend/internal/export"
	"ccms-backend/internal/model"
	"ccms-backend/internal/notification"
	"ccms-backend/internal/prefs"
	"ccms-backend/internal/store"
)

// ActivityRecorder is the slice of the activity logger the handlers need.
type ActivityRecorder interface {
	Log(ctx context.Context, rec activity.Record) (model.ActivityLog, error)
	List(ctx context.Context, f activity.ListFilters) ([]model.ActivityLog, error)
}

// Notifier dispatches status-change events to push subscribers.
type Notifier interface {
	Dispatch(ev notification.Event)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	db       *gorm.DB
	activity ActivityRecorder
	notifier Notifier
	prefs    *prefs.Service
	webpush  *webpush.Options
	cache    *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(
	s store.Store,
	db *gorm.DB,
	recorder ActivityRecorder,
	notifier Notifier,
	prefsSvc *prefs.Service,
	webpushOptions *webpush.Options,
	cacheStore *cache.Cache,
) *Handler {
	return &Handler{
		store:    s,
		db:       db,
		activity: recorder,
		notifier: notifier,
		prefs:    prefsSvc,
		webpush:  webpushOptions,
		cache:    cacheStore,
	}
}

// redact withholds submitter identity from anonymous complaints before they
// leave the service. The store keeps the real values for routing.
func redact(c store.Complaint) store.Complaint {
	if c.IsAnonymous {
		c.SubmittedBy = export.AnonymousDisplayName
		c.Email = ""
	}
	return c
}

func redactAll(complaints []store.Complaint) []store.Complaint {
	out := make([]store.Complaint, len(complaints))
	for i, c := range complaints {
		out[i] = redact(c)
	}
	return out
}

// logActivity records an admin action. Audit failures are logged and
// swallowed; they must never fail the request that triggered them.
func (h *Handler) logActivity(c *gin.Context, typ string, details map[string]any) {
	if h.activity == nil {
		return
	}
	name := c.GetHeader("X-Admin-Name")
	if name == "" {
		name = "admin"
	}
	role := c.GetHeader("X-Admin-Role")
	if role == "" {
		role = "System Administrator"
	}
	rec := activity.Record{
		Type:       typ,
		ActorName:  name,
		ActorEmail: c.GetHeader("X-Admin-Email"),
		ActorRole:  role,
		Details:    details,
		Device:     c.Request.UserAgent(),
		URL:        c.Request.URL.Path,
		SessionID:  c.GetHeader("X-Session-ID"),
	}
	if _, err := h.activity.Log(c.Request.Context(), rec); err != nil {
		log.Printf("Warning: failed to record %s activity: %v", typ, err)
	}
}

// flushCache drops cached analytics responses after a mutation.
func (h *Handler) flushCache() {
	if h.cache != nil {
		h.cache.Flush()
	}
}
