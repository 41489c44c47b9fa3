// Package activity records admin actions into an append-only audit log. The
// log is a sink: nothing in the complaint engine ever reads it back.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ccms-backend/internal/model"
)

// Record is the caller-facing shape of one activity entry.
type Record struct {
	Type       string
	ActorName  string
	ActorEmail string
	ActorRole  string
	Details    map[string]any
	Device     string
	URL        string
	SessionID  string
}

// ListFilters narrows List output. Zero values mean "no filtering".
type ListFilters struct {
	Type   string
	Actor  string
	Search string
	Start  time.Time
	End    time.Time
	Limit  int
}

// Logger persists activity records, keeping at most maxLogs entries and
// discarding anything older than the retention window.
type Logger struct {
	db        *gorm.DB
	maxLogs   int
	retention time.Duration
	now       func() time.Time
}

// NewLogger creates a logger capped at maxLogs entries with the given
// retention in days.
func NewLogger(db *gorm.DB, maxLogs, retentionDays int) *Logger {
	return NewLoggerWithClock(db, maxLogs, retentionDays, time.Now)
}

// NewLoggerWithClock is like NewLogger with an injectable clock, for tests.
func NewLoggerWithClock(db *gorm.DB, maxLogs, retentionDays int, now func() time.Time) *Logger {
	return &Logger{
		db:        db,
		maxLogs:   maxLogs,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       now,
	}
}

// Log appends one record and trims the log back to the cap. The returned
// entry carries the generated id and timestamp.
func (l *Logger) Log(ctx context.Context, rec Record) (model.ActivityLog, error) {
	details := "{}"
	if rec.Details != nil {
		raw, err := json.Marshal(rec.Details)
		if err != nil {
			return model.ActivityLog{}, fmt.Errorf("failed to marshal details: %w", err)
		}
		details = string(raw)
	}

	sessionID := rec.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	entry := model.ActivityLog{
		ID:         uuid.NewString(),
		Timestamp:  l.now(),
		Type:       rec.Type,
		ActorName:  rec.ActorName,
		ActorEmail: rec.ActorEmail,
		ActorRole:  rec.ActorRole,
		Details:    details,
		Device:     rec.Device,
		URL:        rec.URL,
		SessionID:  sessionID,
	}

	if err := l.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return model.ActivityLog{}, fmt.Errorf("failed to insert activity log: %w", err)
	}

	if err := l.trim(ctx); err != nil {
		log.Printf("Warning: could not trim activity log: %v", err)
	}
	return entry, nil
}

// trim deletes the oldest entries beyond the cap.
func (l *Logger) trim(ctx context.Context) error {
	var count int64
	if err := l.db.WithContext(ctx).Model(&model.ActivityLog{}).Count(&count).Error; err != nil {
		return err
	}
	excess := int(count) - l.maxLogs
	if excess <= 0 {
		return nil
	}

	var ids []string
	if err := l.db.WithContext(ctx).Model(&model.ActivityLog{}).
		Order("timestamp ASC").
		Limit(excess).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	return l.db.WithContext(ctx).Delete(&model.ActivityLog{}, "id IN ?", ids).Error
}

// Prune deletes entries older than the retention window and returns how many
// were removed.
func (l *Logger) Prune(ctx context.Context) (int64, error) {
	cutoff := l.now().Add(-l.retention)
	res := l.db.WithContext(ctx).Delete(&model.ActivityLog{}, "timestamp < ?", cutoff)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to prune activity log: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// List returns entries newest first, narrowed by the given filters.
func (l *Logger) List(ctx context.Context, f ListFilters) ([]model.ActivityLog, error) {
	q := l.db.WithContext(ctx).Model(&model.ActivityLog{}).Order("timestamp DESC")

	if f.Type != "" && !strings.EqualFold(f.Type, "all") {
		q = q.Where("type = ?", f.Type)
	}
	if f.Actor != "" {
		needle := "%" + strings.ToLower(f.Actor) + "%"
		q = q.Where("LOWER(actor_name) LIKE ? OR LOWER(actor_email) LIKE ?", needle, needle)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(details) LIKE ? OR LOWER(type) LIKE ?", needle, needle)
	}
	if !f.Start.IsZero() {
		q = q.Where("timestamp >= ?", f.Start)
	}
	if !f.End.IsZero() {
		q = q.Where("timestamp <= ?", f.End)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var logs []model.ActivityLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return logs, nil
}

// Run prunes expired entries on the given interval until the context is
// cancelled.
func (l *Logger) Run(ctx context.Context, interval time.Duration) {
	log.Println("Starting activity log janitor...")
	if removed, err := l.Prune(ctx); err != nil {
		log.Printf("Error pruning activity log: %v", err)
	} else if removed > 0 {
		log.Printf("Pruned %d expired activity log entries", removed)
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Activity log janitor shutting down.")
			return
		case <-timer.C:
			if removed, err := l.Prune(ctx); err != nil {
				log.Printf("Error pruning activity log: %v", err)
			} else if removed > 0 {
				log.Printf("Pruned %d expired activity log entries", removed)
			}
			timer.Reset(interval)
		}
	}
}
