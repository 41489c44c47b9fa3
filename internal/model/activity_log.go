package model

import "time"

// ActivityLog is one append-only audit record of an admin action. Details is
// a JSON blob; the log is a pure sink and nothing ever reads it back into the
// complaint engine.
type ActivityLog struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
	Type       string    `gorm:"size:64;not null;index" json:"type"`
	ActorName  string    `gorm:"size:128;not null" json:"actorName"`
	ActorEmail string    `gorm:"size:256" json:"actorEmail"`
	ActorRole  string    `gorm:"size:64" json:"actorRole"`
	Details    string    `gorm:"type:text" json:"details"`
	Device     string    `gorm:"size:512" json:"device"`
	URL        string    `gorm:"size:256" json:"url"`
	SessionID  string    `gorm:"size:64;index" json:"sessionId"`
}

// Activity types recorded by the admin console.
const (
	ActivityLogin           = "LOGIN"
	ActivityLogout          = "LOGOUT"
	ActivityStatusChange    = "STATUS_CHANGE"
	ActivityComplaintView   = "COMPLAINT_VIEW"
	ActivityComplaintCreate = "COMPLAINT_CREATE"
	ActivityComplaintExport = "COMPLAINT_EXPORT"
	ActivityFilterApply     = "FILTER_APPLY"
	ActivitySettingsChange  = "SETTINGS_CHANGE"
)
