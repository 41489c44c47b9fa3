package model

import "time"

// Preference is a persisted UI preference such as the dark-mode flag. Plain
// key/value, reloaded by the console across sessions.
type Preference struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     string    `gorm:"size:256;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
