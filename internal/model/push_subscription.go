package model

import "time"

// PushSubscription holds the information for a browser push subscription.
type PushSubscription struct {
	Endpoint  string    `gorm:"primaryKey;size:512"`
	P256DH    string    `gorm:"column:p256dh;not null"`
	Auth      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`

	// Associations
	Watches []ComplaintWatch `gorm:"foreignKey:SubscriptionEndpoint;constraint:OnDelete:CASCADE"`
}

// ComplaintWatch links a subscription to a complaint id the subscriber wants
// status-change pushes for. Complaints themselves live in memory, so this is
// a plain id reference rather than a foreign key.
type ComplaintWatch struct {
	SubscriptionEndpoint string `gorm:"primaryKey;size:512"`
	ComplaintID          int    `gorm:"primaryKey"`
}
