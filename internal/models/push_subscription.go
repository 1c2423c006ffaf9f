package models

import "time"

// PushSubscription stores a browser push endpoint registered by a client.
// Delivery happens outside this service; this is only the registry the
// pusher reads.
type PushSubscription struct {
	ID        string `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Endpoint  string `gorm:"not null;uniqueIndex"`
	P256dh    string `gorm:"not null"`
	Auth      string `gorm:"not null"`
	CreatedAt time.Time
}
