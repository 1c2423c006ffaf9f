package models

import "time"

const (
	NotificationPeriodSoon  = "period_soon"
	NotificationPeriodStart = "period_start"
	NotificationOvulation   = "ovulation"
)

type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Kind      string    `gorm:"not null"`
	Title     string    `gorm:"not null"`
	Body      string    `gorm:"not null;default:''"`
	ReadAt    *time.Time
	CreatedAt time.Time
}
