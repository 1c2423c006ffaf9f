package models

import "time"

type CalendarEvent struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Title     string    `gorm:"not null"`
	Date      time.Time `gorm:"type:date;not null;index"`
	StartTime string    `gorm:"not null;default:''"`
	EndTime   string    `gorm:"not null;default:''"`
	AllDay    bool      `gorm:"not null;default:false"`
	Color     string    `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
