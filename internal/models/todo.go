package models

import "time"

type Todo struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;index"`
	Title     string     `gorm:"not null"`
	Done      bool       `gorm:"not null;default:false"`
	DueDate   *time.Time `gorm:"type:date"`
	Position  int        `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
