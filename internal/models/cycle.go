package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	MoodHappy     = "happy"
	MoodCalm      = "calm"
	MoodSad       = "sad"
	MoodIrritable = "irritable"
	MoodAnxious   = "anxious"
	MoodEnergetic = "energetic"
)

// CycleSettings holds one user's cycle configuration. A row exists only
// after the first settings update; absence means tracking is not set up.
type CycleSettings struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"uniqueIndex;not null"`
	CycleLength     int        `gorm:"not null;default:0"`
	PeriodLength    int        `gorm:"not null;default:0"`
	PeriodStartDate *time.Time `gorm:"type:date"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CycleLog is one user's symptom log for a single calendar day. Date is
// normalized to local midnight and unique per user.
type CycleLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_cycle_log_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_cycle_log_user_date"`
	Symptoms  []string  `gorm:"serializer:json"`
	Mood      string    `gorm:"not null;default:''"`
	Flow      string    `gorm:"not null;default:''"`
	Note      string    `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func IsValidFlow(value string) bool {
	switch value {
	case FlowNone, FlowLight, FlowMedium, FlowHeavy:
		return true
	default:
		return false
	}
}

func IsValidMood(value string) bool {
	switch value {
	case MoodHappy, MoodCalm, MoodSad, MoodIrritable, MoodAnxious, MoodEnergetic:
		return true
	default:
		return false
	}
}
