package db

import (
	"time"

	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type CalendarEventRepository struct {
	database *gorm.DB
}

func NewCalendarEventRepository(database *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{database: database}
}

func (repo *CalendarEventRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, start_time ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *CalendarEventRepository) FindByIDAndUser(eventID uint, userID uint) (models.CalendarEvent, bool, error) {
	event := models.CalendarEvent{}
	result := repo.database.
		Where("id = ? AND user_id = ?", eventID, userID).
		Limit(1).
		Find(&event)
	if result.Error != nil {
		return models.CalendarEvent{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CalendarEvent{}, false, nil
	}
	return event, true, nil
}

func (repo *CalendarEventRepository) Create(event *models.CalendarEvent) error {
	return repo.database.Create(event).Error
}

func (repo *CalendarEventRepository) Save(event *models.CalendarEvent) error {
	return repo.database.Save(event).Error
}

func (repo *CalendarEventRepository) DeleteByIDAndUser(eventID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.CalendarEvent{}).Error
}
