package db

import (
	"time"

	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type CycleLogRepository struct {
	database *gorm.DB
}

func NewCycleLogRepository(database *gorm.DB) *CycleLogRepository {
	return &CycleLogRepository{database: database}
}

func (repo *CycleLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.CycleLog, bool, error) {
	entry := models.CycleLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.CycleLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *CycleLogRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CycleLog, error) {
	logs := make([]models.CycleLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CycleLogRepository) ListByUserDesc(userID uint) ([]models.CycleLog, error) {
	logs := make([]models.CycleLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CycleLogRepository) Create(entry *models.CycleLog) error {
	return repo.database.Create(entry).Error
}

func (repo *CycleLogRepository) Save(entry *models.CycleLog) error {
	return repo.database.Save(entry).Error
}
