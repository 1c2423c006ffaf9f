package db

import (
	"time"

	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	query := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	notifications := make([]models.Notification, 0)
	if err := query.Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) CountUnreadByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *NotificationRepository) ExistsByUserKindSince(userID uint, kind string, since time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND kind = ? AND created_at >= ?", userID, kind, since).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) MarkRead(notificationID uint, userID uint, readAt time.Time) error {
	return repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", notificationID, userID).
		Update("read_at", readAt).Error
}

func (repo *NotificationRepository) MarkAllRead(userID uint, readAt time.Time) error {
	return repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", readAt).Error
}
