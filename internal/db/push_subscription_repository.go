package db

import (
	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type PushSubscriptionRepository struct {
	database *gorm.DB
}

func NewPushSubscriptionRepository(database *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{database: database}
}

func (repo *PushSubscriptionRepository) ListByUser(userID uint) ([]models.PushSubscription, error) {
	subscriptions := make([]models.PushSubscription, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (repo *PushSubscriptionRepository) FindByUserAndEndpoint(userID uint, endpoint string) (models.PushSubscription, bool, error) {
	subscription := models.PushSubscription{}
	result := repo.database.
		Where("user_id = ? AND endpoint = ?", userID, endpoint).
		Limit(1).
		Find(&subscription)
	if result.Error != nil {
		return models.PushSubscription{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PushSubscription{}, false, nil
	}
	return subscription, true, nil
}

func (repo *PushSubscriptionRepository) Create(subscription *models.PushSubscription) error {
	return repo.database.Create(subscription).Error
}

func (repo *PushSubscriptionRepository) Save(subscription *models.PushSubscription) error {
	return repo.database.Save(subscription).Error
}

func (repo *PushSubscriptionRepository) DeleteByIDAndUser(subscriptionID string, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", subscriptionID, userID).Delete(&models.PushSubscription{}).Error
}
