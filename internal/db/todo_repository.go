package db

import (
	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type TodoRepository struct {
	database *gorm.DB
}

func NewTodoRepository(database *gorm.DB) *TodoRepository {
	return &TodoRepository{database: database}
}

func (repo *TodoRepository) ListByUser(userID uint) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("done ASC, position ASC, id ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (repo *TodoRepository) CountOpenByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Todo{}).
		Where("user_id = ? AND done = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *TodoRepository) FindByIDAndUser(todoID uint, userID uint) (models.Todo, bool, error) {
	todo := models.Todo{}
	result := repo.database.
		Where("id = ? AND user_id = ?", todoID, userID).
		Limit(1).
		Find(&todo)
	if result.Error != nil {
		return models.Todo{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Todo{}, false, nil
	}
	return todo, true, nil
}

func (repo *TodoRepository) Create(todo *models.Todo) error {
	return repo.database.Create(todo).Error
}

func (repo *TodoRepository) Save(todo *models.Todo) error {
	return repo.database.Save(todo).Error
}

func (repo *TodoRepository) DeleteByIDAndUser(todoID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", todoID, userID).Delete(&models.Todo{}).Error
}
