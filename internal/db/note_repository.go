package db

import (
	"github.com/mira-app/mira/internal/models"
	"gorm.io/gorm"
)

type NoteRepository struct {
	database *gorm.DB
}

func NewNoteRepository(database *gorm.DB) *NoteRepository {
	return &NoteRepository{database: database}
}

func (repo *NoteRepository) ListByUser(userID uint) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("pinned DESC, updated_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *NoteRepository) ListPinnedByUser(userID uint) ([]models.Note, error) {
	notes := make([]models.Note, 0)
	if err := repo.database.
		Where("user_id = ? AND pinned = ?", userID, true).
		Order("updated_at DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *NoteRepository) FindByIDAndUser(noteID uint, userID uint) (models.Note, bool, error) {
	note := models.Note{}
	result := repo.database.
		Where("id = ? AND user_id = ?", noteID, userID).
		Limit(1).
		Find(&note)
	if result.Error != nil {
		return models.Note{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Note{}, false, nil
	}
	return note, true, nil
}

func (repo *NoteRepository) Create(note *models.Note) error {
	return repo.database.Create(note).Error
}

func (repo *NoteRepository) Save(note *models.Note) error {
	return repo.database.Save(note).Error
}

func (repo *NoteRepository) DeleteByIDAndUser(noteID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", noteID, userID).Delete(&models.Note{}).Error
}
