package db

import (
	"github.com/critiqs-site/focus-hub/internal/models"
	"gorm.io/gorm"
)

type MoodNoteRepository struct {
	database *gorm.DB
}

func NewMoodNoteRepository(database *gorm.DB) *MoodNoteRepository {
	return &MoodNoteRepository{database: database}
}

func (repo *MoodNoteRepository) ListByUser(userID uint) ([]models.MoodNote, error) {
	notes := make([]models.MoodNote, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListByUserMonth returns the notes whose date key falls inside the given
// calendar month. monthKey is the YYYY-MM prefix of the date keys.
func (repo *MoodNoteRepository) ListByUserMonth(userID uint, monthKey string) ([]models.MoodNote, error) {
	notes := make([]models.MoodNote, 0)
	if err := repo.database.
		Where("user_id = ? AND date LIKE ?", userID, monthKey+"-%").
		Order("date DESC, id DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *MoodNoteRepository) ListRecent(userID uint, limit int) ([]models.MoodNote, error) {
	notes := make([]models.MoodNote, 0)
	query := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (repo *MoodNoteRepository) FindByUserAndDate(userID uint, dateKey string) (models.MoodNote, bool, error) {
	note := models.MoodNote{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, dateKey).
		Limit(1).
		Find(&note)
	if result.Error != nil {
		return models.MoodNote{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MoodNote{}, false, nil
	}
	return note, true, nil
}

func (repo *MoodNoteRepository) FindByIDForUser(noteID string, userID uint) (models.MoodNote, error) {
	note := models.MoodNote{}
	if err := repo.database.
		Where("id = ? AND user_id = ?", noteID, userID).
		First(&note).Error; err != nil {
		return models.MoodNote{}, err
	}
	return note, nil
}

func (repo *MoodNoteRepository) Create(note *models.MoodNote) error {
	return repo.database.Create(note).Error
}

func (repo *MoodNoteRepository) Save(note *models.MoodNote) error {
	return repo.database.Save(note).Error
}

func (repo *MoodNoteRepository) Delete(noteID string, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.MoodNote{}).Error
}
