package db

import (
	"github.com/critiqs-site/focus-hub/internal/models"
	"gorm.io/gorm"
)

type SectionRepository struct {
	database *gorm.DB
}

func NewSectionRepository(database *gorm.DB) *SectionRepository {
	return &SectionRepository{database: database}
}

func (repo *SectionRepository) ListByUser(userID uint) ([]models.Section, error) {
	sections := make([]models.Section, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}

func (repo *SectionRepository) FindByIDForUser(sectionID string, userID uint) (models.Section, error) {
	section := models.Section{}
	if err := repo.database.
		Where("id = ? AND user_id = ?", sectionID, userID).
		First(&section).Error; err != nil {
		return models.Section{}, err
	}
	return section, nil
}

func (repo *SectionRepository) Create(section *models.Section) error {
	return repo.database.Create(section).Error
}

// DeleteWithHabits removes a section and every habit referencing it in one
// transaction. Habits of other sections are untouched.
func (repo *SectionRepository) DeleteWithHabits(sectionID string, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("section_id = ? AND user_id = ?", sectionID, userID).
			Delete(&models.Habit{}).Error; err != nil {
			return err
		}
		return tx.
			Where("id = ? AND user_id = ?", sectionID, userID).
			Delete(&models.Section{}).Error
	})
}
