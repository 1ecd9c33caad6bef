package db

import (
	"github.com/critiqs-site/focus-hub/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID string, userID uint) (models.Habit, error) {
	habit := models.Habit{}
	if err := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error; err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

func (repo *HabitRepository) UpdateText(habitID string, userID uint, text string) error {
	return repo.database.Model(&models.Habit{}).
		Where("id = ? AND user_id = ?", habitID, userID).
		Update("text", text).Error
}

func (repo *HabitRepository) UpdateCompletions(habit *models.Habit) error {
	return repo.database.Model(habit).
		Select("Completions").
		Updates(models.Habit{Completions: habit.Completions}).Error
}

func (repo *HabitRepository) Delete(habitID string, userID uint) error {
	return repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Delete(&models.Habit{}).Error
}
