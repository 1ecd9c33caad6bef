package db

import (
	"github.com/critiqs-site/focus-hub/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// CompleteOnboarding records the profile answers and plants the seed sections
// and habits in one transaction, so a failed seed leaves onboarding open.
func (repo *UserRepository) CompleteOnboarding(userID uint, displayName string, interests []string, sections []models.Section, habits []models.Habit) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if len(sections) > 0 {
			if err := tx.Create(&sections).Error; err != nil {
				return err
			}
		}
		if len(habits) > 0 {
			if err := tx.Create(&habits).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{ID: userID}).
			Select("DisplayName", "Interests", "OnboardingComplete").
			Updates(models.User{
				DisplayName:        displayName,
				Interests:          interests,
				OnboardingComplete: true,
			}).Error
	})
}
