package services

import (
	"errors"
	"time"

	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/google/uuid"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrHabitNotFound   = errors.New("habit not found")
)

type HabitStore interface {
	ListByUser(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID string, userID uint) (models.Habit, error)
	Create(habit *models.Habit) error
	UpdateText(habitID string, userID uint, text string) error
	UpdateCompletions(habit *models.Habit) error
	Delete(habitID string, userID uint) error
}

type SectionStore interface {
	ListByUser(userID uint) ([]models.Section, error)
	FindByIDForUser(sectionID string, userID uint) (models.Section, error)
	Create(section *models.Section) error
	DeleteWithHabits(sectionID string, userID uint) error
}

// HabitService owns the habit/section registry: referential integrity between
// habits and sections, completion toggling, and the section delete cascade.
type HabitService struct {
	habits   HabitStore
	sections SectionStore
}

func NewHabitService(habits HabitStore, sections SectionStore) *HabitService {
	return &HabitService{
		habits:   habits,
		sections: sections,
	}
}

func (service *HabitService) ListSections(userID uint) ([]models.Section, error) {
	return service.sections.ListByUser(userID)
}

func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) FindHabit(userID uint, habitID string) (models.Habit, error) {
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

func (service *HabitService) AddSection(userID uint, rawName string, rawIcon string, now time.Time) (models.Section, error) {
	name, err := NormalizeSectionName(rawName)
	if err != nil {
		return models.Section{}, err
	}

	section := models.Section{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Icon:      NormalizeSectionIcon(rawIcon),
		CreatedAt: now,
	}
	if err := service.sections.Create(&section); err != nil {
		return models.Section{}, err
	}
	return section, nil
}

// DeleteSection removes the section and cascades to every habit referencing
// it; habits of other sections stay untouched.
func (service *HabitService) DeleteSection(userID uint, sectionID string) error {
	if _, err := service.sections.FindByIDForUser(sectionID, userID); err != nil {
		return ErrSectionNotFound
	}
	return service.sections.DeleteWithHabits(sectionID, userID)
}

func (service *HabitService) AddHabit(userID uint, sectionID string, rawText string, rawIcon string, now time.Time) (models.Habit, error) {
	text, err := NormalizeHabitText(rawText)
	if err != nil {
		return models.Habit{}, err
	}
	if _, err := service.sections.FindByIDForUser(sectionID, userID); err != nil {
		return models.Habit{}, ErrSectionNotFound
	}

	habit := models.Habit{
		ID:          uuid.NewString(),
		UserID:      userID,
		SectionID:   sectionID,
		Text:        text,
		Icon:        NormalizeHabitIcon(rawIcon),
		Completions: []string{},
		CreatedOn:   DateAtLocation(now, now.Location()),
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) RenameHabit(userID uint, habitID string, rawText string) (models.Habit, error) {
	text, err := NormalizeHabitText(rawText)
	if err != nil {
		return models.Habit{}, err
	}
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, ErrHabitNotFound
	}
	if err := service.habits.UpdateText(habitID, userID, text); err != nil {
		return models.Habit{}, err
	}
	habit.Text = text
	return habit, nil
}

func (service *HabitService) DeleteHabit(userID uint, habitID string) error {
	if _, err := service.habits.FindByIDForUser(habitID, userID); err != nil {
		return ErrHabitNotFound
	}
	return service.habits.Delete(habitID, userID)
}

// ToggleCompletion resolves dayIndex against the habit's creation day and
// flips that date key in the completion set. Days after today are a no-op;
// the returned flag reports whether anything changed.
func (service *HabitService) ToggleCompletion(userID uint, habitID string, dayIndex int, today time.Time) (models.Habit, bool, error) {
	habit, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, false, ErrHabitNotFound
	}

	targetDay := AddDays(habit.CreatedOn, dayIndex)
	if IsFutureDay(targetDay, today) {
		return habit, false, nil
	}

	targetKey := DateKey(targetDay)
	if habit.HasCompletion(targetKey) {
		kept := make([]string, 0, len(habit.Completions))
		for _, key := range habit.Completions {
			if key != targetKey {
				kept = append(kept, key)
			}
		}
		habit.Completions = kept
	} else {
		habit.Completions = append(habit.Completions, targetKey)
	}

	if err := service.habits.UpdateCompletions(&habit); err != nil {
		return models.Habit{}, false, err
	}
	return habit, true, nil
}
