package services

import (
	"errors"
	"testing"
	"time"

	"github.com/critiqs-site/focus-hub/internal/models"
)

var errFakeNotFound = errors.New("not found")

type fakeHabitStore struct {
	habits map[string]models.Habit
}

func newFakeHabitStore() *fakeHabitStore {
	return &fakeHabitStore{habits: make(map[string]models.Habit)}
}

func (store *fakeHabitStore) ListByUser(userID uint) ([]models.Habit, error) {
	var out []models.Habit
	for _, habit := range store.habits {
		if habit.UserID == userID {
			out = append(out, habit)
		}
	}
	return out, nil
}

func (store *fakeHabitStore) FindByIDForUser(habitID string, userID uint) (models.Habit, error) {
	habit, ok := store.habits[habitID]
	if !ok || habit.UserID != userID {
		return models.Habit{}, errFakeNotFound
	}
	return habit, nil
}

func (store *fakeHabitStore) Create(habit *models.Habit) error {
	store.habits[habit.ID] = *habit
	return nil
}

func (store *fakeHabitStore) UpdateText(habitID string, userID uint, text string) error {
	habit, err := store.FindByIDForUser(habitID, userID)
	if err != nil {
		return err
	}
	habit.Text = text
	store.habits[habitID] = habit
	return nil
}

func (store *fakeHabitStore) UpdateCompletions(habit *models.Habit) error {
	stored, ok := store.habits[habit.ID]
	if !ok {
		return errFakeNotFound
	}
	stored.Completions = habit.Completions
	store.habits[habit.ID] = stored
	return nil
}

func (store *fakeHabitStore) Delete(habitID string, userID uint) error {
	if _, err := store.FindByIDForUser(habitID, userID); err != nil {
		return err
	}
	delete(store.habits, habitID)
	return nil
}

type fakeSectionStore struct {
	sections map[string]models.Section
	habits   *fakeHabitStore
}

func newFakeSectionStore(habits *fakeHabitStore) *fakeSectionStore {
	return &fakeSectionStore{sections: make(map[string]models.Section), habits: habits}
}

func (store *fakeSectionStore) ListByUser(userID uint) ([]models.Section, error) {
	var out []models.Section
	for _, section := range store.sections {
		if section.UserID == userID {
			out = append(out, section)
		}
	}
	return out, nil
}

func (store *fakeSectionStore) FindByIDForUser(sectionID string, userID uint) (models.Section, error) {
	section, ok := store.sections[sectionID]
	if !ok || section.UserID != userID {
		return models.Section{}, errFakeNotFound
	}
	return section, nil
}

func (store *fakeSectionStore) Create(section *models.Section) error {
	store.sections[section.ID] = *section
	return nil
}

func (store *fakeSectionStore) DeleteWithHabits(sectionID string, userID uint) error {
	if _, err := store.FindByIDForUser(sectionID, userID); err != nil {
		return err
	}
	delete(store.sections, sectionID)
	for id, habit := range store.habits.habits {
		if habit.SectionID == sectionID && habit.UserID == userID {
			delete(store.habits.habits, id)
		}
	}
	return nil
}

func newTestHabitService() (*HabitService, *fakeHabitStore, *fakeSectionStore) {
	habits := newFakeHabitStore()
	sections := newFakeSectionStore(habits)
	return NewHabitService(habits, sections), habits, sections
}

func TestAddSectionNormalizesInput(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")

	section, err := service.AddSection(1, "  Evening  ", "", now)
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if section.Name != "Evening" {
		t.Fatalf("name = %q, want Evening", section.Name)
	}
	if section.Icon == "" {
		t.Fatal("expected a default icon")
	}
	if section.ID == "" {
		t.Fatal("expected a generated id")
	}
}

func TestAddSectionRejectsEmptyName(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	if _, err := service.AddSection(1, "   ", "", time.Now()); !errors.Is(err, ErrSectionNameEmpty) {
		t.Fatalf("expected ErrSectionNameEmpty, got %v", err)
	}
}

func TestAddHabitRequiresOwnedSection(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")

	section, err := service.AddSection(1, "Morning", "Sun", now)
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}

	if _, err := service.AddHabit(2, section.ID, "Stretch", "", now); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound for foreign user, got %v", err)
	}
	if _, err := service.AddHabit(1, "missing", "Stretch", "", now); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound for missing section, got %v", err)
	}

	habit, err := service.AddHabit(1, section.ID, "  Stretch  ", "", now)
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if habit.Text != "Stretch" {
		t.Fatalf("text = %q, want Stretch", habit.Text)
	}
	if habit.Icon != models.DefaultHabitIcon {
		t.Fatalf("icon = %q, want %q", habit.Icon, models.DefaultHabitIcon)
	}
	if !SameDay(habit.CreatedOn, now) {
		t.Fatalf("created on %s, want %s", DateKey(habit.CreatedOn), DateKey(now))
	}
	if habit.Completions == nil || len(habit.Completions) != 0 {
		t.Fatalf("new habit should start with an empty completion set, got %v", habit.Completions)
	}
}

func TestRenameHabit(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")
	section, _ := service.AddSection(1, "Morning", "Sun", now)
	habit, _ := service.AddHabit(1, section.ID, "Stretch", "", now)

	renamed, err := service.RenameHabit(1, habit.ID, "Long stretch")
	if err != nil {
		t.Fatalf("RenameHabit: %v", err)
	}
	if renamed.Text != "Long stretch" {
		t.Fatalf("text = %q", renamed.Text)
	}

	if _, err := service.RenameHabit(2, habit.ID, "Hijack"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound for foreign user, got %v", err)
	}
	if _, err := service.RenameHabit(1, habit.ID, "  "); !errors.Is(err, ErrHabitTextEmpty) {
		t.Fatalf("expected ErrHabitTextEmpty, got %v", err)
	}
}

func TestToggleCompletionFlipsAndUnflips(t *testing.T) {
	t.Parallel()

	service, habits, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")
	section, _ := service.AddSection(1, "Morning", "Sun", now)
	habit, _ := service.AddHabit(1, section.ID, "Stretch", "", now)

	toggled, changed, err := service.ToggleCompletion(1, habit.ID, 0, now)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !changed {
		t.Fatal("expected a change")
	}
	if !toggled.HasCompletion("2026-03-09") {
		t.Fatal("expected today to be completed")
	}

	toggled, changed, err = service.ToggleCompletion(1, habit.ID, 0, now)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !changed {
		t.Fatal("expected a change on the second toggle")
	}
	if toggled.HasCompletion("2026-03-09") {
		t.Fatal("expected today to be cleared again")
	}

	stored, _ := habits.FindByIDForUser(habit.ID, 1)
	if stored.HasCompletion("2026-03-09") {
		t.Fatal("store still holds the cleared completion")
	}
}

func TestToggleCompletionFutureDayIsNoOp(t *testing.T) {
	t.Parallel()

	service, habits, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")
	section, _ := service.AddSection(1, "Morning", "Sun", now)
	habit, _ := service.AddHabit(1, section.ID, "Stretch", "", now)

	_, changed, err := service.ToggleCompletion(1, habit.ID, 3, now)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if changed {
		t.Fatal("toggling a future day must not change anything")
	}
	stored, _ := habits.FindByIDForUser(habit.ID, 1)
	if len(stored.Completions) != 0 {
		t.Fatalf("store gained completions: %v", stored.Completions)
	}
}

func TestToggleCompletionPastDayByIndex(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	createdOn := mustParseDay(t, "2026-03-01")
	today := mustParseDay(t, "2026-03-09")
	section, _ := service.AddSection(1, "Morning", "Sun", createdOn)
	habit, _ := service.AddHabit(1, section.ID, "Stretch", "", createdOn)

	toggled, changed, err := service.ToggleCompletion(1, habit.ID, 2, today)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !changed || !toggled.HasCompletion("2026-03-03") {
		t.Fatalf("expected 2026-03-03 completed, got %v", toggled.Completions)
	}
}

func TestDeleteSectionCascadesToItsHabitsOnly(t *testing.T) {
	t.Parallel()

	service, habits, _ := newTestHabitService()
	now := mustParseDay(t, "2026-03-09")
	morning, _ := service.AddSection(1, "Morning", "Sun", now)
	night, _ := service.AddSection(1, "Night", "Moon", now)
	doomed, _ := service.AddHabit(1, morning.ID, "Stretch", "", now)
	survivor, _ := service.AddHabit(1, night.ID, "Read", "", now)

	if err := service.DeleteSection(1, morning.ID); err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}

	if _, err := habits.FindByIDForUser(doomed.ID, 1); err == nil {
		t.Fatal("habit in the deleted section should be gone")
	}
	if _, err := habits.FindByIDForUser(survivor.ID, 1); err != nil {
		t.Fatalf("habit in the other section should survive: %v", err)
	}
	remaining, _ := service.ListSections(1)
	if len(remaining) != 1 || remaining[0].ID != night.ID {
		t.Fatalf("expected only the night section to remain, got %v", remaining)
	}
}

func TestDeleteSectionUnknownID(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestHabitService()
	if err := service.DeleteSection(1, "missing"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}
}
