package services

import (
	"errors"
	"strings"
	"time"

	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/google/uuid"
)

var (
	ErrInvalidMood    = errors.New("invalid mood")
	ErrFutureMoodDate = errors.New("mood date in the future")
	ErrNoteNotFound   = errors.New("mood note not found")
)

// RecentNotesLimit caps how many mood entries feed the chat context.
const RecentNotesLimit = 5

type MoodNoteStore interface {
	ListByUser(userID uint) ([]models.MoodNote, error)
	ListByUserMonth(userID uint, monthKey string) ([]models.MoodNote, error)
	ListRecent(userID uint, limit int) ([]models.MoodNote, error)
	FindByUserAndDate(userID uint, dateKey string) (models.MoodNote, bool, error)
	FindByIDForUser(noteID string, userID uint) (models.MoodNote, error)
	Create(note *models.MoodNote) error
	Save(note *models.MoodNote) error
	Delete(noteID string, userID uint) error
}

// MoodService maintains the one-entry-per-day mood ledger.
type MoodService struct {
	notes MoodNoteStore
}

func NewMoodService(notes MoodNoteStore) *MoodService {
	return &MoodService{notes: notes}
}

func (service *MoodService) ListNotes(userID uint) ([]models.MoodNote, error) {
	return service.notes.ListByUser(userID)
}

func (service *MoodService) NotesForMonth(userID uint, monthKey string) ([]models.MoodNote, error) {
	if _, err := ParseMonthKey(monthKey); err != nil {
		return nil, err
	}
	return service.notes.ListByUserMonth(userID, monthKey)
}

func (service *MoodService) RecentNotes(userID uint) ([]models.MoodNote, error) {
	return service.notes.ListRecent(userID, RecentNotesLimit)
}

// UpsertForDate saves the mood entry for one calendar day. A second save for
// the same day updates the existing entry in place, keeping its identity.
// Future dates are rejected without touching state.
func (service *MoodService) UpsertForDate(userID uint, dateKey string, mood string, note string, today time.Time) (models.MoodNote, error) {
	day, err := ParseDateKey(dateKey)
	if err != nil {
		return models.MoodNote{}, err
	}
	if !models.IsValidMood(mood) {
		return models.MoodNote{}, ErrInvalidMood
	}
	if IsFutureDay(day, today) {
		return models.MoodNote{}, ErrFutureMoodDate
	}

	existing, found, err := service.notes.FindByUserAndDate(userID, dateKey)
	if err != nil {
		return models.MoodNote{}, err
	}
	if found {
		existing.Mood = mood
		existing.Note = strings.TrimSpace(note)
		if err := service.notes.Save(&existing); err != nil {
			return models.MoodNote{}, err
		}
		return existing, nil
	}

	entry := models.MoodNote{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      dateKey,
		Mood:      mood,
		Note:      strings.TrimSpace(note),
		CreatedAt: today,
	}
	if err := service.notes.Create(&entry); err != nil {
		return models.MoodNote{}, err
	}
	return entry, nil
}

// EditNote updates mood and text of an existing entry; the date never
// changes.
func (service *MoodService) EditNote(userID uint, noteID string, mood string, note string) (models.MoodNote, error) {
	if !models.IsValidMood(mood) {
		return models.MoodNote{}, ErrInvalidMood
	}
	entry, err := service.notes.FindByIDForUser(noteID, userID)
	if err != nil {
		return models.MoodNote{}, ErrNoteNotFound
	}
	entry.Mood = mood
	entry.Note = strings.TrimSpace(note)
	if err := service.notes.Save(&entry); err != nil {
		return models.MoodNote{}, err
	}
	return entry, nil
}

func (service *MoodService) DeleteNote(userID uint, noteID string) error {
	if _, err := service.notes.FindByIDForUser(noteID, userID); err != nil {
		return ErrNoteNotFound
	}
	return service.notes.Delete(noteID, userID)
}
