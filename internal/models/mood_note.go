package models

import "time"

const (
	MoodSuperHappy = "super_happy"
	MoodHappy      = "happy"
	MoodNeutral    = "neutral"
	MoodSad        = "sad"
	MoodDepressed  = "depressed"
)

// MoodNote records at most one mood entry per calendar day per user.
// Date holds the canonical YYYY-MM-DD key; the unique index enforces the
// one-entry-per-day invariant at the store level.
type MoodNote struct {
	ID        string    `gorm:"primaryKey;type:text"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Date      string    `gorm:"not null;uniqueIndex:uidx_mood_user_date"`
	Mood      string    `gorm:"not null"`
	Note      string    `gorm:"not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func IsValidMood(mood string) bool {
	switch mood {
	case MoodSuperHappy, MoodHappy, MoodNeutral, MoodSad, MoodDepressed:
		return true
	}
	return false
}

func MoodLabel(mood string) string {
	switch mood {
	case MoodSuperHappy:
		return "Super Happy"
	case MoodHappy:
		return "Happy"
	case MoodNeutral:
		return "Neutral"
	case MoodSad:
		return "Sad"
	case MoodDepressed:
		return "Depressed"
	}
	return "Neutral"
}

func MoodEmoji(mood string) string {
	switch mood {
	case MoodSuperHappy:
		return "😄"
	case MoodHappy:
		return "🙂"
	case MoodSad:
		return "😢"
	case MoodDepressed:
		return "😞"
	}
	return "😐"
}
