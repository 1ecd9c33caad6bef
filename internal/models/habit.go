package models

import "time"

const DefaultHabitIcon = "PersonStanding"

// Habit is a recurring daily task. Completions holds the canonical date keys
// (YYYY-MM-DD) of the days the habit was marked done; membership is treated
// as a set even though the column stores a JSON array.
type Habit struct {
	ID          string    `gorm:"primaryKey;type:text"`
	UserID      uint      `gorm:"not null;index"`
	SectionID   string    `gorm:"not null;index;type:text"`
	Text        string    `gorm:"not null"`
	Icon        string    `gorm:"not null"`
	Completions []string  `gorm:"serializer:json"`
	CreatedOn   time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCompletion reports whether the given date key is in the completion set.
func (habit *Habit) HasCompletion(dateKey string) bool {
	for _, key := range habit.Completions {
		if key == dateKey {
			return true
		}
	}
	return false
}
