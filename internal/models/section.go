package models

import "time"

// Section groups habits under a named heading, e.g. "Morning" or "Night".
type Section struct {
	ID        string    `gorm:"primaryKey;type:text"`
	UserID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	Icon      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type SeedSection struct {
	Name  string
	Icon  string
	Seeds []SeedHabit
}

type SeedHabit struct {
	Text string
	Icon string
}

// DefaultSeedSections returns the sections and starter habits planted for a
// fresh account once onboarding completes.
func DefaultSeedSections() []SeedSection {
	return []SeedSection{
		{
			Name: "Morning",
			Icon: "Sun",
			Seeds: []SeedHabit{
				{Text: "Workout for 30 Minutes", Icon: "Dumbbell"},
				{Text: "Meditate for 10 Minutes", Icon: "PersonStanding"},
			},
		},
		{
			Name: "Night",
			Icon: "Moon",
			Seeds: []SeedHabit{
				{Text: "Read Before Sleep", Icon: "BookOpen"},
			},
		},
	}
}
