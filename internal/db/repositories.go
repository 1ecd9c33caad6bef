package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Sections  *SectionRepository
	Habits    *HabitRepository
	MoodNotes *MoodNoteRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Sections:  NewSectionRepository(database),
		Habits:    NewHabitRepository(database),
		MoodNotes: NewMoodNoteRepository(database),
	}
}
