package api

import (
	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/critiqs-site/focus-hub/internal/services"
)

// Wire shapes match the record collections the original client consumes.

type sectionView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type habitView struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	DividerID   string   `json:"dividerId"`
	Icon        string   `json:"icon"`
	CreatedAt   string   `json:"createdAt"`
	Completions []string `json:"completions"`
}

type noteView struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Mood      string `json:"mood"`
	Note      string `json:"note"`
	CreatedAt string `json:"createdAt"`
}

func buildSectionView(section models.Section) sectionView {
	return sectionView{
		ID:   section.ID,
		Name: section.Name,
		Icon: section.Icon,
	}
}

func buildSectionViews(sections []models.Section) []sectionView {
	views := make([]sectionView, 0, len(sections))
	for _, section := range sections {
		views = append(views, buildSectionView(section))
	}
	return views
}

func buildHabitView(habit models.Habit) habitView {
	completions := habit.Completions
	if completions == nil {
		completions = []string{}
	}
	return habitView{
		ID:          habit.ID,
		Text:        habit.Text,
		DividerID:   habit.SectionID,
		Icon:        habit.Icon,
		CreatedAt:   services.DateKey(habit.CreatedOn),
		Completions: completions,
	}
}

func buildHabitViews(habits []models.Habit) []habitView {
	views := make([]habitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, buildHabitView(habit))
	}
	return views
}

func buildNoteView(note models.MoodNote) noteView {
	return noteView{
		ID:        note.ID,
		Date:      note.Date,
		Mood:      note.Mood,
		Note:      note.Note,
		CreatedAt: note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func buildNoteViews(notes []models.MoodNote) []noteView {
	views := make([]noteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, buildNoteView(note))
	}
	return views
}
