package api

import (
	"errors"
	"strings"

	"github.com/critiqs-site/focus-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetNotes lists mood entries newest first. A month query parameter
// (YYYY-MM) restricts the list to that calendar month.
func (handler *Handler) GetNotes(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	monthKey := strings.TrimSpace(c.Query("month"))
	if monthKey != "" {
		notes, err := handler.moodService.NotesForMonth(user.ID, monthKey)
		if err != nil {
			if errors.Is(err, services.ErrInvalidMonthKey) {
				return apiError(c, fiber.StatusBadRequest, "invalid month")
			}
			return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
		}
		return c.JSON(fiber.Map{"notes": buildNoteViews(notes)})
	}

	notes, err := handler.moodService.ListNotes(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load notes")
	}
	return c.JSON(fiber.Map{"notes": buildNoteViews(notes)})
}

type upsertNoteInput struct {
	Date string `json:"date" form:"date"`
	Mood string `json:"mood" form:"mood"`
	Note string `json:"note" form:"note"`
}

func (handler *Handler) UpsertNote(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := upsertNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	note, err := handler.moodService.UpsertForDate(user.ID, strings.TrimSpace(input.Date), input.Mood, input.Note, handler.today())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDateKey):
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		case errors.Is(err, services.ErrInvalidMood):
			return apiError(c, fiber.StatusBadRequest, "invalid mood")
		case errors.Is(err, services.ErrFutureMoodDate):
			return apiError(c, fiber.StatusBadRequest, "cannot log a future date")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save entry")
	}
	return c.JSON(buildNoteView(note))
}

type editNoteInput struct {
	Mood string `json:"mood" form:"mood"`
	Note string `json:"note" form:"note"`
}

func (handler *Handler) EditNote(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := editNoteInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	note, err := handler.moodService.EditNote(user.ID, c.Params("id"), input.Mood, input.Note)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidMood):
			return apiError(c, fiber.StatusBadRequest, "invalid mood")
		case errors.Is(err, services.ErrNoteNotFound):
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update entry")
	}
	return c.JSON(buildNoteView(note))
}

func (handler *Handler) DeleteNote(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.moodService.DeleteNote(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return apiError(c, fiber.StatusNotFound, "entry not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete entry")
	}
	return c.JSON(fiber.Map{"ok": true})
}
