package api

import (
	"errors"
	"time"

	"github.com/critiqs-site/focus-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habitService.ListHabits(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(fiber.Map{"todos": buildHabitViews(habits)})
}

type habitInput struct {
	Text      string `json:"text" form:"text"`
	DividerID string `json:"dividerId" form:"dividerId"`
	Icon      string `json:"icon" form:"icon"`
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.AddHabit(user.ID, input.DividerID, input.Text, input.Icon, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitTextEmpty):
			return apiError(c, fiber.StatusBadRequest, "habit text is required")
		case errors.Is(err, services.ErrSectionNotFound):
			return apiError(c, fiber.StatusBadRequest, "unknown section")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add habit")
	}
	return c.Status(fiber.StatusCreated).JSON(buildHabitView(habit))
}

type renameHabitInput struct {
	Text string `json:"text" form:"text"`
}

func (handler *Handler) RenameHabit(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := renameHabitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.RenameHabit(user.ID, c.Params("id"), input.Text)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitTextEmpty):
			return apiError(c, fiber.StatusBadRequest, "habit text is required")
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update habit")
	}
	return c.JSON(buildHabitView(habit))
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.habitService.DeleteHabit(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return c.JSON(fiber.Map{"ok": true})
}

type toggleInput struct {
	DayIndex int `json:"day_index" form:"day_index"`
}

// ToggleHabitCompletion flips one day of a habit's weekly window. Future days
// leave the completion set untouched and report changed=false.
func (handler *Handler) ToggleHabitCompletion(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := toggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, changed, err := handler.habitService.ToggleCompletion(user.ID, c.Params("id"), input.DayIndex, handler.today())
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update habit")
	}
	return c.JSON(fiber.Map{
		"changed": changed,
		"todo":    buildHabitView(habit),
	})
}
