package api

import (
	"errors"
	"strings"

	"github.com/critiqs-site/focus-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetHabitStats serves the analytics view for one habit: the month's
// completion rate plus current and longest streak. The month query parameter
// (YYYY-MM) defaults to the current month.
func (handler *Handler) GetHabitStats(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habit, err := handler.habitService.FindHabit(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit")
	}

	today := handler.today()
	monthKey := strings.TrimSpace(c.Query("month"))
	if monthKey == "" {
		monthKey = services.MonthKey(today)
	}

	stats, err := services.BuildHabitMonthStats(habit.Completions, monthKey, today)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	weekly := services.WeeklyCompletionPercent(habit.Completions, habit.CreatedOn)
	return c.JSON(fiber.Map{
		"month":             monthKey,
		"weekly_percentage": weekly,
		"stats":             stats,
	})
}
