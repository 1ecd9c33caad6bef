package api

import (
	"errors"
	"time"

	"github.com/critiqs-site/focus-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSections(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	sections, err := handler.habitService.ListSections(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load sections")
	}
	return c.JSON(fiber.Map{"dividers": buildSectionViews(sections)})
}

type sectionInput struct {
	Name string `json:"name" form:"name"`
	Icon string `json:"icon" form:"icon"`
}

func (handler *Handler) CreateSection(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := sectionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	section, err := handler.habitService.AddSection(user.ID, input.Name, input.Icon, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrSectionNameEmpty) {
			return apiError(c, fiber.StatusBadRequest, "section name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add section")
	}
	return c.Status(fiber.StatusCreated).JSON(buildSectionView(section))
}

func (handler *Handler) DeleteSection(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.habitService.DeleteSection(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrSectionNotFound) {
			return apiError(c, fiber.StatusNotFound, "section not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete section")
	}
	return c.JSON(fiber.Map{"ok": true})
}
