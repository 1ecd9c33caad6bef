package api

import (
	"errors"
	"time"

	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/critiqs-site/focus-hub/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileView struct {
	Email              string   `json:"email"`
	Name               string   `json:"name"`
	Interests          []string `json:"interests"`
	OnboardingComplete bool     `json:"onboarding_complete"`
}

func buildProfileView(user *models.User) profileView {
	interests := user.Interests
	if interests == nil {
		interests = []string{}
	}
	return profileView{
		Email:              user.Email,
		Name:               user.DisplayName,
		Interests:          interests,
		OnboardingComplete: user.OnboardingComplete,
	}
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(buildProfileView(user))
}

type onboardingInput struct {
	Name      string   `json:"name" form:"name"`
	Interests []string `json:"interests" form:"interests"`
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := onboardingInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.onboardingService.CompleteOnboarding(user.ID, input.Name, input.Interests, time.Now().In(handler.location)); err != nil {
		switch {
		case errors.Is(err, services.ErrOnboardingNameRequired):
			return apiError(c, fiber.StatusBadRequest, "name is required")
		case errors.Is(err, services.ErrOnboardingInterestsRequired):
			return apiError(c, fiber.StatusBadRequest, "select at least one interest")
		case errors.Is(err, services.ErrOnboardingUnknownInterest):
			return apiError(c, fiber.StatusBadRequest, "unknown interest")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	updated, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(buildProfileView(&updated))
}
