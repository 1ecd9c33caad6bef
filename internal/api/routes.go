package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Post("/onboarding", handler.CompleteOnboarding)

	sections := api.Group("/sections", handler.AuthRequired)
	sections.Get("", handler.GetSections)
	sections.Post("", handler.CreateSection)
	sections.Delete("/:id", handler.DeleteSection)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Patch("/:id", handler.RenameHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/toggle", handler.ToggleHabitCompletion)
	habits.Get("/:id/stats", handler.GetHabitStats)

	notes := api.Group("/notes", handler.AuthRequired)
	notes.Get("", handler.GetNotes)
	notes.Post("", handler.UpsertNote)
	notes.Patch("/:id", handler.EditNote)
	notes.Delete("/:id", handler.DeleteNote)

	api.Post("/chat", handler.AuthRequired, handler.Chat)
}
