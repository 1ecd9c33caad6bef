package api

import (
	"errors"

	"github.com/critiqs-site/focus-hub/internal/chat"
	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/gofiber/fiber/v2"
)

type chatInput struct {
	Messages []chat.Message `json:"messages"`
	Context  *chat.Context  `json:"context"`
}

// Chat forwards the conversation to the language-model gateway and relays
// the streamed response verbatim. The habit/mood context comes from the
// request body when the client supplies it, otherwise from the caller's
// stored data.
func (handler *Handler) Chat(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if handler.relay == nil {
		return apiError(c, fiber.StatusInternalServerError, "AI service error")
	}

	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if len(input.Messages) == 0 {
		return apiError(c, fiber.StatusBadRequest, "messages are required")
	}

	userContext := chat.Context{}
	if input.Context != nil {
		userContext = *input.Context
	} else {
		assembled, err := handler.assembleChatContext(user.ID)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load chat context")
		}
		userContext = assembled
	}

	body, err := handler.relay.Stream(c.UserContext(), chat.SystemMessageWithContext(userContext), input.Messages)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrRateLimited):
			return apiError(c, fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
		case errors.Is(err, chat.ErrQuotaExceeded):
			return apiError(c, fiber.StatusPaymentRequired, "AI service quota exceeded.")
		}
		return apiError(c, fiber.StatusInternalServerError, "AI service error")
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Context().SetBodyStream(body, -1)
	return nil
}

func (handler *Handler) assembleChatContext(userID uint) (chat.Context, error) {
	sections, err := handler.habitService.ListSections(userID)
	if err != nil {
		return chat.Context{}, err
	}
	habits, err := handler.habitService.ListHabits(userID)
	if err != nil {
		return chat.Context{}, err
	}
	notes, err := handler.moodService.RecentNotes(userID)
	if err != nil {
		return chat.Context{}, err
	}
	return buildChatContext(sections, habits, notes), nil
}

func buildChatContext(sections []models.Section, habits []models.Habit, notes []models.MoodNote) chat.Context {
	userContext := chat.Context{
		Todos:    make([]chat.Todo, 0, len(habits)),
		Dividers: make([]chat.Divider, 0, len(sections)),
		Notes:    make([]chat.Note, 0, len(notes)),
	}
	for _, section := range sections {
		userContext.Dividers = append(userContext.Dividers, chat.Divider{
			ID:   section.ID,
			Name: section.Name,
		})
	}
	for _, habit := range habits {
		userContext.Todos = append(userContext.Todos, chat.Todo{
			ID:          habit.ID,
			Text:        habit.Text,
			DividerID:   habit.SectionID,
			Completions: habit.Completions,
		})
	}
	for _, note := range notes {
		userContext.Notes = append(userContext.Notes, chat.Note{
			Date: note.Date,
			Mood: note.Mood,
			Note: note.Note,
		})
	}
	return userContext
}
