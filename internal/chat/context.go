// Package chat relays user conversations to a hosted language-model gateway,
// prefixing them with a summary of the user's habit and mood state.
package chat

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed instruction preamble sent as the system role.
const SystemPrompt = `You are a caring Therapy Guide AI for a habit tracking and mood journaling app. Your role is to:

1. **Be supportive and empathetic** - Always respond with warmth and understanding
2. **Help users reflect** - Ask thoughtful questions about their habits and moods
3. **Provide gentle guidance** - Offer practical tips for building better habits and managing emotions
4. **Celebrate wins** - Acknowledge progress, no matter how small
5. **Be concise** - Keep responses short and focused (2-3 paragraphs max)

STYLE RULES:
- Use a friendly, casual tone like talking to a supportive friend
- Keep sentences short and easy to read
- Use 1-2 emojis per response (not more)
- Never be preachy or lecture the user
- Ask follow-up questions to keep the conversation going
- If they share something difficult, validate their feelings first

You have access to the user's:
- Habits/todos with their completion status
- Mood entries with notes
- Section organization

Use this context to provide personalized support and insights.`

// recentNoteCap limits how many mood entries are surfaced to the model.
const recentNoteCap = 5

// Message is one turn of the conversation in the gateway's wire shape.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Todo, Divider, and Note mirror the client-facing record shapes of the
// persistence boundary, which is also how context arrives in chat requests.
type Todo struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	DividerID   string   `json:"dividerId"`
	Completions []string `json:"completions"`
}

type Divider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Note struct {
	Date string `json:"date"`
	Mood string `json:"mood"`
	Note string `json:"note"`
}

type Context struct {
	Todos    []Todo    `json:"todos"`
	Dividers []Divider `json:"dividers"`
	Notes    []Note    `json:"notes"`
}

// BuildContextMessage renders the user's habit and mood state as the text
// block appended to the system prompt: habits grouped per section with their
// completions/7 ratio, then the most recent mood entries.
func BuildContextMessage(userContext Context) string {
	var builder strings.Builder

	if len(userContext.Todos) > 0 {
		builder.WriteString("\n\n**User's Habits:**\n")
		for _, divider := range userContext.Dividers {
			sectionTodos := make([]Todo, 0)
			for _, todo := range userContext.Todos {
				if todo.DividerID == divider.ID {
					sectionTodos = append(sectionTodos, todo)
				}
			}
			if len(sectionTodos) == 0 {
				continue
			}
			fmt.Fprintf(&builder, "\n%s:\n", divider.Name)
			for _, todo := range sectionTodos {
				fmt.Fprintf(&builder, "- %s (%d/7 days completed)\n", todo.Text, len(todo.Completions))
			}
		}
	}

	if len(userContext.Notes) > 0 {
		builder.WriteString("\n\n**Recent Mood Entries:**\n")
		notes := userContext.Notes
		if len(notes) > recentNoteCap {
			notes = notes[:recentNoteCap]
		}
		for _, note := range notes {
			fmt.Fprintf(&builder, "- %s: %s", note.Date, note.Mood)
			if note.Note != "" {
				fmt.Fprintf(&builder, " - %q", note.Note)
			}
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// SystemMessageWithContext concatenates the fixed prompt and the rendered
// user context.
func SystemMessageWithContext(userContext Context) string {
	return SystemPrompt + BuildContextMessage(userContext)
}
