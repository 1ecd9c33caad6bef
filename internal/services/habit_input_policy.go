package services

import (
	"errors"
	"strings"

	"github.com/critiqs-site/focus-hub/internal/models"
)

var (
	ErrHabitTextEmpty   = errors.New("habit text empty")
	ErrSectionNameEmpty = errors.New("section name empty")
)

func NormalizeHabitText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrHabitTextEmpty
	}
	return text, nil
}

func NormalizeSectionName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrSectionNameEmpty
	}
	return name, nil
}

// NormalizeHabitIcon falls back to the default icon when none was picked.
func NormalizeHabitIcon(raw string) string {
	icon := strings.TrimSpace(raw)
	if icon == "" {
		return models.DefaultHabitIcon
	}
	return icon
}

func NormalizeSectionIcon(raw string) string {
	icon := strings.TrimSpace(raw)
	if icon == "" {
		return "Folder"
	}
	return icon
}
