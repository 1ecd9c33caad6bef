package services

import (
	"errors"
	"strings"
	"time"

	"github.com/critiqs-site/focus-hub/internal/models"
	"github.com/google/uuid"
)

var (
	ErrOnboardingNameRequired      = errors.New("onboarding name required")
	ErrOnboardingInterestsRequired = errors.New("onboarding interests required")
	ErrOnboardingUnknownInterest   = errors.New("onboarding interest unknown")
)

type OnboardingUserStore interface {
	FindByID(userID uint) (models.User, error)
	CompleteOnboarding(userID uint, displayName string, interests []string, sections []models.Section, habits []models.Habit) error
}

// OnboardingService validates the profile answers and, on first completion,
// plants the starter sections and habits.
type OnboardingService struct {
	users OnboardingUserStore
}

func NewOnboardingService(users OnboardingUserStore) *OnboardingService {
	return &OnboardingService{users: users}
}

func NormalizeOnboardingInput(rawName string, rawInterests []string) (string, []string, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", nil, ErrOnboardingNameRequired
	}

	catalog := make(map[string]bool)
	for _, interest := range models.InterestCatalog() {
		catalog[interest] = true
	}

	seen := make(map[string]bool)
	interests := make([]string, 0, len(rawInterests))
	for _, raw := range rawInterests {
		interest := strings.TrimSpace(raw)
		if interest == "" || seen[interest] {
			continue
		}
		if !catalog[interest] {
			return "", nil, ErrOnboardingUnknownInterest
		}
		seen[interest] = true
		interests = append(interests, interest)
	}
	if len(interests) == 0 {
		return "", nil, ErrOnboardingInterestsRequired
	}

	return name, interests, nil
}

// CompleteOnboarding saves the profile and seeds starter data. Seeds are
// planted only on the first completion; re-running only refreshes the
// profile fields.
func (service *OnboardingService) CompleteOnboarding(userID uint, rawName string, rawInterests []string, now time.Time) error {
	name, interests, err := NormalizeOnboardingInput(rawName, rawInterests)
	if err != nil {
		return err
	}

	user, err := service.users.FindByID(userID)
	if err != nil {
		return err
	}

	var sections []models.Section
	var habits []models.Habit
	if !user.OnboardingComplete {
		sections, habits = BuildSeedData(userID, now)
	}

	return service.users.CompleteOnboarding(userID, name, interests, sections, habits)
}

// BuildSeedData materializes the default sections and starter habits for a
// fresh account, dated to the signup day.
func BuildSeedData(userID uint, now time.Time) ([]models.Section, []models.Habit) {
	createdOn := DateAtLocation(now, now.Location())
	sections := make([]models.Section, 0)
	habits := make([]models.Habit, 0)

	for _, seed := range models.DefaultSeedSections() {
		section := models.Section{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      seed.Name,
			Icon:      seed.Icon,
			CreatedAt: now,
		}
		sections = append(sections, section)

		for _, habitSeed := range seed.Seeds {
			habits = append(habits, models.Habit{
				ID:          uuid.NewString(),
				UserID:      userID,
				SectionID:   section.ID,
				Text:        habitSeed.Text,
				Icon:        habitSeed.Icon,
				Completions: []string{},
				CreatedOn:   createdOn,
			})
		}
	}

	return sections, habits
}
