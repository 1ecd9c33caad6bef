package api

import (
	"time"

	"github.com/critiqs-site/focus-hub/internal/chat"
	"github.com/critiqs-site/focus-hub/internal/db"
	"github.com/critiqs-site/focus-hub/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "focushub_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories      *db.Repositories
	authService       *services.AuthService
	habitService      *services.HabitService
	moodService       *services.MoodService
	onboardingService *services.OnboardingService
	relay             *chat.Relay
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, relay *chat.Relay, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:                database,
		secretKey:         []byte(secretKey),
		location:          location,
		cookieSecure:      cookieSecure,
		repositories:      repositories,
		authService:       services.NewAuthService(repositories.Users),
		habitService:      services.NewHabitService(repositories.Habits, repositories.Sections),
		moodService:       services.NewMoodService(repositories.MoodNotes),
		onboardingService: services.NewOnboardingService(repositories.Users),
		relay:             relay,
	}
}

// today returns midnight of the current calendar day in the server location.
func (handler *Handler) today() time.Time {
	return services.DateAtLocation(time.Now(), handler.location)
}
