package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/critiqs-site/focus-hub/internal/chat"
	"github.com/critiqs-site/focus-hub/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithRelay(t, nil)
}

func newTestAppWithRelay(t *testing.T, relay *chat.Relay) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "focushub-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(database, "test-secret-key", time.UTC, relay, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authToken string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authToken != "" {
		request.AddCookie(&http.Cookie{Name: authCookieName, Value: authToken})
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// registerTestUser signs up a fresh account and returns its auth token.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"password": "Secret123",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Value
		}
	}
	t.Fatal("register response did not set the auth cookie")
	return ""
}

// createTestSection makes a section and returns its id.
func createTestSection(t *testing.T, app *fiber.App, authToken string, name string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/sections", authToken, fiber.Map{
		"name": name,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create section %q: status %d", name, response.StatusCode)
	}
	var view struct {
		ID string `json:"id"`
	}
	decodeJSON(t, response, &view)
	if view.ID == "" {
		t.Fatal("section response missing id")
	}
	return view.ID
}

// createTestHabit makes a habit in the given section and returns its id.
func createTestHabit(t *testing.T, app *fiber.App, authToken string, sectionID string, text string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/habits", authToken, fiber.Map{
		"text":      text,
		"dividerId": sectionID,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("create habit %q: status %d", text, response.StatusCode)
	}
	var view struct {
		ID string `json:"id"`
	}
	decodeJSON(t, response, &view)
	if view.ID == "" {
		t.Fatal("habit response missing id")
	}
	return view.ID
}
