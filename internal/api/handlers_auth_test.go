package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterCreatesAccountAndSession(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "Ada@Example.com",
		"password": "Secret123",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", response.StatusCode)
	}

	var payload struct {
		OK      bool `json:"ok"`
		Profile struct {
			Email              string   `json:"email"`
			Interests          []string `json:"interests"`
			OnboardingComplete bool     `json:"onboarding_complete"`
		} `json:"profile"`
	}
	decodeJSON(t, response, &payload)
	if !payload.OK {
		t.Fatal("expected ok=true")
	}
	if payload.Profile.Email != "ada@example.com" {
		t.Fatalf("email = %q, want normalized form", payload.Profile.Email)
	}
	if payload.Profile.OnboardingComplete {
		t.Fatal("fresh account must not be onboarded")
	}
	if payload.Profile.Interests == nil {
		t.Fatal("interests must serialize as an empty list, not null")
	}

	var sessionCookie *http.Cookie
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil {
		t.Fatal("auth cookie not set")
	}
	if !sessionCookie.HttpOnly {
		t.Fatal("auth cookie must be http-only")
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	cases := []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"}
	for _, password := range cases {
		response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"email":    "ada@example.com",
			"password": password,
		})
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("password %q: status = %d, want 400", password, response.StatusCode)
		}
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "ada@example.com")

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    "ADA@example.com",
		"password": "Secret123",
	})
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", response.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "ada@example.com")

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    " ADA@Example.com ",
		"password": "Secret123",
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}
	found := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("login must set the auth cookie")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "ada@example.com")

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "ada@example.com",
		"password": "WrongPass1",
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", response.StatusCode)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "Secret123",
	})
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", response.StatusCode)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authToken := registerTestUser(t, app, "ada@example.com")

	response := performJSON(t, app, http.MethodPost, "/api/auth/logout", authToken, nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}
	cleared := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("logout must clear the auth cookie")
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/profile"},
		{method: http.MethodGet, path: "/api/sections"},
		{method: http.MethodGet, path: "/api/habits"},
		{method: http.MethodGet, path: "/api/notes"},
		{method: http.MethodPost, path: "/api/chat"},
	}
	for _, route := range paths {
		response := performJSON(t, app, route.method, route.path, "", nil)
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d, want 401", route.method, route.path, response.StatusCode)
		}
	}
}

func TestBearerHeaderAuthenticates(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	authToken := registerTestUser(t, app, "ada@example.com")

	request := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+authToken)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performJSON(t, app, http.MethodGet, "/api/profile", "not-a-jwt", nil)
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", response.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response := performJSON(t, app, http.MethodGet, "/healthz", "", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", response.StatusCode)
	}
}
