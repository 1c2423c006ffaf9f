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

	"github.com/gofiber/fiber/v2"

	"github.com/mira-app/mira/internal/db"
)

const testSecretKey = "test-secret-key-0123456789abcdefghij"

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "mira-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})

	handler := NewHandler(database, testSecretKey, time.UTC, false)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

// registerTestUser creates an account through the public endpoint and
// returns the session cookie for follow-up requests.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, _, cookie := jsonRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":       email,
		"password":    "correct horse",
		"displayName": "Test User",
	})
	if status != http.StatusCreated {
		t.Fatalf("register expected 201, got %d", status)
	}
	if cookie == "" {
		t.Fatal("register did not set a session cookie")
	}
	return cookie
}

// jsonRequest performs a request with an optional JSON body and session
// cookie. It returns the status, the decoded body and any session cookie
// set by the response.
func jsonRequest(t *testing.T, app *fiber.App, method string, path string, cookie string, payload any) (int, map[string]any, string) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("%s %s encode body: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}

	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, raw, err)
		}
	}

	return response.StatusCode, decoded, sessionCookie(response)
}

func sessionCookie(response *http.Response) string {
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	return ""
}

func jsonGET(t *testing.T, app *fiber.App, path string, cookie string) (int, map[string]any) {
	t.Helper()
	status, body, _ := jsonRequest(t, app, http.MethodGet, path, cookie, nil)
	return status, body
}
