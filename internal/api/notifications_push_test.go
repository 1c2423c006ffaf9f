package api

import (
	"net/http"
	"testing"
)

func TestNotificationsEmptyByDefault(t *testing.T) {
	app := setupTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com")

	status, body := jsonGET(t, app, "/api/notifications", cookie)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if notifications, ok := body["notifications"].([]any); !ok || len(notifications) != 0 {
		t.Fatalf("expected empty list, got %v", body)
	}

	_, dashboard := jsonGET(t, app, "/api/dashboard", cookie)
	counts, ok := dashboard["notifications"].(map[string]any)
	if !ok || counts["unread"] != float64(0) {
		t.Fatalf("expected zero unread, got %v", dashboard["notifications"])
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	app := setupTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com")

	status, _, _ := jsonRequest(t, app, http.MethodPost, "/api/notifications/read-all", cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestPushSubscriptionLifecycle(t *testing.T) {
	app := setupTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com")

	payload := map[string]any{
		"endpoint": "https://push.example.com/sub/abc",
		"keys":     map[string]any{"p256dh": "key-material", "auth": "auth-secret"},
	}

	status, created, _ := jsonRequest(t, app, http.MethodPost, "/api/push/subscriptions", cookie, payload)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%v)", status, created)
	}
	subscriptionID, ok := created["id"].(string)
	if !ok || subscriptionID == "" {
		t.Fatalf("expected subscription id, got %v", created)
	}

	// Re-registering the same endpoint refreshes instead of duplicating.
	status, refreshed, _ := jsonRequest(t, app, http.MethodPost, "/api/push/subscriptions", cookie, payload)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on re-register, got %d (%v)", status, refreshed)
	}
	if refreshed["id"] != subscriptionID {
		t.Fatalf("re-register must keep the id, got %v vs %v", refreshed["id"], subscriptionID)
	}

	status, _, _ = jsonRequest(t, app, http.MethodDelete, "/api/push/subscriptions/"+subscriptionID, cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("delete expected 200, got %d", status)
	}
}

func TestPushSubscriptionRequiresKeys(t *testing.T) {
	app := setupTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com")

	cases := []map[string]any{
		{"endpoint": ""},
		{"endpoint": "https://push.example.com/sub/abc"},
		{"endpoint": "https://push.example.com/sub/abc", "keys": map[string]any{"p256dh": "only-one"}},
	}

	for index, payload := range cases {
		status, _, _ := jsonRequest(t, app, http.MethodPost, "/api/push/subscriptions", cookie, payload)
		if status != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d", index, status)
		}
	}
}

func TestMarkNotificationReadRejectsBadID(t *testing.T) {
	app := setupTestApp(t)
	cookie := registerTestUser(t, app, "ada@example.com")

	status, _, _ := jsonRequest(t, app, http.MethodPost, "/api/notifications/abc/read", cookie, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}

	status, _, _ = jsonRequest(t, app, http.MethodPost, "/api/notifications/1/read", cookie, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for numeric id, got %d", status)
	}
}
