package notifications_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicehub/feedback-api/internal/domain/entities"
	"github.com/practicehub/feedback-api/internal/infrastructure/notifications"
)

func strPtr(s string) *string {
	return &s
}

func testFeedback() *entities.Feedback {
	return &entities.Feedback{
		ID:        7,
		Name:      "Jane",
		Email:     strPtr("jane@example.com"),
		Phone:     "555-0100",
		Message:   "Please add dark mode support",
		CreatedAt: time.Now(),
	}
}

func TestWebhookNotifier_PostsJSONPayload(t *testing.T) {
	var (
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := notifications.NewWebhookNotifier(server.URL, 5*time.Second, zerolog.Nop())

	err := notifier.Notify(context.Background(), testFeedback())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, float64(7), payload["id"])
	assert.Equal(t, "Jane", payload["name"])
	assert.Equal(t, "jane@example.com", payload["email"])
	assert.Equal(t, "555-0100", payload["phone"])
	assert.Equal(t, "Please add dark mode support", payload["message"])
	assert.Nil(t, payload["organization"])
	// created_at is not part of the wire contract
	assert.NotContains(t, payload, "created_at")
}

func TestWebhookNotifier_IgnoresErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := notifications.NewWebhookNotifier(server.URL, 5*time.Second, zerolog.Nop())

	// Non-2xx responses are not treated as delivery failures
	assert.NoError(t, notifier.Notify(context.Background(), testFeedback()))
}

func TestWebhookNotifier_UnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	notifier := notifications.NewWebhookNotifier(server.URL, time.Second, zerolog.Nop())

	assert.Error(t, notifier.Notify(context.Background(), testFeedback()))
}

func TestWebhookNotifier_MissingURLSkipsCall(t *testing.T) {
	notifier := notifications.NewWebhookNotifier("", time.Second, zerolog.Nop())

	assert.NoError(t, notifier.Notify(context.Background(), testFeedback()))
}

func TestConsoleNotifier_NeverFails(t *testing.T) {
	notifier := notifications.NewConsoleNotifier(zerolog.Nop())

	assert.NoError(t, notifier.Notify(context.Background(), testFeedback()))
}
