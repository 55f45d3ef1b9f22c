package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/practicehub/feedback-api/internal/domain/entities"
	"github.com/practicehub/feedback-api/internal/domain/providers"
)

// WebhookNotifier POSTs each new feedback record to a configured endpoint.
// Delivery is a single attempt bounded by the client timeout; the response
// status is not inspected and the body is discarded.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewWebhookNotifier creates a webhook notifier. An empty url is tolerated:
// Notify then logs a warning and skips the call.
func NewWebhookNotifier(url string, timeout time.Duration, logger zerolog.Logger) providers.Notifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// webhookPayload is the wire shape of a feedback notification. created_at is
// intentionally not part of the contract.
type webhookPayload struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	Phone        string  `json:"phone"`
	Organization *string `json:"organization"`
	Message      string  `json:"message"`
	SourceURL    *string `json:"source_url"`
}

// Notify delivers the record once. Transport errors are returned to the
// caller, which treats them as best-effort.
func (n *WebhookNotifier) Notify(ctx context.Context, feedback *entities.Feedback) error {
	if n.url == "" {
		n.logger.Warn().Msg("WEBHOOK_URL is not set, skipping webhook notification")
		return nil
	}

	body, err := json.Marshal(webhookPayload{
		ID:           feedback.ID,
		Name:         feedback.Name,
		Email:        feedback.Email,
		Phone:        feedback.Phone,
		Organization: feedback.Organization,
		Message:      feedback.Message,
		SourceURL:    feedback.SourceURL,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook notification: %w", err)
	}
	defer resp.Body.Close()

	n.logger.Info().Int64("feedback_id", feedback.ID).Int("status", resp.StatusCode).Msg("webhook notification sent")
	return nil
}
