package notifications

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/practicehub/feedback-api/internal/domain/entities"
	"github.com/practicehub/feedback-api/internal/domain/providers"
)

// ConsoleNotifier writes each new feedback record as a structured log line.
type ConsoleNotifier struct {
	logger zerolog.Logger
}

// NewConsoleNotifier creates a console notifier.
func NewConsoleNotifier(logger zerolog.Logger) providers.Notifier {
	return &ConsoleNotifier{logger: logger}
}

// Notify logs the record at info level. It never fails.
func (n *ConsoleNotifier) Notify(_ context.Context, feedback *entities.Feedback) error {
	event := n.logger.Info().
		Int64("id", feedback.ID).
		Str("name", feedback.Name).
		Str("phone", feedback.Phone).
		Str("message", feedback.Message)

	if feedback.Email != nil {
		event = event.Str("email", *feedback.Email)
	}
	if feedback.Organization != nil {
		event = event.Str("organization", *feedback.Organization)
	}
	if feedback.SourceURL != nil {
		event = event.Str("source_url", *feedback.SourceURL)
	}

	event.Msg("new feedback received")
	return nil
}
