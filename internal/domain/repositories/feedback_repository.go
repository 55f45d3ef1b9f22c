package repositories

import (
	"context"

	"github.com/practicehub/feedback-api/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback persistence. Create
// either fully persists the record, populating ID and CreatedAt, or leaves
// the store untouched.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
}
