package providers

import (
	"context"

	"github.com/practicehub/feedback-api/internal/domain/entities"
)

// Notifier delivers a best-effort notification for a newly stored feedback
// record. A returned error means the single delivery attempt failed; callers
// decide whether to care.
type Notifier interface {
	Notify(ctx context.Context, feedback *entities.Feedback) error
}
