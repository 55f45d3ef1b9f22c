package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/practicehub/feedback-api/internal/application/services"
	"github.com/practicehub/feedback-api/internal/domain/entities"
	apperrors "github.com/practicehub/feedback-api/pkg/errors"
)

type stubLimiter struct {
	allowed    bool
	identities []string
}

func (l *stubLimiter) Allow(identity string) bool {
	l.identities = append(l.identities, identity)
	return l.allowed
}

type stubRepo struct {
	err     error
	nextID  int64
	created []*entities.Feedback
}

func (r *stubRepo) Create(_ context.Context, feedback *entities.Feedback) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	feedback.ID = r.nextID
	feedback.CreatedAt = time.Now().UTC()
	r.created = append(r.created, feedback)
	return nil
}

type stubNotifier struct {
	err      error
	notified []*entities.Feedback
}

func (n *stubNotifier) Notify(_ context.Context, feedback *entities.Feedback) error {
	n.notified = append(n.notified, feedback)
	return n.err
}

func validInput() services.SubmitFeedbackInput {
	return services.SubmitFeedbackInput{
		Name:    "Jane",
		Phone:   "555-0100",
		Message: "Please add dark mode support",
	}
}

func newService(limiter *stubLimiter, repo *stubRepo, notifier *stubNotifier) *services.FeedbackService {
	return services.NewFeedbackService(
		limiter,
		services.NewPayloadValidator(),
		repo,
		notifier,
		nil,
		zerolog.Nop(),
	)
}

func TestFeedbackService_Submit_Success(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	service := newService(limiter, repo, notifier)

	feedback, err := service.Submit(context.Background(), validInput(), "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), feedback.ID)
	assert.False(t, feedback.CreatedAt.IsZero())
	assert.Equal(t, []string{"10.0.0.1"}, limiter.identities)
	assert.Len(t, repo.created, 1)
	assert.Len(t, notifier.notified, 1)
}

func TestFeedbackService_Submit_RateLimited(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	service := newService(limiter, repo, notifier)

	_, err := service.Submit(context.Background(), validInput(), "10.0.0.1")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrorTypeRateLimited, apperrors.TypeOf(err))
	// Rejection happens before validation and persistence
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.notified)
}

func TestFeedbackService_Submit_ShortMessageNeverReachesStore(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	service := newService(limiter, repo, notifier)

	input := validInput()
	input.Message = "too short"

	_, err := service.Submit(context.Background(), input, "10.0.0.1")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Contains(t, apperrors.FieldsOf(err), "message")
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.notified)
}

func TestFeedbackService_Submit_PersistenceFailure(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	repo := &stubRepo{err: errors.New("connection reset")}
	notifier := &stubNotifier{}
	service := newService(limiter, repo, notifier)

	_, err := service.Submit(context.Background(), validInput(), "10.0.0.1")
	require.Error(t, err)

	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	// Nothing stored, no notification attempted
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.notified)
}

func TestFeedbackService_Submit_NotifierFailureStillSucceeds(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	repo := &stubRepo{}
	notifier := &stubNotifier{err: errors.New("webhook unreachable")}
	service := newService(limiter, repo, notifier)

	feedback, err := service.Submit(context.Background(), validInput(), "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), feedback.ID)
	assert.Len(t, repo.created, 1)
	assert.Len(t, notifier.notified, 1)
}

func TestFeedbackService_Submit_UniqueIDs(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	repo := &stubRepo{}
	notifier := &stubNotifier{}
	service := newService(limiter, repo, notifier)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		feedback, err := service.Submit(context.Background(), validInput(), "10.0.0.1")
		require.NoError(t, err)
		assert.False(t, seen[feedback.ID], "id %d assigned twice", feedback.ID)
		seen[feedback.ID] = true
	}
}
