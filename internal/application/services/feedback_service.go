package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/practicehub/feedback-api/internal/domain/entities"
	"github.com/practicehub/feedback-api/internal/domain/providers"
	"github.com/practicehub/feedback-api/internal/domain/repositories"
	"github.com/practicehub/feedback-api/internal/infrastructure/observability"
	apperrors "github.com/practicehub/feedback-api/pkg/errors"
)

// RateLimiter admits or rejects a request for a client identity.
type RateLimiter interface {
	Allow(identity string) bool
}

// FeedbackService orchestrates the ingestion pipeline: admission control,
// validation, persistence, best-effort notification. Each step is a hard
// gate; a failure stops the pipeline and no later step runs.
type FeedbackService struct {
	limiter   RateLimiter
	validator FeedbackValidator
	repo      repositories.FeedbackRepository
	notifier  providers.Notifier
	metrics   *observability.Metrics
	logger    zerolog.Logger
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(
	limiter RateLimiter,
	validator FeedbackValidator,
	repo repositories.FeedbackRepository,
	notifier providers.Notifier,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		limiter:   limiter,
		validator: validator,
		repo:      repo,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// Submit runs one submission through the pipeline. On success the returned
// record carries the store-assigned ID and CreatedAt. The notification
// outcome never changes the result: by the time Notify runs the record is
// durably persisted and the caller's answer is already decided.
func (s *FeedbackService) Submit(ctx context.Context, input SubmitFeedbackInput, clientIdentity string) (*entities.Feedback, error) {
	if !s.limiter.Allow(clientIdentity) {
		observability.RecordRateLimitRejection(ctx, s.metrics)
		s.logger.Warn().Str("client", clientIdentity).Msg("feedback submission rate limited")
		return nil, apperrors.NewRateLimitedError("too many requests, please try again later")
	}

	feedback, fieldErrors := s.validator.Validate(input)
	if fieldErrors != nil {
		return nil, apperrors.NewValidationError("invalid feedback payload", fieldErrors)
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		s.logger.Error().Err(err).Str("client", clientIdentity).Msg("failed to persist feedback")
		return nil, apperrors.NewInternalError("failed to process feedback submission", err)
	}
	observability.RecordFeedbackCreated(ctx, s.metrics)

	// Best-effort: the delivery result is logged and deliberately discarded.
	if err := s.notifier.Notify(ctx, feedback); err != nil {
		observability.RecordNotifyFailure(ctx, s.metrics)
		s.logger.Warn().Err(err).Int64("feedback_id", feedback.ID).Msg("feedback notification failed")
	}

	return feedback, nil
}
