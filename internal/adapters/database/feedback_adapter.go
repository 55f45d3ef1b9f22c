package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/practicehub/feedback-api/internal/domain/entities"
	"github.com/practicehub/feedback-api/internal/domain/repositories"
	"github.com/practicehub/feedback-api/internal/infrastructure/clients/postgres"
	apperrors "github.com/practicehub/feedback-api/pkg/errors"
)

// FeedbackAdapter implements feedback persistence in Postgres.
type FeedbackAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFeedbackAdapter creates a new feedback adapter.
func NewFeedbackAdapter(client *postgres.Client) repositories.FeedbackRepository {
	return &FeedbackAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a feedback record inside a transaction. The insert either
// commits fully, populating ID and CreatedAt from the database, or rolls
// back so no partial row survives.
func (a *FeedbackAdapter) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewInternalError("feedback is nil", fmt.Errorf("feedback is nil"))
	}

	record := goqu.Record{
		"name":         feedback.Name,
		"email":        nullableString(feedback.Email),
		"phone":        feedback.Phone,
		"organization": nullableString(feedback.Organization),
		"message":      feedback.Message,
		"source_url":   nullableString(feedback.SourceURL),
	}

	query, args, err := a.db.Insert("feedback_entries").
		Rows(record).
		Returning("id", "created_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feedback insert query", err)
	}

	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin feedback transaction", err)
	}

	if err := tx.QueryRowContext(ctx, query, args...).Scan(&feedback.ID, &feedback.CreatedAt); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return apperrors.NewInternalError("failed to roll back feedback insert", rbErr)
		}
		return apperrors.NewInternalError("failed to create feedback", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit feedback insert", err)
	}

	return nil
}

func nullableString(value *string) sql.NullString {
	if value == nil || *value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
