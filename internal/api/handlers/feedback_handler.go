package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/practicehub/feedback-api/internal/application/services"
	"github.com/practicehub/feedback-api/internal/domain/entities"
	apperrors "github.com/practicehub/feedback-api/pkg/errors"
)

// FeedbackSubmitter defines the pipeline operation used by the handler.
type FeedbackSubmitter interface {
	Submit(ctx context.Context, input services.SubmitFeedbackInput, clientIdentity string) (*entities.Feedback, error)
}

// FeedbackHandler handles feedback submissions.
type FeedbackHandler struct {
	service FeedbackSubmitter
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(service FeedbackSubmitter) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type feedbackRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
	SourceURL    string `json:"source_url"`
}

// SubmitFeedback handles POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var payload feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	input := services.SubmitFeedbackInput{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		Organization: payload.Organization,
		Message:      payload.Message,
		SourceURL:    payload.SourceURL,
	}

	feedback, err := h.service.Submit(r.Context(), input, clientIdentity(r))
	if err != nil {
		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeRateLimited:
			respondWithError(w, http.StatusTooManyRequests, "too many requests, please try again later")
		case apperrors.ErrorTypeValidation:
			respondWithJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
				"detail": apperrors.FieldsOf(err),
			})
		default:
			// Internal detail stays server-side; the caller gets an opaque message.
			respondWithError(w, http.StatusInternalServerError, "an error occurred while processing the request")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"id":     feedback.ID,
	})
}

// clientIdentity derives the rate-limit key for a request: first entry of
// X-Forwarded-For, else the transport peer address, else "unknown".
func clientIdentity(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
