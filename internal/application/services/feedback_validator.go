package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/practicehub/feedback-api/internal/domain/entities"
)

const (
	maxNameLen         = 100
	maxPhoneLen        = 50
	maxOrganizationLen = 200
	maxSourceURLLen    = 500
	minMessageLen      = 10
)

// SubmitFeedbackInput is the raw submission payload before validation.
type SubmitFeedbackInput struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Message      string
	SourceURL    string
}

// FeedbackValidator turns a raw payload into a well-formed feedback entity
// or a field→message error map.
type FeedbackValidator interface {
	Validate(input SubmitFeedbackInput) (*entities.Feedback, map[string]string)
}

// PayloadValidator applies the feedback field constraints.
type PayloadValidator struct{}

// NewPayloadValidator creates a payload validator.
func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{}
}

// Validate checks every field and collects all violations rather than
// stopping at the first one.
func (v *PayloadValidator) Validate(input SubmitFeedbackInput) (*entities.Feedback, map[string]string) {
	fieldErrors := make(map[string]string)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrors["name"] = "name is required"
	} else if utf8.RuneCountInString(name) > maxNameLen {
		fieldErrors["name"] = "name must be at most 100 characters"
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			fieldErrors["email"] = "email must be a valid email address"
		}
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		fieldErrors["phone"] = "phone is required"
	} else if utf8.RuneCountInString(phone) > maxPhoneLen {
		fieldErrors["phone"] = "phone must be at most 50 characters"
	}

	organization := strings.TrimSpace(input.Organization)
	if utf8.RuneCountInString(organization) > maxOrganizationLen {
		fieldErrors["organization"] = "organization must be at most 200 characters"
	}

	message := strings.TrimSpace(input.Message)
	if utf8.RuneCountInString(message) < minMessageLen {
		fieldErrors["message"] = "message must be at least 10 characters"
	}

	sourceURL := strings.TrimSpace(input.SourceURL)
	if utf8.RuneCountInString(sourceURL) > maxSourceURLLen {
		fieldErrors["source_url"] = "source_url must be at most 500 characters"
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &entities.Feedback{
		Name:         name,
		Email:        optionalString(email),
		Phone:        phone,
		Organization: optionalString(organization),
		Message:      message,
		SourceURL:    optionalString(sourceURL),
	}, nil
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
