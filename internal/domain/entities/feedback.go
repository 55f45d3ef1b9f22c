package entities

import "time"

// Feedback is one submission from the public feedback form. ID and CreatedAt
// are assigned by the store on a successful create and immutable afterwards.
type Feedback struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        *string   `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Organization *string   `json:"organization" db:"organization"`
	Message      string    `json:"message" db:"message"`
	SourceURL    *string   `json:"source_url" db:"source_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
