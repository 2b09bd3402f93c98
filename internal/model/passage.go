package model

import (
	"time"

	"github.com/google/uuid"
)

// Passage is a shared reading text referenced by multiple questions
// (comprehension passages, data tables rendered as text, etc.).
type Passage struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePassageRequest is the payload for creating a passage.
type CreatePassageRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Body  string `json:"body" binding:"required,min=1"`
}

// UpdatePassageRequest is the payload for updating a passage.
type UpdatePassageRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Body  string `json:"body" binding:"required,min=1"`
}
