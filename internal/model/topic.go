package model

import (
	"time"

	"github.com/google/uuid"
)

// Topic represents a syllabus topic within a subject.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	SubjectID   int       `json:"subject_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	// QuestionCount is the number of published questions, populated on listing.
	QuestionCount int       `json:"question_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateTopicRequest is the payload for creating a topic under a subject.
type CreateTopicRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Position    int    `json:"position" binding:"min=0"`
}

// UpdateTopicRequest is the payload for updating a topic.
type UpdateTopicRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=150"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Position    int    `json:"position" binding:"min=0"`
}
