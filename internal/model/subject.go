package model

import "time"

// Subject represents an examinable subject (e.g. Mathematics, English Language).
type Subject struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" binding:"required,alphanum,min=2,max=10"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateSubjectRequest is the payload for updating a subject.
type UpdateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Code        string `json:"code" binding:"required,alphanum,min=2,max=10"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}
