package model

import "time"

// ExamBoard represents an examination body whose past questions are catalogued
// (WAEC, JAMB, NECO, GCE and similar).
type ExamBoard struct {
	ID        int       `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateExamBoardRequest is the payload for creating an exam board.
type CreateExamBoardRequest struct {
	Code string `json:"code" binding:"required,alphanum,min=2,max=10"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateExamBoardRequest is the payload for updating an exam board.
type UpdateExamBoardRequest struct {
	Code string `json:"code" binding:"required,alphanum,min=2,max=10"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}
