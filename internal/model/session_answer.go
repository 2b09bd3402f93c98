package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionAnswer is the persisted record of one answered question within a
// session. Written once per question at submission (test/timed) or at answer
// time (practice); never for guest sessions.
type SessionAnswer struct {
	ID             uuid.UUID `json:"id"`
	SessionID      uuid.UUID `json:"session_id"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption string    `json:"selected_option"`
	IsCorrect      bool      `json:"is_correct"`
	TimeSpentSecs  int       `json:"time_spent_secs"`
	HintUsed       bool      `json:"hint_used"`
	SolutionViewed bool      `json:"solution_viewed"`
	CreatedAt      time.Time `json:"created_at"`
}

// SelectAnswerRequest is the payload for recording an option choice.
type SelectAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" binding:"required"`
	Option     string    `json:"option" binding:"required,answeroption"`
}

// SelectAnswerResult is returned after recording an answer. Grading fields
// are only populated in practice mode.
type SelectAnswerResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Option        string    `json:"option"`
	Answered      int       `json:"answered"`
	IsCorrect     *bool     `json:"is_correct,omitempty"`
	CorrectOption string    `json:"correct_option,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
	// GuestRemaining is how many free questions a guest has left, nil for
	// signed-in learners.
	GuestRemaining *int `json:"guest_remaining,omitempty"`
}
