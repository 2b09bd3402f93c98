package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionMode enumerates the ways a learner can work through questions.
type SessionMode string

const (
	// ModePractice grades each answer immediately and allows hints.
	ModePractice SessionMode = "practice"
	// ModeTest withholds grading until submission.
	ModeTest SessionMode = "test"
	// ModeTimed is test mode with a countdown clock streamed over WebSocket.
	ModeTimed SessionMode = "timed"
)

// SessionStatus enumerates learning session states. Completed and abandoned
// are terminal; paused sessions may resume.
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusPaused     SessionStatus = "paused"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusAbandoned  SessionStatus = "abandoned"
)

// Distribution maps topic ids to the number of questions drawn from each.
type Distribution map[uuid.UUID]int

// LearningSession represents one attempt at a set of questions.
// Exactly one of UserID and GuestID is set.
type LearningSession struct {
	ID                uuid.UUID     `json:"id"`
	UserID            *int          `json:"user_id,omitempty"`
	GuestID           *uuid.UUID    `json:"guest_id,omitempty"`
	SubjectID         int           `json:"subject_id"`
	TopicIDs          []uuid.UUID   `json:"topic_ids"`
	Mode              SessionMode   `json:"mode"`
	TotalQuestions    int           `json:"total_questions"`
	QuestionsAnswered int           `json:"questions_answered"`
	QuestionsCorrect  int           `json:"questions_correct"`
	Distribution      Distribution  `json:"distribution,omitempty"`
	DurationMinutes   *int          `json:"duration_minutes,omitempty"`
	Score             *float64      `json:"score,omitempty"`
	TimeSpentSecs     *int          `json:"time_spent_secs,omitempty"`
	Status            SessionStatus `json:"status"`
	StartedAt         time.Time     `json:"started_at"`
	CompletedAt       *time.Time    `json:"completed_at,omitempty"`
}

// IsGuest reports whether the session belongs to an unauthenticated visitor.
func (s *LearningSession) IsGuest() bool {
	return s.UserID == nil
}

// Terminal reports whether the session can no longer change state.
func (s *LearningSession) Terminal() bool {
	return s.Status == SessionStatusCompleted || s.Status == SessionStatusAbandoned
}

// CreateSessionRequest is the payload for starting a session. Distribution is
// optional; when omitted the server plans an even split across topics.
type CreateSessionRequest struct {
	SubjectID       int            `json:"subject_id" binding:"required"`
	TopicIDs        []uuid.UUID    `json:"topic_ids" binding:"required,min=1,max=10"`
	Mode            string         `json:"mode" binding:"required,oneof=practice test timed"`
	TotalQuestions  int            `json:"total_questions" binding:"required,min=1,max=100"`
	Distribution    map[string]int `json:"distribution" binding:"omitempty"`
	DurationMinutes *int           `json:"duration_minutes" binding:"required_if=Mode timed,omitempty,min=1,max=240"`
}

// SessionView is the full state a client needs to render a session: the
// session record, its reference data, the ordered paper and any previously
// recorded answer state.
type SessionView struct {
	Session   *LearningSession     `json:"session"`
	Subject   *Subject             `json:"subject"`
	Topics    []Topic              `json:"topics"`
	Questions []QuestionForLearner `json:"questions"`
	Passages  []Passage            `json:"passages,omitempty"`
	Answers   map[string]string    `json:"answers"`
	Flagged   []string             `json:"flagged"`
}

// SessionProgress is the derived counts for the progress strip.
type SessionProgress struct {
	Answered   int `json:"answered"`
	Unanswered int `json:"unanswered"`
	Flagged    int `json:"flagged"`
	Total      int `json:"total"`
}

// SessionResult is returned by submission.
type SessionResult struct {
	SessionID      uuid.UUID `json:"session_id"`
	TotalQuestions int       `json:"total_questions"`
	Answered       int       `json:"answered"`
	Correct        int       `json:"correct"`
	Score          float64   `json:"score"`
	TimeSpentSecs  int       `json:"time_spent_secs"`
}
