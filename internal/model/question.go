package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionStatus enumerates the lifecycle states of a question.
type QuestionStatus string

const (
	QuestionStatusDraft     QuestionStatus = "draft"
	QuestionStatusPublished QuestionStatus = "published"
	QuestionStatusArchived  QuestionStatus = "archived"
)

// Difficulty tags a question's difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// OptionLetters are the valid option slots, in display order.
var OptionLetters = []string{"A", "B", "C", "D", "E"}

// Question represents a single multiple-choice past question.
// Options maps option letters (A–E) to their text; between two and five
// entries are present.
type Question struct {
	ID            uuid.UUID         `json:"id"`
	TopicID       uuid.UUID         `json:"topic_id"`
	PassageID     *uuid.UUID        `json:"passage_id,omitempty"`
	Prompt        string            `json:"prompt"`
	Options       map[string]string `json:"options"`
	CorrectOption string            `json:"correct_option,omitempty"`
	Explanation   string            `json:"explanation,omitempty"`
	Hint          string            `json:"hint,omitempty"`
	Difficulty    Difficulty        `json:"difficulty"`
	ExamBoard     string            `json:"exam_board,omitempty"`
	ExamYear      *int              `json:"exam_year,omitempty"`
	Status        QuestionStatus    `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// QuestionForLearner is a question as delivered inside a session paper:
// no correct option, no explanation. Hints are fetched explicitly so their
// usage can be tracked.
type QuestionForLearner struct {
	ID        uuid.UUID         `json:"id"`
	TopicID   uuid.UUID         `json:"topic_id"`
	PassageID *uuid.UUID        `json:"passage_id,omitempty"`
	Prompt    string            `json:"prompt"`
	Options   map[string]string `json:"options"`
	ExamBoard string            `json:"exam_board,omitempty"`
	ExamYear  *int              `json:"exam_year,omitempty"`
}

// ForLearner strips grading fields from a question.
func (q *Question) ForLearner() QuestionForLearner {
	return QuestionForLearner{
		ID:        q.ID,
		TopicID:   q.TopicID,
		PassageID: q.PassageID,
		Prompt:    q.Prompt,
		Options:   q.Options,
		ExamBoard: q.ExamBoard,
		ExamYear:  q.ExamYear,
	}
}

// CreateQuestionRequest is the payload for adding a question to a topic.
type CreateQuestionRequest struct {
	Prompt        string            `json:"prompt" binding:"required,min=1,max=4000"`
	PassageID     *uuid.UUID        `json:"passage_id" binding:"omitempty"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectOption string            `json:"correct_option" binding:"required,answeroption"`
	Explanation   string            `json:"explanation" binding:"omitempty,max=4000"`
	Hint          string            `json:"hint" binding:"omitempty,max=2000"`
	Difficulty    string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	ExamBoard     string            `json:"exam_board" binding:"omitempty,max=10"`
	ExamYear      *int              `json:"exam_year" binding:"omitempty,min=1970,max=2100"`
}

// UpdateQuestionRequest is the payload for updating a draft question.
type UpdateQuestionRequest struct {
	Prompt        string            `json:"prompt" binding:"required,min=1,max=4000"`
	PassageID     *uuid.UUID        `json:"passage_id" binding:"omitempty"`
	Options       map[string]string `json:"options" binding:"required"`
	CorrectOption string            `json:"correct_option" binding:"required,answeroption"`
	Explanation   string            `json:"explanation" binding:"omitempty,max=4000"`
	Hint          string            `json:"hint" binding:"omitempty,max=2000"`
	Difficulty    string            `json:"difficulty" binding:"required,oneof=easy medium hard"`
	ExamBoard     string            `json:"exam_board" binding:"omitempty,max=10"`
	ExamYear      *int              `json:"exam_year" binding:"omitempty,min=1970,max=2100"`
}

// ValidateOptions checks an option map against the allowed letter slots and
// verifies the correct option is among them. Returns field errors keyed the
// same way validator field errors are.
func ValidateOptions(options map[string]string, correct string) map[string]string {
	fields := make(map[string]string)

	if len(options) < 2 {
		fields["options"] = "at least two options are required"
	}
	if len(options) > len(OptionLetters) {
		fields["options"] = "at most five options are allowed"
	}

	valid := make(map[string]bool, len(OptionLetters))
	for _, l := range OptionLetters {
		valid[l] = true
	}
	for letter, text := range options {
		if !valid[letter] {
			fields["options"] = "option keys must be letters A through E"
			break
		}
		if text == "" {
			fields["options"] = "option text must not be empty"
			break
		}
	}

	if _, ok := options[correct]; !ok {
		fields["correct_option"] = "correct option must reference a provided option"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
