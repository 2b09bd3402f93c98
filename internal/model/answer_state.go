package model

import "github.com/google/uuid"

// AnswerEntry is the per-question record inside an AnswerState: the chosen
// option plus the review/hint flags. One owned record per question, so the
// option and its flags can never drift apart.
type AnswerEntry struct {
	Option         string
	Flagged        bool
	HintUsed       bool
	SolutionViewed bool
}

// AnswerState is the in-flight answer sheet of one session. It is built from
// the session's Redis keys on load and mutated through the methods below;
// abandoning a session and starting a new one always begins empty.
type AnswerState struct {
	entries map[uuid.UUID]*AnswerEntry
}

// NewAnswerState returns an empty answer state.
func NewAnswerState() *AnswerState {
	return &AnswerState{entries: make(map[uuid.UUID]*AnswerEntry)}
}

func (s *AnswerState) entry(qid uuid.UUID) *AnswerEntry {
	e, ok := s.entries[qid]
	if !ok {
		e = &AnswerEntry{}
		s.entries[qid] = e
	}
	return e
}

// Select records the chosen option for a question, overwriting any previous
// choice. Returns true if this is the first answer for the question.
func (s *AnswerState) Select(qid uuid.UUID, option string) bool {
	e := s.entry(qid)
	first := e.Option == ""
	e.Option = option
	return first
}

// ToggleFlag flips the marked-for-review flag and returns the new value.
func (s *AnswerState) ToggleFlag(qid uuid.UUID) bool {
	e := s.entry(qid)
	e.Flagged = !e.Flagged
	return e.Flagged
}

// SetHintUsed records that the question's hint was viewed.
func (s *AnswerState) SetHintUsed(qid uuid.UUID) {
	s.entry(qid).HintUsed = true
}

// SetSolutionViewed records that the question's worked solution was viewed.
func (s *AnswerState) SetSolutionViewed(qid uuid.UUID) {
	s.entry(qid).SolutionViewed = true
}

// Get returns the entry for a question, or nil if none exists.
func (s *AnswerState) Get(qid uuid.UUID) *AnswerEntry {
	return s.entries[qid]
}

// Option returns the selected option for a question, or "" if unanswered.
func (s *AnswerState) Option(qid uuid.UUID) string {
	if e, ok := s.entries[qid]; ok {
		return e.Option
	}
	return ""
}

// AnsweredCount returns the number of questions with a recorded option.
func (s *AnswerState) AnsweredCount() int {
	n := 0
	for _, e := range s.entries {
		if e.Option != "" {
			n++
		}
	}
	return n
}

// UnansweredCount returns how many of total questions have no recorded option.
func (s *AnswerState) UnansweredCount(total int) int {
	n := total - s.AnsweredCount()
	if n < 0 {
		return 0
	}
	return n
}

// FlaggedCount returns the number of questions marked for review.
func (s *AnswerState) FlaggedCount() int {
	n := 0
	for _, e := range s.entries {
		if e.Flagged {
			n++
		}
	}
	return n
}

// Answers returns the question-id -> option map for all answered questions.
func (s *AnswerState) Answers() map[uuid.UUID]string {
	out := make(map[uuid.UUID]string, len(s.entries))
	for qid, e := range s.entries {
		if e.Option != "" {
			out[qid] = e.Option
		}
	}
	return out
}

// Flagged returns the ids of all questions marked for review.
func (s *AnswerState) Flagged() []uuid.UUID {
	var out []uuid.UUID
	for qid, e := range s.entries {
		if e.Flagged {
			out = append(out, qid)
		}
	}
	return out
}
