package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestAnswerStateSelectOverwrites(t *testing.T) {
	s := NewAnswerState()
	qid := uuid.New()

	if first := s.Select(qid, "A"); !first {
		t.Fatal("expected first selection to report first=true")
	}
	if first := s.Select(qid, "C"); first {
		t.Fatal("expected re-selection to report first=false")
	}

	if got := s.Option(qid); got != "C" {
		t.Fatalf("expected option C after overwrite, got %q", got)
	}
	if got := s.AnsweredCount(); got != 1 {
		t.Fatalf("expected 1 answered question, got %d", got)
	}
}

func TestAnswerStateToggleFlagIdempotence(t *testing.T) {
	s := NewAnswerState()
	qid := uuid.New()

	if on := s.ToggleFlag(qid); !on {
		t.Fatal("first toggle should set the flag")
	}
	if off := s.ToggleFlag(qid); off {
		t.Fatal("second toggle should clear the flag")
	}
	if got := s.FlaggedCount(); got != 0 {
		t.Fatalf("expected no flags after double toggle, got %d", got)
	}
}

func TestAnswerStateFlagWithoutAnswer(t *testing.T) {
	s := NewAnswerState()
	qid := uuid.New()

	s.ToggleFlag(qid)

	if got := s.AnsweredCount(); got != 0 {
		t.Fatalf("flagging must not count as answering, got %d answered", got)
	}
	if got := s.FlaggedCount(); got != 1 {
		t.Fatalf("expected 1 flagged question, got %d", got)
	}
}

func TestAnswerStateCounts(t *testing.T) {
	s := NewAnswerState()
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()

	s.Select(q1, "A")
	s.Select(q2, "B")
	s.ToggleFlag(q2)
	s.ToggleFlag(q3)

	if got := s.AnsweredCount(); got != 2 {
		t.Errorf("answered = %d, want 2", got)
	}
	if got := s.UnansweredCount(5); got != 3 {
		t.Errorf("unanswered of 5 = %d, want 3", got)
	}
	if got := s.FlaggedCount(); got != 2 {
		t.Errorf("flagged = %d, want 2", got)
	}

	answers := s.Answers()
	if len(answers) != 2 || answers[q1] != "A" || answers[q2] != "B" {
		t.Errorf("unexpected answers map: %v", answers)
	}
}

func TestValidateOptions(t *testing.T) {
	ok := map[string]string{"A": "1", "B": "2", "C": "3", "D": "4"}
	if fields := ValidateOptions(ok, "B"); fields != nil {
		t.Fatalf("expected valid options, got %v", fields)
	}

	if fields := ValidateOptions(map[string]string{"A": "1"}, "A"); fields == nil {
		t.Fatal("expected error for a single option")
	}
	if fields := ValidateOptions(map[string]string{"A": "1", "X": "2"}, "A"); fields == nil {
		t.Fatal("expected error for an invalid option letter")
	}
	if fields := ValidateOptions(ok, "E"); fields == nil {
		t.Fatal("expected error when correct option is not among the options")
	}
}
