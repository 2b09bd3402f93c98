package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

func makePaper(n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{ID: uuid.New(), CorrectOption: "A"}
	}
	return qs
}

func TestGradePaperUnansweredCountAgainstScore(t *testing.T) {
	qs := makePaper(10)

	state := model.NewAnswerState()
	state.Select(qs[0].ID, "A")
	state.Select(qs[1].ID, "A")
	state.Select(qs[2].ID, "B")

	answered, correct := GradePaper(qs, state)
	if answered != 3 {
		t.Fatalf("answered = %d, want 3", answered)
	}
	if correct != 2 {
		t.Fatalf("correct = %d, want 2", correct)
	}

	// Score uses the full paper as denominator: 2/10, not 2/3.
	if got := ComputeScore(correct, len(qs)); got != 20 {
		t.Fatalf("score = %v, want 20", got)
	}
}

func TestGradePaperIgnoresUnknownQuestions(t *testing.T) {
	qs := makePaper(2)
	state := model.NewAnswerState()
	state.Select(qs[0].ID, "A")
	state.Select(uuid.New(), "A") // not part of the paper

	answered, correct := GradePaper(qs, state)
	if answered != 1 || correct != 1 {
		t.Fatalf("answered = %d, correct = %d, want 1, 1", answered, correct)
	}
}

func TestComputeScoreEmptyPaper(t *testing.T) {
	if got := ComputeScore(0, 0); got != 0 {
		t.Fatalf("score = %v, want 0", got)
	}
}

func TestComputeScoreRoundsToTwoDecimals(t *testing.T) {
	// 1/3 of the paper correct is 33.333..., reported as 33.33.
	if got := ComputeScore(1, 3); got != 33.33 {
		t.Fatalf("score = %v, want 33.33", got)
	}
	// 2/3 is 66.666..., the half rounds up to 66.67.
	if got := ComputeScore(2, 3); got != 66.67 {
		t.Fatalf("score = %v, want 66.67", got)
	}
	if got := ComputeScore(5, 5); got != 100 {
		t.Fatalf("score = %v, want 100", got)
	}
}

func TestSplitTimeSpent(t *testing.T) {
	if got := SplitTimeSpent(600, 10); got != 60 {
		t.Fatalf("per answer = %d, want 60", got)
	}
	if got := SplitTimeSpent(100, 0); got != 0 {
		t.Fatalf("per answer = %d, want 0 for empty paper", got)
	}
}
