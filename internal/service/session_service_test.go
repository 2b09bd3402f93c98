package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

func TestValidateSessionRequestTimedNeedsDuration(t *testing.T) {
	base := model.CreateSessionRequest{
		SubjectID:      1,
		TopicIDs:       []uuid.UUID{uuid.New()},
		Mode:           string(model.ModeTimed),
		TotalQuestions: 10,
	}

	if err := validateSessionRequest(&base); !errors.Is(err, ErrDurationRequired) {
		t.Fatalf("timed without duration: err = %v, want ErrDurationRequired", err)
	}

	zero := 0
	withZero := base
	withZero.DurationMinutes = &zero
	if err := validateSessionRequest(&withZero); !errors.Is(err, ErrDurationRequired) {
		t.Fatalf("timed with zero duration: err = %v, want ErrDurationRequired", err)
	}

	thirty := 30
	withDuration := base
	withDuration.DurationMinutes = &thirty
	if err := validateSessionRequest(&withDuration); err != nil {
		t.Fatalf("timed with duration: unexpected err %v", err)
	}

	practice := base
	practice.Mode = string(model.ModePractice)
	if err := validateSessionRequest(&practice); err != nil {
		t.Fatalf("practice without duration: unexpected err %v", err)
	}
}

func TestPaperFromAnswersKeepsFirstOccurrence(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	rows := []model.SessionAnswer{
		{QuestionID: q1, SelectedOption: "A"},
		{QuestionID: q2, SelectedOption: "B"},
		{QuestionID: q1, SelectedOption: "C"}, // changed answer, same question
		{QuestionID: q3, SelectedOption: "D"},
	}

	order := paperFromAnswers(rows)
	want := []uuid.UUID{q1, q2, q3}
	if len(order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestMergeStoredAnswersRestoresSheet(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	stored := []model.SessionAnswer{
		{QuestionID: q1, SelectedOption: "A", HintUsed: true},
		{QuestionID: q2, SelectedOption: "C", SolutionViewed: true},
	}

	state := model.NewAnswerState()
	mergeStoredAnswers(state, stored)

	if state.AnsweredCount() != 2 {
		t.Fatalf("answered = %d, want 2", state.AnsweredCount())
	}
	if got := state.Option(q1); got != "A" {
		t.Fatalf("q1 option = %q, want A", got)
	}
	if e := state.Get(q1); e == nil || !e.HintUsed {
		t.Fatal("q1 hint usage must survive the restore")
	}
	if e := state.Get(q2); e == nil || !e.SolutionViewed {
		t.Fatal("q2 solution view must survive the restore")
	}
	// Review flags live only in Redis and start cleared after a restore.
	if state.FlaggedCount() != 0 {
		t.Fatalf("flagged = %d, want 0", state.FlaggedCount())
	}
}
