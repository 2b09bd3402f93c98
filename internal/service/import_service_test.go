package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prepnaija/prepnaija-backend/internal/model"
)

const importCSVHeader = "prompt,option_a,option_b,option_c,option_d,option_e,correct_option,explanation,hint,difficulty,exam_board,exam_year\n"

func TestParseQuestionCSVValidRows(t *testing.T) {
	topicID := uuid.New()
	csvData := importCSVHeader +
		"What is 2+2?,3,4,5,,,B,Basic arithmetic,Think in pairs,easy,WAEC,2019\n" +
		"Capital of Nigeria?,Lagos,Abuja,Kano,Ibadan,,B,,,medium,JAMB,\n"

	questions, rowErrors, err := ParseQuestionCSV(strings.NewReader(csvData), topicID)
	if err != nil {
		t.Fatalf("ParseQuestionCSV: %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("row errors = %v, want none", rowErrors)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}

	q := questions[0]
	if q.TopicID != topicID {
		t.Errorf("topic id = %s, want %s", q.TopicID, topicID)
	}
	if q.CorrectOption != "B" || q.Options["B"] != "4" {
		t.Errorf("options parsed wrong: %+v correct=%s", q.Options, q.CorrectOption)
	}
	if q.Status != model.QuestionStatusDraft {
		t.Errorf("status = %s, want draft", q.Status)
	}
	if q.ExamYear == nil || *q.ExamYear != 2019 {
		t.Errorf("exam year = %v, want 2019", q.ExamYear)
	}
	if questions[1].ExamYear != nil {
		t.Errorf("blank exam year should stay nil")
	}
}

func TestParseQuestionCSVRowErrors(t *testing.T) {
	csvData := importCSVHeader +
		"Good row,a,b,,,,A,,,easy,,\n" +
		",a,b,,,,A,,,easy,,\n" + // missing prompt
		"Bad correct,a,b,,,,E,,,easy,,\n" + // correct option not provided
		"Bad year,a,b,,,,A,,,easy,,1800\n"

	questions, rowErrors, err := ParseQuestionCSV(strings.NewReader(csvData), uuid.New())
	if err != nil {
		t.Fatalf("ParseQuestionCSV: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(questions))
	}
	if len(rowErrors) != 3 {
		t.Fatalf("row errors = %d, want 3: %v", len(rowErrors), rowErrors)
	}

	// Row numbers are 1-based including the header.
	if rowErrors[0].Row != 3 {
		t.Errorf("first error row = %d, want 3", rowErrors[0].Row)
	}
}

func TestParseQuestionCSVBadHeader(t *testing.T) {
	csvData := "question,a,b\nsomething,x,y\n"
	_, _, err := ParseQuestionCSV(strings.NewReader(csvData), uuid.New())
	if !errors.Is(err, ErrImportBadHeader) {
		t.Fatalf("err = %v, want ErrImportBadHeader", err)
	}
}

func TestParseQuestionCSVEmpty(t *testing.T) {
	_, _, err := ParseQuestionCSV(strings.NewReader(""), uuid.New())
	if !errors.Is(err, ErrImportEmpty) {
		t.Fatalf("err = %v, want ErrImportEmpty", err)
	}

	_, _, err = ParseQuestionCSV(strings.NewReader(importCSVHeader), uuid.New())
	if !errors.Is(err, ErrImportEmpty) {
		t.Fatalf("header-only err = %v, want ErrImportEmpty", err)
	}
}
