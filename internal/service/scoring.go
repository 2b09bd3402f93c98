package service

import (
	"math"

	"github.com/prepnaija/prepnaija-backend/internal/model"
)

// GradePaper counts answered and correct choices across a full paper.
// Unanswered questions count against the score: the denominator is always
// the full paper size.
func GradePaper(questions []model.Question, state *model.AnswerState) (answered, correct int) {
	for i := range questions {
		option := state.Option(questions[i].ID)
		if option == "" {
			continue
		}
		answered++
		if option == questions[i].CorrectOption {
			correct++
		}
	}
	return answered, correct
}

// ComputeScore returns the percentage score over the full paper, rounded
// half-up to two decimal places.
func ComputeScore(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	return math.Floor(pct*100+0.5) / 100
}

// SplitTimeSpent attributes elapsed session time evenly across the paper.
// Per-question timing is not tracked client side, so an even split is the
// honest approximation.
func SplitTimeSpent(elapsedSecs, total int) int {
	if total <= 0 {
		return 0
	}
	return elapsedSecs / total
}
