package service

import (
	"math"

	"signoria_backend/internal/model"
)

// The scoring engine is deliberately pure: the official score is derived only
// from persisted answers at submission time, never accumulated from the
// per-answer feedback already shown to the client.

func scoreAnswers(answers []model.QuizAttemptAnswer) int {
	score := 0
	for _, a := range answers {
		if a.IsCorrect {
			score++
		}
	}
	return score
}

// percentageOf divides by the attempt's snapshotted question count, so
// unanswered questions count against the score. A zero-question quiz scores 0.
func percentageOf(score, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(totalQuestions) * 100))
}
