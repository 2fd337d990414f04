package model

import "time"

// Client-facing views. Catalog views never carry option correctness; that
// only appears in result entries after an attempt is submitted.

type OptionView struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type QuestionDetail struct {
	ID               string       `json:"id"`
	QuestionText     string       `json:"questionText"`
	QuestionCategory string       `json:"questionCategory"`
	Explanation      string       `json:"explanation"`
	Options          []OptionView `json:"options"`
}

type QuizSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DifficultyLevel string    `json:"difficultyLevel"`
	TimeLimit       int       `json:"timeLimit"`
	Level           int       `json:"level"`
	CreatedAt       time.Time `json:"createdAt"`
}

type QuizDetail struct {
	QuizSummary
	TotalQuestions int              `json:"totalQuestions"`
	Questions      []QuestionDetail `json:"questions"`
}

type AttemptStarted struct {
	AttemptID      string    `json:"attemptId"`
	QuizID         string    `json:"quizId"`
	UserID         string    `json:"userId"`
	TotalQuestions int       `json:"totalQuestions"`
	Status         string    `json:"status"`
	StartedAt      time.Time `json:"startedAt"`
}

// AnswerFeedback echoes a recorded answer. IsCorrect here is immediate UI
// feedback only; the official score comes from the submit transition.
type AnswerFeedback struct {
	AnswerID         string  `json:"answerId"`
	AttemptID        string  `json:"attemptId"`
	QuestionID       string  `json:"questionId"`
	SelectedOptionID *string `json:"selectedOptionId,omitempty"`
	IsCorrect        bool    `json:"isCorrect"`
}

type AttemptScore struct {
	AttemptID      string     `json:"attemptId"`
	QuizID         string     `json:"quizId"`
	UserID         string     `json:"userId"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"totalQuestions"`
	Percentage     int        `json:"percentage"`
	Status         string     `json:"status"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
}

// ResultEntry is one question of a locked result. Unanswered questions appear
// with Answered=false and IsCorrect=false so the entry count always equals
// the attempt's TotalQuestions.
type ResultEntry struct {
	QuestionID            string  `json:"questionId"`
	QuestionText          string  `json:"questionText"`
	QuestionCategory      string  `json:"questionCategory"`
	Explanation           string  `json:"explanation"`
	Answered              bool    `json:"answered"`
	Modality              string  `json:"modality,omitempty"`
	SelectedOptionID      *string `json:"selectedOptionId,omitempty"`
	SelectedOptionContent *string `json:"selectedOptionContent,omitempty"`
	Verdict               *bool   `json:"verdict,omitempty"`
	IsCorrect             bool    `json:"isCorrect"`
}

type AttemptResult struct {
	AttemptScore
	Answers []ResultEntry `json:"answers"`
}

type AnsweredDetail struct {
	AnswerID              string    `json:"answerId"`
	QuestionID            string    `json:"questionId"`
	QuestionText          string    `json:"questionText"`
	QuestionCategory      string    `json:"questionCategory"`
	Modality              string    `json:"modality"`
	SelectedOptionID      *string   `json:"selectedOptionId,omitempty"`
	SelectedOptionContent *string   `json:"selectedOptionContent,omitempty"`
	IsCorrect             bool      `json:"isCorrect"`
	AnsweredAt            time.Time `json:"answeredAt"`
}

type AttemptProgress struct {
	AttemptID          string           `json:"attemptId"`
	QuizID             string           `json:"quizId"`
	UserID             string           `json:"userId"`
	TotalQuestions     int              `json:"totalQuestions"`
	AnsweredQuestions  int              `json:"answeredQuestions"`
	RemainingQuestions int              `json:"remainingQuestions"`
	ProgressPercentage float64          `json:"progressPercentage"`
	IsCompleted        bool             `json:"isCompleted"`
	AnsweredDetails    []AnsweredDetail `json:"answeredDetails"`
}
