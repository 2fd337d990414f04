package model

import "time"

// Attempt lifecycle states. There is no reverse transition and no delete path.
const (
	AttemptInProgress = "in_progress"
	AttemptSubmitted  = "submitted"
)

// QuizAttempt is one user's pass through a quiz. TotalQuestions snapshots the
// quiz size at creation so later catalog edits cannot move the score
// denominator. Score is only written by the submit transition.
type QuizAttempt struct {
	UUIDBase

	QuizID         string     `gorm:"type:varchar(36);not null;index" json:"quizId"`
	UserID         string     `gorm:"type:varchar(36);not null;index" json:"userId"`
	Status         string     `gorm:"type:varchar(16);not null;default:'in_progress';index" json:"status"`
	Score          int        `gorm:"not null;default:0" json:"score"`
	TotalQuestions int        `gorm:"not null" json:"totalQuestions"`
	StartedAt      time.Time  `gorm:"not null" json:"startedAt"`
	SubmittedAt    *time.Time `json:"submittedAt,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) IsSubmitted() bool {
	return a.Status == AttemptSubmitted
}
