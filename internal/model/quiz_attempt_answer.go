package model

// Answer modalities.
const (
	ModalitySelection = "selection"
	ModalityCamera    = "camera"
)

// QuizAttemptAnswer records the single response to one question within one
// attempt. The composite unique index is the store-level guarantee that two
// racing submissions for the same question persist exactly one row.
type QuizAttemptAnswer struct {
	UUIDBase

	AttemptID        string  `gorm:"type:varchar(36);not null;uniqueIndex:uq_attempt_question,priority:1" json:"attemptId"`
	QuestionID       string  `gorm:"type:varchar(36);not null;uniqueIndex:uq_attempt_question,priority:2" json:"questionId"`
	Modality         string  `gorm:"type:varchar(16);not null" json:"modality"`
	SelectedOptionID *string `gorm:"type:varchar(36)" json:"selectedOptionId,omitempty"`
	IsCorrect        bool    `gorm:"not null;default:false" json:"isCorrect"`
}

func (QuizAttemptAnswer) TableName() string {
	return "quiz_attempt_answers"
}
