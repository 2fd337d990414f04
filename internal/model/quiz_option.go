package model

// QuizOption belongs to a non-camera question. IsCorrect must never reach the
// client before the attempt is submitted; catalog DTOs strip it.
type QuizOption struct {
	UUIDBase

	QuestionID string `gorm:"type:varchar(36);not null;index" json:"questionId"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Category   string `gorm:"type:varchar(50);not null;default:'option'" json:"category"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"-"`
}

func (QuizOption) TableName() string {
	return "quiz_options"
}
