package model

// swagger:model Quiz
type Quiz struct {
	UUIDBase

	Title           string `gorm:"type:varchar(255);not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	DifficultyLevel string `gorm:"type:varchar(20);not null;default:'medium'" json:"difficultyLevel"`
	TimeLimit       int    `json:"timeLimit"`
	Level           int    `gorm:"not null;index" json:"level"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
