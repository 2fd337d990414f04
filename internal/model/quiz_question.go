package model

// Question categories. The first two are answered by picking an option,
// camera_based questions are graded by the client's gesture recognition model.
const (
	CategoryImageAlphabet = "image_alphabet"
	CategoryImageOptions  = "image_options"
	CategoryCameraBased   = "camera_based"
)

// swagger:model QuizQuestion
type QuizQuestion struct {
	UUIDBase

	QuizID           string `gorm:"type:varchar(36);not null;index" json:"quizId"`
	QuestionText     string `gorm:"type:text;not null" json:"questionText"`
	QuestionCategory string `gorm:"type:varchar(50);not null" json:"questionCategory"`
	Explanation      string `gorm:"type:text;not null;default:''" json:"explanation"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// IsCameraBased reports whether the question carries no options and is
// answered through the camera endpoint.
func (q *QuizQuestion) IsCameraBased() bool {
	return q.QuestionCategory == CategoryCameraBased
}
