package repository

import (
	"context"
	"errors"

	"signoria_backend/internal/model"
	"signoria_backend/internal/util"

	"gorm.io/gorm"
)

// QuizRepository reads the quiz catalog. The catalog has no write path here;
// quizzes, questions and options are seeded out of band and treated as
// immutable by everything in this service.
type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) GetQuiz(ctx context.Context, quizID string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.DB.WithContext(ctx).First(&quiz, "id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListQuizzes(ctx context.Context, skip, limit int) ([]model.Quiz, int64, error) {
	var quizzes []model.Quiz
	var total int64

	if err := r.DB.WithContext(ctx).Model(&model.Quiz{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.DB.WithContext(ctx).
		Order("level ASC").
		Offset(skip).
		Limit(limit).
		Find(&quizzes).Error
	if err != nil {
		return nil, 0, err
	}
	return quizzes, total, nil
}

// GetQuestionsByQuiz returns the quiz's questions in display order.
func (r *QuizRepository) GetQuestionsByQuiz(ctx context.Context, quizID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) GetQuestion(ctx context.Context, questionID string) (*model.QuizQuestion, error) {
	var question model.QuizQuestion
	if err := r.DB.WithContext(ctx).First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuizRepository) GetOption(ctx context.Context, optionID string) (*model.QuizOption, error) {
	var option model.QuizOption
	if err := r.DB.WithContext(ctx).First(&option, "id = ?", optionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrOptionNotFound
		}
		return nil, err
	}
	return &option, nil
}

func (r *QuizRepository) GetOptionsByQuestion(ctx context.Context, questionID string) ([]model.QuizOption, error) {
	var options []model.QuizOption
	err := r.DB.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&options).Error
	return options, err
}
