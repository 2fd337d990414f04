package repository

import (
	"context"
	"errors"
	"time"

	"signoria_backend/internal/model"
	"signoria_backend/internal/util"

	"gorm.io/gorm"
)

// AttemptRepository is the durable store for attempts and answers. The
// service never caches what it reads here; the database is the single source
// of truth under concurrent requests.
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) CreateAttempt(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.DB.WithContext(ctx).Create(attempt).Error
}

func (r *AttemptRepository) GetAttempt(ctx context.Context, attemptID string) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.DB.WithContext(ctx).First(&attempt, "id = ?", attemptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) ListAttempts(ctx context.Context, quizID, userID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// CreateAnswer inserts a single answer. The unique index on
// (attempt_id, question_id) decides races: of two concurrent inserts for the
// same question exactly one lands, the other comes back as a conflict.
func (r *AttemptRepository) CreateAnswer(ctx context.Context, answer *model.QuizAttemptAnswer) error {
	if err := r.DB.WithContext(ctx).Create(answer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrAnswerAlreadyGiven
		}
		return err
	}
	return nil
}

func (r *AttemptRepository) GetAnswers(ctx context.Context, attemptID string) ([]model.QuizAttemptAnswer, error) {
	var answers []model.QuizAttemptAnswer
	err := r.DB.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&answers).Error
	return answers, err
}

// MarkSubmitted flips in_progress -> submitted and persists the official
// score in one compare-and-set update. Returns false when the attempt was
// already submitted, i.e. this caller lost the race.
func (r *AttemptRepository) MarkSubmitted(ctx context.Context, attemptID string, score int, submittedAt time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("id = ? AND status = ?", attemptID, model.AttemptInProgress).
		Updates(map[string]interface{}{
			"status":       model.AttemptSubmitted,
			"score":        score,
			"submitted_at": submittedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
