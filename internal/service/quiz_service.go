package service

import (
	"context"

	"signoria_backend/internal/model"
)

// QuizCatalog is the read-only source of quiz definitions. Implemented by
// repository.QuizRepository; tests supply an in-memory version.
type QuizCatalog interface {
	GetQuiz(ctx context.Context, quizID string) (*model.Quiz, error)
	ListQuizzes(ctx context.Context, skip, limit int) ([]model.Quiz, int64, error)
	GetQuestionsByQuiz(ctx context.Context, quizID string) ([]model.QuizQuestion, error)
	GetQuestion(ctx context.Context, questionID string) (*model.QuizQuestion, error)
	GetOption(ctx context.Context, optionID string) (*model.QuizOption, error)
	GetOptionsByQuestion(ctx context.Context, questionID string) ([]model.QuizOption, error)
}

// QuizDetailCache caches assembled quiz details. Implemented by
// repository.QuizCache; may be nil, in which case every read hits the store.
type QuizDetailCache interface {
	GetDetail(ctx context.Context, quizID string) *model.QuizDetail
	SetDetail(ctx context.Context, detail *model.QuizDetail)
}

// QuizService serves catalog browsing: quiz lists and quiz details with the
// option correctness flags stripped.
type QuizService struct {
	catalog QuizCatalog
	cache   QuizDetailCache
}

func NewQuizService(catalog QuizCatalog, cache QuizDetailCache) *QuizService {
	return &QuizService{catalog: catalog, cache: cache}
}

func (s *QuizService) ListQuizzes(ctx context.Context, skip, limit int) ([]model.QuizSummary, int64, error) {
	quizzes, total, err := s.catalog.ListQuizzes(ctx, skip, limit)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]model.QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, summaryOf(&q))
	}
	return summaries, total, nil
}

// GetQuizDetail assembles a quiz with its questions and options, read-through
// the redis cache. Camera questions come back with an empty options array.
func (s *QuizService) GetQuizDetail(ctx context.Context, quizID string) (*model.QuizDetail, error) {
	if s.cache != nil {
		if detail := s.cache.GetDetail(ctx, quizID); detail != nil {
			return detail, nil
		}
	}

	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.catalog.GetQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	detail := &model.QuizDetail{
		QuizSummary:    summaryOf(quiz),
		TotalQuestions: len(questions),
		Questions:      make([]model.QuestionDetail, 0, len(questions)),
	}

	for _, q := range questions {
		qd := model.QuestionDetail{
			ID:               q.ID,
			QuestionText:     q.QuestionText,
			QuestionCategory: q.QuestionCategory,
			Explanation:      q.Explanation,
			Options:          []model.OptionView{},
		}
		if !q.IsCameraBased() {
			options, err := s.catalog.GetOptionsByQuestion(ctx, q.ID)
			if err != nil {
				return nil, err
			}
			for _, o := range options {
				qd.Options = append(qd.Options, model.OptionView{
					ID:       o.ID,
					Content:  o.Content,
					Category: o.Category,
				})
			}
		}
		detail.Questions = append(detail.Questions, qd)
	}

	if s.cache != nil {
		s.cache.SetDetail(ctx, detail)
	}
	return detail, nil
}

func summaryOf(q *model.Quiz) model.QuizSummary {
	return model.QuizSummary{
		ID:              q.ID,
		Title:           q.Title,
		Description:     q.Description,
		DifficultyLevel: q.DifficultyLevel,
		TimeLimit:       q.TimeLimit,
		Level:           q.Level,
		CreatedAt:       q.CreatedAt,
	}
}
