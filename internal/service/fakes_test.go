package service_test

import (
	"context"
	"sync"
	"time"

	"signoria_backend/internal/model"
	"signoria_backend/internal/util"
)

// In-memory stand-ins for the gorm repositories. The fake store reproduces
// the two guarantees the real one gets from the database: the unique index on
// (attempt_id, question_id) and the compare-and-set submit transition.

type fakeCatalog struct {
	quizzes   []model.Quiz
	questions []model.QuizQuestion
	options   []model.QuizOption
}

func (f *fakeCatalog) GetQuiz(_ context.Context, quizID string) (*model.Quiz, error) {
	for i := range f.quizzes {
		if f.quizzes[i].ID == quizID {
			quiz := f.quizzes[i]
			return &quiz, nil
		}
	}
	return nil, util.ErrQuizNotFound
}

func (f *fakeCatalog) ListQuizzes(_ context.Context, skip, limit int) ([]model.Quiz, int64, error) {
	total := int64(len(f.quizzes))
	if skip >= len(f.quizzes) {
		return nil, total, nil
	}
	end := skip + limit
	if end > len(f.quizzes) {
		end = len(f.quizzes)
	}
	return append([]model.Quiz(nil), f.quizzes[skip:end]...), total, nil
}

func (f *fakeCatalog) GetQuestionsByQuiz(_ context.Context, quizID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	for _, q := range f.questions {
		if q.QuizID == quizID {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (f *fakeCatalog) GetQuestion(_ context.Context, questionID string) (*model.QuizQuestion, error) {
	for i := range f.questions {
		if f.questions[i].ID == questionID {
			question := f.questions[i]
			return &question, nil
		}
	}
	return nil, util.ErrQuestionNotFound
}

func (f *fakeCatalog) GetOption(_ context.Context, optionID string) (*model.QuizOption, error) {
	for i := range f.options {
		if f.options[i].ID == optionID {
			option := f.options[i]
			return &option, nil
		}
	}
	return nil, util.ErrOptionNotFound
}

func (f *fakeCatalog) GetOptionsByQuestion(_ context.Context, questionID string) ([]model.QuizOption, error) {
	var options []model.QuizOption
	for _, o := range f.options {
		if o.QuestionID == questionID {
			options = append(options, o)
		}
	}
	return options, nil
}

type fakeStore struct {
	mu       sync.Mutex
	attempts map[string]model.QuizAttempt
	answers  []model.QuizAttemptAnswer
}

func newFakeStore() *fakeStore {
	return &fakeStore{attempts: make(map[string]model.QuizAttempt)}
}

func (f *fakeStore) CreateAttempt(_ context.Context, attempt *model.QuizAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if attempt.ID == "" {
		attempt.ID = model.GenerateUUID()
	}
	attempt.CreatedAt = time.Now()
	f.attempts[attempt.ID] = *attempt
	return nil
}

func (f *fakeStore) GetAttempt(_ context.Context, attemptID string) (*model.QuizAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attempt, ok := f.attempts[attemptID]
	if !ok {
		return nil, util.ErrAttemptNotFound
	}
	return &attempt, nil
}

func (f *fakeStore) ListAttempts(_ context.Context, quizID, userID string) ([]model.QuizAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attempts []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.UserID == userID {
			attempts = append(attempts, a)
		}
	}
	return attempts, nil
}

func (f *fakeStore) CreateAnswer(_ context.Context, answer *model.QuizAttemptAnswer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.answers {
		if existing.AttemptID == answer.AttemptID && existing.QuestionID == answer.QuestionID {
			return util.ErrAnswerAlreadyGiven
		}
	}
	if answer.ID == "" {
		answer.ID = model.GenerateUUID()
	}
	answer.CreatedAt = time.Now()
	f.answers = append(f.answers, *answer)
	return nil
}

func (f *fakeStore) GetAnswers(_ context.Context, attemptID string) ([]model.QuizAttemptAnswer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var answers []model.QuizAttemptAnswer
	for _, a := range f.answers {
		if a.AttemptID == attemptID {
			answers = append(answers, a)
		}
	}
	return answers, nil
}

func (f *fakeStore) MarkSubmitted(_ context.Context, attemptID string, score int, submittedAt time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	attempt, ok := f.attempts[attemptID]
	if !ok || attempt.Status != model.AttemptInProgress {
		return false, nil
	}
	attempt.Status = model.AttemptSubmitted
	attempt.Score = score
	attempt.SubmittedAt = &submittedAt
	f.attempts[attemptID] = attempt
	return true, nil
}
