package service

import (
	"context"
	"time"

	"signoria_backend/internal/model"
	"signoria_backend/internal/util"
)

// AttemptStore is the durable store for attempts and answers, implemented by
// repository.AttemptRepository. It must enforce uniqueness of
// (attempt_id, question_id) on CreateAnswer and compare-and-set semantics on
// MarkSubmitted; the service holds no cross-request state of its own.
type AttemptStore interface {
	CreateAttempt(ctx context.Context, attempt *model.QuizAttempt) error
	GetAttempt(ctx context.Context, attemptID string) (*model.QuizAttempt, error)
	ListAttempts(ctx context.Context, quizID, userID string) ([]model.QuizAttempt, error)
	CreateAnswer(ctx context.Context, answer *model.QuizAttemptAnswer) error
	GetAnswers(ctx context.Context, attemptID string) ([]model.QuizAttemptAnswer, error)
	MarkSubmitted(ctx context.Context, attemptID string, score int, submittedAt time.Time) (bool, error)
}

// AttemptService owns the attempt lifecycle: start, per-question answer
// recording in both modalities, the submit transition that fixes the official
// score, and read-only result assembly afterwards.
type AttemptService struct {
	catalog QuizCatalog
	store   AttemptStore
}

func NewAttemptService(catalog QuizCatalog, store AttemptStore) *AttemptService {
	return &AttemptService{catalog: catalog, store: store}
}

// Start creates a new in_progress attempt. TotalQuestions snapshots the quiz
// size at this instant. Several in_progress attempts per (user, quiz) may
// coexist; there is deliberately no resume-or-cap behavior here.
func (s *AttemptService) Start(ctx context.Context, quizID, userID string) (*model.AttemptStarted, error) {
	if _, err := s.catalog.GetQuiz(ctx, quizID); err != nil {
		return nil, err
	}

	questions, err := s.catalog.GetQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	attempt := &model.QuizAttempt{
		QuizID:         quizID,
		UserID:         userID,
		Status:         model.AttemptInProgress,
		TotalQuestions: len(questions),
		StartedAt:      time.Now(),
	}
	if err := s.store.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	return &model.AttemptStarted{
		AttemptID:      attempt.ID,
		QuizID:         attempt.QuizID,
		UserID:         attempt.UserID,
		TotalQuestions: attempt.TotalQuestions,
		Status:         attempt.Status,
		StartedAt:      attempt.StartedAt,
	}, nil
}

// mutableAttempt loads the attempt and rejects any write once it is submitted.
func (s *AttemptService) mutableAttempt(ctx context.Context, attemptID string) (*model.QuizAttempt, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsSubmitted() {
		return nil, util.ErrAttemptSubmitted
	}
	return attempt, nil
}

// SubmitSelectionAnswer records an option pick for a non-camera question.
// The returned IsCorrect is immediate feedback for the UI only.
func (s *AttemptService) SubmitSelectionAnswer(ctx context.Context, attemptID, questionID, selectedOptionID string) (*model.AnswerFeedback, error) {
	attempt, err := s.mutableAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	question, err := s.catalog.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != attempt.QuizID {
		return nil, util.ErrQuestionNotInQuiz
	}
	if question.IsCameraBased() {
		return nil, util.ErrCameraQuestion
	}

	option, err := s.catalog.GetOption(ctx, selectedOptionID)
	if err != nil {
		return nil, err
	}
	if option.QuestionID != question.ID {
		return nil, util.ErrOptionNotInQuest
	}

	answer := &model.QuizAttemptAnswer{
		AttemptID:        attempt.ID,
		QuestionID:       question.ID,
		Modality:         model.ModalitySelection,
		SelectedOptionID: &option.ID,
		IsCorrect:        option.IsCorrect,
	}
	if err := s.store.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	return &model.AnswerFeedback{
		AnswerID:         answer.ID,
		AttemptID:        answer.AttemptID,
		QuestionID:       answer.QuestionID,
		SelectedOptionID: answer.SelectedOptionID,
		IsCorrect:        answer.IsCorrect,
	}, nil
}

// SubmitCameraAnswer records the gesture-recognition verdict for a camera
// question. The verdict is trusted as ground truth; no inference happens here.
func (s *AttemptService) SubmitCameraAnswer(ctx context.Context, attemptID, questionID string, verdict bool) (*model.AnswerFeedback, error) {
	attempt, err := s.mutableAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	question, err := s.catalog.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != attempt.QuizID {
		return nil, util.ErrQuestionNotInQuiz
	}
	if !question.IsCameraBased() {
		return nil, util.ErrNotCameraQuestion
	}

	answer := &model.QuizAttemptAnswer{
		AttemptID:  attempt.ID,
		QuestionID: question.ID,
		Modality:   model.ModalityCamera,
		IsCorrect:  verdict,
	}
	if err := s.store.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}

	return &model.AnswerFeedback{
		AnswerID:   answer.ID,
		AttemptID:  answer.AttemptID,
		QuestionID: answer.QuestionID,
		IsCorrect:  answer.IsCorrect,
	}, nil
}

// Submit locks the attempt and fixes the official score, computed from the
// persisted answers only. The in_progress -> submitted flip is a
// compare-and-set: of two racing submits exactly one wins, the loser gets a
// conflict and must keep the first result.
func (s *AttemptService) Submit(ctx context.Context, attemptID string) (*model.AttemptScore, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.IsSubmitted() {
		return nil, util.ErrAttemptSubmitted
	}

	answers, err := s.store.GetAnswers(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	score := scoreAnswers(answers)

	now := time.Now()
	won, err := s.store.MarkSubmitted(ctx, attemptID, score, now)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, util.ErrAttemptSubmitted
	}

	return &model.AttemptScore{
		AttemptID:      attempt.ID,
		QuizID:         attempt.QuizID,
		UserID:         attempt.UserID,
		Score:          score,
		TotalQuestions: attempt.TotalQuestions,
		Percentage:     percentageOf(score, attempt.TotalQuestions),
		Status:         model.AttemptSubmitted,
		SubmittedAt:    &now,
	}, nil
}

// GetResult assembles the locked result: every quiz question in display
// order, joined with the recorded answer and the catalog explanation.
// Readable only after submission so correctness data cannot leak mid-attempt.
func (s *AttemptService) GetResult(ctx context.Context, attemptID string) (*model.AttemptResult, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsSubmitted() {
		return nil, util.ErrResultNotReady
	}

	answers, err := s.store.GetAnswers(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	byQuestion := make(map[string]*model.QuizAttemptAnswer, len(answers))
	for i := range answers {
		byQuestion[answers[i].QuestionID] = &answers[i]
	}

	questions, err := s.catalog.GetQuestionsByQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	entries := make([]model.ResultEntry, 0, len(questions))
	for _, q := range questions {
		entry := model.ResultEntry{
			QuestionID:       q.ID,
			QuestionText:     q.QuestionText,
			QuestionCategory: q.QuestionCategory,
			Explanation:      q.Explanation,
		}

		if answer, ok := byQuestion[q.ID]; ok {
			entry.Answered = true
			entry.Modality = answer.Modality
			entry.IsCorrect = answer.IsCorrect
			switch answer.Modality {
			case model.ModalitySelection:
				entry.SelectedOptionID = answer.SelectedOptionID
				entry.SelectedOptionContent = s.optionContent(ctx, answer.SelectedOptionID)
			case model.ModalityCamera:
				verdict := answer.IsCorrect
				entry.Verdict = &verdict
			}
		}
		entries = append(entries, entry)
	}

	return &model.AttemptResult{
		AttemptScore: model.AttemptScore{
			AttemptID:      attempt.ID,
			QuizID:         attempt.QuizID,
			UserID:         attempt.UserID,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
			Percentage:     percentageOf(attempt.Score, attempt.TotalQuestions),
			Status:         attempt.Status,
			SubmittedAt:    attempt.SubmittedAt,
		},
		Answers: entries,
	}, nil
}

// GetProgress reports how far an attempt has come; the client uses it to
// resume mid-attempt. Per-answer feedback is included, the official score is
// not computed here.
func (s *AttemptService) GetProgress(ctx context.Context, attemptID string) (*model.AttemptProgress, error) {
	attempt, err := s.store.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	answers, err := s.store.GetAnswers(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	progress := &model.AttemptProgress{
		AttemptID:          attempt.ID,
		QuizID:             attempt.QuizID,
		UserID:             attempt.UserID,
		TotalQuestions:     attempt.TotalQuestions,
		AnsweredQuestions:  len(answers),
		RemainingQuestions: attempt.TotalQuestions - len(answers),
		IsCompleted:        attempt.IsSubmitted(),
		AnsweredDetails:    make([]model.AnsweredDetail, 0, len(answers)),
	}
	if attempt.TotalQuestions > 0 {
		progress.ProgressPercentage = float64(len(answers)) / float64(attempt.TotalQuestions) * 100
	}

	for _, answer := range answers {
		detail := model.AnsweredDetail{
			AnswerID:   answer.ID,
			QuestionID: answer.QuestionID,
			Modality:   answer.Modality,
			IsCorrect:  answer.IsCorrect,
			AnsweredAt: answer.CreatedAt,
		}
		if question, err := s.catalog.GetQuestion(ctx, answer.QuestionID); err == nil {
			detail.QuestionText = question.QuestionText
			detail.QuestionCategory = question.QuestionCategory
		}
		if answer.Modality == model.ModalitySelection {
			detail.SelectedOptionID = answer.SelectedOptionID
			detail.SelectedOptionContent = s.optionContent(ctx, answer.SelectedOptionID)
		}
		progress.AnsweredDetails = append(progress.AnsweredDetails, detail)
	}

	return progress, nil
}

// ListAttempts returns the caller's attempt history for one quiz.
func (s *AttemptService) ListAttempts(ctx context.Context, quizID, userID string) ([]model.AttemptScore, error) {
	attempts, err := s.store.ListAttempts(ctx, quizID, userID)
	if err != nil {
		return nil, err
	}

	scores := make([]model.AttemptScore, 0, len(attempts))
	for _, a := range attempts {
		scores = append(scores, model.AttemptScore{
			AttemptID:      a.ID,
			QuizID:         a.QuizID,
			UserID:         a.UserID,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			Percentage:     percentageOf(a.Score, a.TotalQuestions),
			Status:         a.Status,
			SubmittedAt:    a.SubmittedAt,
		})
	}
	return scores, nil
}

func (s *AttemptService) optionContent(ctx context.Context, optionID *string) *string {
	if optionID == nil {
		return nil
	}
	option, err := s.catalog.GetOption(ctx, *optionID)
	if err != nil {
		return nil
	}
	return &option.Content
}
