package service_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"signoria_backend/internal/model"
	"signoria_backend/internal/service"
	"signoria_backend/internal/util"
)

func standardCatalog() *fakeCatalog {
	return &fakeCatalog{
		quizzes: []model.Quiz{
			{UUIDBase: model.UUIDBase{ID: "quiz-1"}, Title: "Level 1 - A and B", Level: 1},
			{UUIDBase: model.UUIDBase{ID: "quiz-empty"}, Title: "Empty", Level: 2},
		},
		questions: []model.QuizQuestion{
			{UUIDBase: model.UUIDBase{ID: "q1"}, QuizID: "quiz-1", QuestionText: "Sign for A?", QuestionCategory: model.CategoryImageAlphabet, Explanation: "The letter A"},
			{UUIDBase: model.UUIDBase{ID: "q2"}, QuizID: "quiz-1", QuestionText: "Which image shows B?", QuestionCategory: model.CategoryImageOptions, Explanation: "The letter B"},
			{UUIDBase: model.UUIDBase{ID: "q3"}, QuizID: "quiz-1", QuestionText: "Sign for C?", QuestionCategory: model.CategoryImageAlphabet, Explanation: "The letter C"},
		},
		options: []model.QuizOption{
			{UUIDBase: model.UUIDBase{ID: "o1"}, QuestionID: "q1", Content: "A", IsCorrect: true},
			{UUIDBase: model.UUIDBase{ID: "o2"}, QuestionID: "q1", Content: "F"},
			{UUIDBase: model.UUIDBase{ID: "o3"}, QuestionID: "q2", Content: "b.jpg", IsCorrect: true},
			{UUIDBase: model.UUIDBase{ID: "o4"}, QuestionID: "q2", Content: "d.jpg"},
			{UUIDBase: model.UUIDBase{ID: "o5"}, QuestionID: "q3", Content: "C", IsCorrect: true},
			{UUIDBase: model.UUIDBase{ID: "o6"}, QuestionID: "q3", Content: "G"},
		},
	}
}

func cameraCatalog() *fakeCatalog {
	return &fakeCatalog{
		quizzes: []model.Quiz{
			{UUIDBase: model.UUIDBase{ID: "quiz-cam"}, Title: "Practice", Level: 3},
		},
		questions: []model.QuizQuestion{
			{UUIDBase: model.UUIDBase{ID: "cam1"}, QuizID: "quiz-cam", QuestionText: "Sign the letter D", QuestionCategory: model.CategoryCameraBased, Explanation: "The letter D"},
		},
	}
}

func newService(catalog *fakeCatalog) (*service.AttemptService, *fakeStore) {
	store := newFakeStore()
	return service.NewAttemptService(catalog, store), store
}

func TestStartSnapshotsTotalQuestions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if started.TotalQuestions != 3 {
		t.Fatalf("expected 3 total questions, got %d", started.TotalQuestions)
	}
	if started.Status != model.AttemptInProgress {
		t.Fatalf("expected in_progress, got %q", started.Status)
	}
	if started.AttemptID == "" {
		t.Fatal("expected attempt id to be assigned")
	}
}

func TestStartUnknownQuiz(t *testing.T) {
	svc, _ := newService(standardCatalog())

	_, err := svc.Start(context.Background(), "quiz-missing", "user-1")
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
}

func TestStartAllowsConcurrentAttempts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	first, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	second, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if first.AttemptID == second.AttemptID {
		t.Fatal("expected two distinct attempts, got the same id")
	}
}

// Full walk of the selection scenario: one correct answer, one wrong, one
// question skipped.
func TestSelectionScenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	feedback, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o1")
	if err != nil {
		t.Fatalf("answer q1 failed: %v", err)
	}
	if !feedback.IsCorrect {
		t.Fatal("o1 is the correct option for q1")
	}

	feedback, err = svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q2", "o4")
	if err != nil {
		t.Fatalf("answer q2 failed: %v", err)
	}
	if feedback.IsCorrect {
		t.Fatal("o4 is wrong for q2")
	}

	// q3 skipped on purpose.
	result, err := svc.Submit(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 1 {
		t.Fatalf("expected score 1, got %d", result.Score)
	}
	if result.Percentage != 33 {
		t.Fatalf("expected percentage 33, got %d", result.Percentage)
	}
	if result.TotalQuestions != 3 {
		t.Fatalf("expected total 3, got %d", result.TotalQuestions)
	}

	full, err := svc.GetResult(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("get result failed: %v", err)
	}
	if len(full.Answers) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(full.Answers))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if full.Answers[i].QuestionID != want {
			t.Fatalf("entry %d: expected %s, got %s", i, want, full.Answers[i].QuestionID)
		}
	}
	skipped := full.Answers[2]
	if skipped.Answered || skipped.IsCorrect || skipped.SelectedOptionID != nil {
		t.Fatalf("skipped question should be unanswered and incorrect, got %+v", skipped)
	}
	if got := full.Answers[0]; got.SelectedOptionContent == nil || *got.SelectedOptionContent != "A" {
		t.Fatalf("expected selected content A, got %+v", got.SelectedOptionContent)
	}
	if full.Answers[0].Explanation != "The letter A" {
		t.Fatalf("expected explanation, got %q", full.Answers[0].Explanation)
	}
}

func TestCameraVerdictScores(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(cameraCatalog())

	started, err := svc.Start(ctx, "quiz-cam", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	feedback, err := svc.SubmitCameraAnswer(ctx, started.AttemptID, "cam1", true)
	if err != nil {
		t.Fatalf("camera answer failed: %v", err)
	}
	if !feedback.IsCorrect {
		t.Fatal("verdict true must be stored as correct")
	}

	result, err := svc.Submit(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 1 || result.Percentage != 100 {
		t.Fatalf("expected 1/100, got %d/%d", result.Score, result.Percentage)
	}

	full, err := svc.GetResult(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("get result failed: %v", err)
	}
	entry := full.Answers[0]
	if entry.Verdict == nil || !*entry.Verdict {
		t.Fatalf("expected verdict true in result, got %+v", entry.Verdict)
	}
	if entry.SelectedOptionID != nil {
		t.Fatal("camera entry must not carry a selection")
	}
}

func TestModalityValidation(t *testing.T) {
	ctx := context.Background()
	catalog := standardCatalog()
	// Add a camera question to the standard quiz for cross-modality checks.
	catalog.questions = append(catalog.questions, model.QuizQuestion{
		UUIDBase: model.UUIDBase{ID: "cam-x"}, QuizID: "quiz-1",
		QuestionText: "Sign the letter E", QuestionCategory: model.CategoryCameraBased,
	})
	// And a foreign quiz with a question of its own.
	catalog.quizzes = append(catalog.quizzes, model.Quiz{UUIDBase: model.UUIDBase{ID: "quiz-2"}})
	catalog.questions = append(catalog.questions, model.QuizQuestion{
		UUIDBase: model.UUIDBase{ID: "foreign-q"}, QuizID: "quiz-2",
		QuestionText: "?", QuestionCategory: model.CategoryImageAlphabet,
	})
	svc, _ := newService(catalog)

	started, err := svc.Start(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}

	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "cam-x", "o1"); !errors.Is(err, util.ErrCameraQuestion) {
		t.Fatalf("selection on camera question: expected %v, got %v", util.ErrCameraQuestion, err)
	}
	if _, err := svc.SubmitCameraAnswer(ctx, started.AttemptID, "q1", true); !errors.Is(err, util.ErrNotCameraQuestion) {
		t.Fatalf("camera on standard question: expected %v, got %v", util.ErrNotCameraQuestion, err)
	}
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o3"); !errors.Is(err, util.ErrOptionNotInQuest) {
		t.Fatalf("foreign option: expected %v, got %v", util.ErrOptionNotInQuest, err)
	}
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "foreign-q", "o1"); !errors.Is(err, util.ErrQuestionNotInQuiz) {
		t.Fatalf("foreign question: expected %v, got %v", util.ErrQuestionNotInQuiz, err)
	}
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "missing", "o1"); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("missing question: expected %v, got %v", util.ErrQuestionNotFound, err)
	}
	if _, err := svc.SubmitSelectionAnswer(ctx, "missing-attempt", "q1", "o1"); !errors.Is(err, util.ErrAttemptNotFound) {
		t.Fatalf("missing attempt: expected %v, got %v", util.ErrAttemptNotFound, err)
	}
}

func TestDuplicateAnswerConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o1"); err != nil {
		t.Fatalf("first answer failed: %v", err)
	}
	// A different option for the same question is still a duplicate.
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o2"); !errors.Is(err, util.ErrAnswerAlreadyGiven) {
		t.Fatalf("expected duplicate conflict, got %v", err)
	}
}

func TestConcurrentDuplicateAnswers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())
	started, _ := svc.Start(ctx, "quiz-1", "user-1")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, option := range []string{"o1", "o2"} {
		go func(i int, option string) {
			defer wg.Done()
			_, errs[i] = svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", option)
		}(i, option)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, util.ErrAnswerAlreadyGiven):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d/%d", successes, conflicts)
	}
}

func TestAnswerAfterSubmitConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	if _, err := svc.Submit(ctx, started.AttemptID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o1"); !errors.Is(err, util.ErrAttemptSubmitted) {
		t.Fatalf("expected submitted conflict, got %v", err)
	}
}

func TestSubmitTwiceConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	if _, err := svc.Submit(ctx, started.AttemptID); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, started.AttemptID); !errors.Is(err, util.ErrAttemptSubmitted) {
		t.Fatalf("expected conflict on second submit, got %v", err)
	}
}

func TestConcurrentSubmits(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())
	started, _ := svc.Start(ctx, "quiz-1", "user-1")

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Submit(ctx, started.AttemptID)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, util.ErrAttemptSubmitted):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected exactly one winner, got %d successes / %d conflicts", successes, conflicts)
	}
}

func TestResultBeforeSubmitConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	if _, err := svc.GetResult(ctx, started.AttemptID); !errors.Is(err, util.ErrResultNotReady) {
		t.Fatalf("expected result-not-ready conflict, got %v", err)
	}
}

func TestResultStableAcrossReads(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o1")
	svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q2", "o3")
	if _, err := svc.Submit(ctx, started.AttemptID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	first, err := svc.GetResult(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := svc.GetResult(ctx, started.AttemptID)
		if err != nil {
			t.Fatalf("repeat read failed: %v", err)
		}
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("result changed between reads:\nfirst: %+v\nnext:  %+v", first, next)
		}
	}
}

func TestZeroQuestionQuiz(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, err := svc.Start(ctx, "quiz-empty", "user-1")
	if err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if started.TotalQuestions != 0 {
		t.Fatalf("expected 0 questions, got %d", started.TotalQuestions)
	}

	result, err := svc.Submit(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Score != 0 || result.Percentage != 0 {
		t.Fatalf("expected 0/0, got %d/%d", result.Score, result.Percentage)
	}
}

func TestProgressReporting(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	started, _ := svc.Start(ctx, "quiz-1", "user-1")
	if _, err := svc.SubmitSelectionAnswer(ctx, started.AttemptID, "q1", "o1"); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	progress, err := svc.GetProgress(ctx, started.AttemptID)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if progress.AnsweredQuestions != 1 || progress.RemainingQuestions != 2 {
		t.Fatalf("expected 1 answered / 2 remaining, got %d/%d", progress.AnsweredQuestions, progress.RemainingQuestions)
	}
	if progress.IsCompleted {
		t.Fatal("attempt is still in progress")
	}
	if len(progress.AnsweredDetails) != 1 {
		t.Fatalf("expected 1 detail, got %d", len(progress.AnsweredDetails))
	}
	detail := progress.AnsweredDetails[0]
	if detail.QuestionText != "Sign for A?" || !detail.IsCorrect {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestListAttempts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(standardCatalog())

	first, _ := svc.Start(ctx, "quiz-1", "user-1")
	svc.Start(ctx, "quiz-1", "user-2")
	if _, err := svc.Submit(ctx, first.AttemptID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	attempts, err := svc.ListAttempts(ctx, "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected only user-1's attempt, got %d", len(attempts))
	}
	if attempts[0].Status != model.AttemptSubmitted {
		t.Fatalf("expected submitted status, got %q", attempts[0].Status)
	}
}
