package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"signoria_backend/internal/model"
	"signoria_backend/internal/service"
	"signoria_backend/internal/util"
)

type fakeDetailCache struct {
	entries map[string]*model.QuizDetail
	hits    int
	sets    int
}

func newFakeDetailCache() *fakeDetailCache {
	return &fakeDetailCache{entries: make(map[string]*model.QuizDetail)}
}

func (c *fakeDetailCache) GetDetail(_ context.Context, quizID string) *model.QuizDetail {
	detail := c.entries[quizID]
	if detail != nil {
		c.hits++
	}
	return detail
}

func (c *fakeDetailCache) SetDetail(_ context.Context, detail *model.QuizDetail) {
	c.sets++
	c.entries[detail.ID] = detail
}

func TestGetQuizDetailAssembly(t *testing.T) {
	catalog := standardCatalog()
	catalog.questions = append(catalog.questions, model.QuizQuestion{
		UUIDBase: model.UUIDBase{ID: "cam-q"}, QuizID: "quiz-1",
		QuestionText: "Sign the letter H", QuestionCategory: model.CategoryCameraBased,
	})
	svc := service.NewQuizService(catalog, nil)

	detail, err := svc.GetQuizDetail(context.Background(), "quiz-1")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.TotalQuestions != 4 || len(detail.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d/%d", detail.TotalQuestions, len(detail.Questions))
	}
	if got := len(detail.Questions[0].Options); got != 2 {
		t.Fatalf("expected 2 options on q1, got %d", got)
	}
	last := detail.Questions[3]
	if last.QuestionCategory != model.CategoryCameraBased {
		t.Fatalf("expected camera question last, got %q", last.QuestionCategory)
	}
	if last.Options == nil || len(last.Options) != 0 {
		t.Fatalf("camera question must have an empty options array, got %v", last.Options)
	}
}

func TestQuizDetailNeverLeaksCorrectness(t *testing.T) {
	svc := service.NewQuizService(standardCatalog(), nil)

	detail, err := svc.GetQuizDetail(context.Background(), "quiz-1")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	payload, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(strings.ToLower(string(payload)), "correct") {
		t.Fatalf("catalog payload leaks correctness: %s", payload)
	}
}

func TestGetQuizDetailUnknownQuiz(t *testing.T) {
	svc := service.NewQuizService(standardCatalog(), nil)

	_, err := svc.GetQuizDetail(context.Background(), "quiz-missing")
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected quiz not found, got %v", err)
	}
}

func TestGetQuizDetailReadThroughCache(t *testing.T) {
	cache := newFakeDetailCache()
	svc := service.NewQuizService(standardCatalog(), cache)
	ctx := context.Background()

	first, err := svc.GetQuizDetail(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	if cache.sets != 1 || cache.hits != 0 {
		t.Fatalf("expected one set and no hit after miss, got sets=%d hits=%d", cache.sets, cache.hits)
	}

	second, err := svc.GetQuizDetail(ctx, "quiz-1")
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if cache.hits != 1 || cache.sets != 1 {
		t.Fatalf("expected cache hit on second read, got sets=%d hits=%d", cache.sets, cache.hits)
	}
	if second.ID != first.ID || second.TotalQuestions != first.TotalQuestions {
		t.Fatalf("cached detail diverged: %+v vs %+v", first, second)
	}
}

func TestListQuizzesPagination(t *testing.T) {
	svc := service.NewQuizService(standardCatalog(), nil)
	ctx := context.Background()

	summaries, total, err := svc.ListQuizzes(ctx, 0, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(summaries) != 1 || summaries[0].ID != "quiz-1" {
		t.Fatalf("expected first page [quiz-1], got %+v", summaries)
	}

	summaries, _, err = svc.ListQuizzes(ctx, 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != "quiz-empty" {
		t.Fatalf("expected second page [quiz-empty], got %+v", summaries)
	}

	summaries, total, err = svc.ListQuizzes(ctx, 5, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 0 || total != 2 {
		t.Fatalf("expected empty page with total 2, got %+v total=%d", summaries, total)
	}
}
