package controller

import (
	"strconv"

	"signoria_backend/internal/service"
	"signoria_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Param skip query int false "Number of quizzes to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	skip := queryInt(ctx, "skip", 0)
	limit := queryInt(ctx, "limit", 10)

	quizzes, total, err := c.QuizService.ListQuizzes(ctx.Request.Context(), skip, limit)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  quizzes,
		Total: total,
		Skip:  skip,
		Limit: limit,
	})
}

// @Summary Get quiz details
// @Description Full quiz with questions and options. Option correctness is never included.
// @Tags quizzes
// @Produce json
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	detail, err := c.QuizService.GetQuizDetail(ctx.Request.Context(), ctx.Param("quizId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

func queryInt(ctx *gin.Context, name string, fallback int) int {
	if raw := ctx.Query(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}
