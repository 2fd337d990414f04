package controller

import (
	"signoria_backend/internal/model"
	"signoria_backend/internal/service"
	"signoria_backend/internal/util"
	"signoria_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

type SubmitAnswerRequest struct {
	QuestionID       string `json:"questionId" binding:"required"`
	SelectedOptionID string `json:"selectedOptionId" binding:"required"`
}

type SubmitCameraAnswerRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	// Verdict from the client's gesture recognition model; pointer so an
	// explicit false passes validation.
	IsCorrect *bool `json:"isCorrect" binding:"required"`
}

// @Summary Start quiz attempt
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	started, err := c.AttemptService.Start(ctx.Request.Context(), ctx.Param("quizId"), user.UserID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	monitoring.AttemptsStarted.Inc()
	util.Created(ctx, started)
}

// @Summary Submit a selection answer
// @Description Records an option pick. The returned isCorrect is immediate feedback only; the official score is fixed at submission.
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param attemptId path string true "Attempt ID"
// @Param answer body SubmitAnswerRequest true "Answer"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts/{attemptId}/answers [post]
func (c *AttemptController) SubmitAnswer(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.AttemptService.SubmitSelectionAnswer(
		ctx.Request.Context(),
		ctx.Param("attemptId"),
		req.QuestionID,
		req.SelectedOptionID,
	)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	monitoring.AnswersRecorded.WithLabelValues(model.ModalitySelection).Inc()
	util.Success(ctx, feedback)
}

// @Summary Submit a camera answer
// @Description Records the gesture-recognition verdict for a camera_based question.
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param attemptId path string true "Attempt ID"
// @Param answer body SubmitCameraAnswerRequest true "Verdict"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts/{attemptId}/camera-answers [post]
func (c *AttemptController) SubmitCameraAnswer(ctx *gin.Context) {
	var req SubmitCameraAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback, err := c.AttemptService.SubmitCameraAnswer(
		ctx.Request.Context(),
		ctx.Param("attemptId"),
		req.QuestionID,
		*req.IsCorrect,
	)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	monitoring.AnswersRecorded.WithLabelValues(model.ModalityCamera).Inc()
	util.Success(ctx, feedback)
}

// @Summary Submit the attempt
// @Description Locks the attempt and computes the authoritative score server-side. A second call fails with a conflict.
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts/{attemptId}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	result, err := c.AttemptService.Submit(ctx.Request.Context(), ctx.Param("attemptId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	monitoring.AttemptsSubmitted.Inc()
	util.Success(ctx, result)
}

// @Summary Get attempt result
// @Description Per-question results with explanations. Only available once the attempt is submitted.
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts/{attemptId}/result [get]
func (c *AttemptController) GetResult(ctx *gin.Context) {
	result, err := c.AttemptService.GetResult(ctx.Request.Context(), ctx.Param("attemptId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary Get attempt progress
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts/{attemptId}/progress [get]
func (c *AttemptController) GetProgress(ctx *gin.Context) {
	progress, err := c.AttemptService.GetProgress(ctx.Request.Context(), ctx.Param("attemptId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary List my attempts for a quiz
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path string true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{quizId}/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.AttemptService.ListAttempts(ctx.Request.Context(), ctx.Param("quizId"), user.UserID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
