package app

import (
	"signoria_backend/docs"
	"signoria_backend/internal/config"
	"signoria_backend/internal/middleware"
	"signoria_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: the catalog is browsable without a session, correctness
	// flags are stripped from its payloads anyway.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/quizzes", c.quiz.ListQuizzes)
		public.GET("/quizzes/:quizId", c.quiz.GetQuiz)
	}

	// Attempt lifecycle requires an authenticated caller.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/quizzes/:quizId/attempts", c.attempt.StartAttempt)
		authGroup.GET("/quizzes/:quizId/attempts", c.attempt.ListAttempts)
		authGroup.GET("/quizzes/:quizId/attempts/:attemptId/progress", c.attempt.GetProgress)
		authGroup.POST("/quizzes/:quizId/attempts/:attemptId/answers", c.attempt.SubmitAnswer)
		authGroup.POST("/quizzes/:quizId/attempts/:attemptId/camera-answers", c.attempt.SubmitCameraAnswer)
		authGroup.POST("/quizzes/:quizId/attempts/:attemptId/submit", c.attempt.SubmitAttempt)
		authGroup.GET("/quizzes/:quizId/attempts/:attemptId/result", c.attempt.GetResult)
	}
}
