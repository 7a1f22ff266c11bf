package app

import (
	"advent_quiz_backend/docs"
	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/internal/middleware"
	"advent_quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Calendar and attempts
		authGroup.GET("/tests", c.test.GetTests)
		authGroup.GET("/tests/current", c.test.GetCurrentTest)
		authGroup.GET("/tests/:number", c.test.GetTestByNumber)
		authGroup.POST("/tests/:number/attempts", c.test.StartAttempt)
		authGroup.GET("/tests/:number/attempts", c.test.GetActiveAttempt)
		authGroup.POST("/tests/:number/attempts/finish", c.test.FinishAttempt)
		authGroup.POST("/tests/:number/wrong-answers", c.test.LogWrongAnswer)
		authGroup.GET("/tests/:number/wrong-answers", c.test.GetWrongAnswers)

		// Sliding-puzzle minigame
		authGroup.GET("/game/started", c.game.CheckGameStarted)
		authGroup.POST("/game/start", c.game.StartGame)
		authGroup.POST("/game/result", c.game.UpdateGameResult)
		authGroup.POST("/game/reset", c.game.ResetGame)

		// Leaderboards
		authGroup.GET("/results/week/:week", c.ranking.GetWeekResults)
		authGroup.GET("/results/position", c.ranking.GetMyPosition)

		// Aggregations
		authGroup.GET("/stats/correct-count", c.stats.GetCorrectAnswerCount)
		authGroup.GET("/stats/correct", c.stats.GetCorrectAnswersPerUser)
		authGroup.GET("/stats/wrong", c.stats.GetWrongAnswersPerUser)
	}
}
