package app

import (
	"sat_prep_backend/docs"
	"sat_prep_backend/internal/config"
	"sat_prep_backend/internal/middleware"
	"sat_prep_backend/internal/model"
	"sat_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerAuthenticatedRoutes(router, c, s, repos, cfg)
	a.registerAdminRoutes(router, c, s, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerAuthenticatedRoutes(router *gin.Engine, c *controllers, s *services, repos *repositories, cfg *config.Config) {
	authGroup := router.Group("/api")
	authGroup.Use(
		middleware.AuthMiddleware(cfg),
		middleware.SessionMiddleware(s.sessions),
		middleware.ActivityMiddleware(repos.user),
	)
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		// Sections and generation
		authGroup.GET("/sections", c.section.ListSections)
		authGroup.GET("/sections/by-name", c.section.GetSectionByName)
		authGroup.GET("/sections/:id", c.section.GetSection)
		authGroup.POST("/sections/generate", c.section.GenerateSection)

		// Answers
		authGroup.POST("/answers", c.answer.SubmitAnswer)
		authGroup.GET("/sections/:id/answers", c.answer.SectionAnswers)

		// Timed attempts
		authGroup.POST("/sections/:id/timer/start", c.attempt.StartAttempt)
		authGroup.POST("/sections/:id/timer/pause", c.attempt.PauseAttempt)
		authGroup.POST("/sections/:id/timer/resume", c.attempt.ResumeAttempt)
		authGroup.POST("/sections/:id/timer/finish", c.attempt.FinishAttempt)

		// Results and progress
		authGroup.POST("/results", c.result.CreateResult)
		authGroup.GET("/results", c.result.ListResults)
		authGroup.GET("/progress", c.result.Progress)

		// Practice tests
		authGroup.POST("/practice-tests", c.practiceTest.CreateTest)
		authGroup.GET("/practice-tests", c.practiceTest.ListTests)
		authGroup.GET("/practice-tests/:id", c.practiceTest.GetTest)
		authGroup.GET("/practice-tests/:id/average", c.practiceTest.AverageScore)
		authGroup.PATCH("/practice-tests/status", c.practiceTest.UpdateStatus)

		// Follow-ups are readable by every student
		authGroup.GET("/questions/:id/follow-ups", c.followUp.ListFollowUps)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, s *services, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(
		middleware.AuthMiddleware(cfg),
		middleware.SessionMiddleware(s.sessions),
		middleware.RoleMiddleware(model.Admin),
	)
	{
		admin.POST("/questions/:id/follow-ups", c.followUp.CreateFollowUp)
		admin.POST("/questions/:id/follow-ups/generate", c.followUp.GenerateFollowUp)
		admin.PUT("/follow-ups/:id", c.followUp.UpdateFollowUp)
		admin.DELETE("/follow-ups/:id", c.followUp.DeleteFollowUp)
	}
}
