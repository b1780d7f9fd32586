package app

import (
	"learnhub_backend/docs"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/middleware"
	"learnhub_backend/internal/model"
	"learnhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Forum reads allow guests; logged-in users still get their last-seen bump.
	forum := router.Group("/api/discussions")
	forum.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		forum.GET("", c.discussion.GetPosts)
		forum.GET("/:id", c.discussion.GetPostDetail)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)

	rg.GET("/dashboard", c.dashboard.GetDashboard)

	rg.GET("/progress", c.progress.GetProgress)
	rg.GET("/progress/weeks", c.progress.GetWeeklyProgress)
	rg.GET("/progress/streak", c.progress.GetStreak)

	rg.POST("/study/sessions", c.study.StartSession)
	rg.POST("/study/sessions/complete", c.study.CompleteSession)
	rg.GET("/study/sessions", c.study.GetSessions)

	rg.GET("/leaderboard", c.leaderboard.GetLeaderboard)
	rg.GET("/achievements", c.achievement.GetAchievements)

	rg.GET("/activity", c.activity.GetFeed)
	rg.GET("/activity/ws", c.activity.Subscribe)

	rg.GET("/content", c.content.GetPublished)

	rg.POST("/discussions", c.discussion.CreatePost)
	rg.DELETE("/discussions/:id", c.discussion.DeletePost)
	rg.POST("/discussions/:id/replies", c.discussion.CreateReply)
	rg.POST("/discussions/likes", c.discussion.ToggleLike)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.PUT("/users/:id/disable", c.user.DisableUser)

		admin.GET("/analytics/engagement", c.analytics.GetEngagementReport)
		admin.GET("/analytics/engagement/:id", c.analytics.GetStudentEngagement)

		admin.GET("/content", c.content.GetAll)
		admin.POST("/content", c.content.Create)
		admin.PUT("/content/:id", c.content.Update)
		admin.DELETE("/content/:id", c.content.Delete)
		admin.PUT("/content/:id/publish", c.content.SetPublished)
		admin.POST("/content/upload", c.content.Upload)
	}
}
