package app

import (
	"ielts_tracker_backend/docs"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/middleware"
	"ielts_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		registerUserRoutes(authGroup, c)
		registerPracticeRoutes(authGroup, c)
		registerStudyRoutes(authGroup, c)
		registerResourceRoutes(authGroup, c)
		registerPlanRoutes(authGroup, c)
	}
}

func registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func registerUserRoutes(r *gin.RouterGroup, c *controllers) {
	r.GET("/profile", c.auth.GetProfile)
	r.PUT("/user/profile", c.user.UpdateProfile)
	r.PUT("/user/password", c.user.ChangePassword)

	r.GET("/sections", c.section.List)
	r.GET("/sections/:id", c.section.Get)

	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("", c.dashboard.GetDashboard)
		dashboard.GET("/progress", c.dashboard.GetProgress)
		dashboard.GET("/analytics", c.dashboard.GetAnalytics)
		dashboard.GET("/test-prep", c.dashboard.GetTestPrepSummary)
	}
}

// 模考、成绩、弱项
func registerPracticeRoutes(r *gin.RouterGroup, c *controllers) {
	tests := r.Group("/practice-tests")
	{
		tests.GET("", c.practice.ListTests)
		tests.POST("", c.practice.CreateTest)
		tests.GET("/:id", c.practice.GetTest)
		tests.PUT("/:id", c.practice.UpdateTest)
		tests.DELETE("/:id", c.practice.DeleteTest)
		tests.POST("/:id/scores", c.practice.AddScore)
	}

	scores := r.Group("/scores")
	{
		scores.GET("/latest", c.practice.LatestScores)
		scores.GET("/history/:sectionId", c.practice.SectionHistory)
		scores.GET("/weak-sections", c.practice.WeakSections)
		scores.PUT("/:id", c.practice.UpdateScore)
		scores.DELETE("/:id", c.practice.DeleteScore)
	}

	weak := r.Group("/weak-areas")
	{
		weak.GET("", c.weakArea.List)
		weak.POST("", c.weakArea.Create)
		weak.GET("/top", c.weakArea.Top)
		weak.GET("/count-by-section", c.weakArea.CountBySection)
		weak.POST("/auto-identify", c.weakArea.AutoIdentify)
		weak.GET("/:id", c.weakArea.Get)
		weak.PUT("/:id", c.weakArea.Update)
		weak.PATCH("/:id/priority", c.weakArea.UpdatePriority)
		weak.DELETE("/:id", c.weakArea.Delete)
	}
}

// 学习记录与目标
func registerStudyRoutes(r *gin.RouterGroup, c *controllers) {
	sessions := r.Group("/study-sessions")
	{
		sessions.GET("", c.session.List)
		sessions.POST("", c.session.AddManual)
		sessions.POST("/start", c.session.Start)
		sessions.GET("/active", c.session.Active)
		sessions.GET("/time-per-section", c.session.TimePerSection)
		sessions.GET("/total", c.session.TotalTime)
		sessions.GET("/:id", c.session.Get)
		sessions.PUT("/:id/end", c.session.End)
		sessions.DELETE("/:id", c.session.Delete)
	}

	goals := r.Group("/goals")
	{
		goals.GET("", c.goal.List)
		goals.POST("", c.goal.Create)
		goals.GET("/upcoming", c.goal.Upcoming)
		goals.GET("/progress", c.goal.Progress)
		goals.POST("/check", c.goal.CheckAchievements)
		goals.GET("/:id", c.goal.Get)
		goals.PUT("/:id", c.goal.Update)
		goals.DELETE("/:id", c.goal.Delete)
		goals.PATCH("/:id/achieved", c.goal.SetAchieved)
	}
}

func registerResourceRoutes(r *gin.RouterGroup, c *controllers) {
	resources := r.Group("/resources")
	{
		resources.GET("", c.resource.Search)
		resources.POST("", c.resource.Create)
		resources.GET("/types", c.resource.Types)
		resources.GET("/count-by-section", c.resource.CountBySection)
		resources.GET("/count-by-type", c.resource.CountByType)
		resources.GET("/:id", c.resource.Get)
		resources.PUT("/:id", c.resource.Update)
		resources.DELETE("/:id", c.resource.Delete)
	}

	collection := r.Group("/collection")
	{
		collection.GET("", c.resource.Collection)
		collection.GET("/completed-by-section", c.resource.CompletedBySection)
		collection.POST("/:resourceId", c.resource.AddToCollection)
		collection.PUT("/:resourceId", c.resource.UpdateCollection)
		collection.DELETE("/:resourceId", c.resource.RemoveFromCollection)
	}
}

func registerPlanRoutes(r *gin.RouterGroup, c *controllers) {
	plans := r.Group("/study-plans")
	{
		plans.GET("", c.plan.List)
		plans.POST("", c.plan.Create)
		plans.POST("/generate", c.plan.Generate)
		plans.POST("/preview", c.plan.Preview)
		plans.GET("/today", c.plan.Today)
		plans.GET("/upcoming", c.plan.Upcoming)
		plans.GET("/overdue", c.plan.Overdue)
		plans.GET("/:id", c.plan.Get)
		plans.PUT("/:id", c.plan.Update)
		plans.DELETE("/:id", c.plan.Delete)
		plans.PATCH("/:id/status", c.plan.UpdateStatus)
		plans.GET("/:id/time-by-section", c.plan.TimeBySection)
		plans.GET("/:id/count-by-section", c.plan.CountBySection)
		plans.POST("/:id/items", c.plan.AddItem)
	}

	items := r.Group("/plan-items")
	{
		items.PUT("/:id", c.plan.UpdateItem)
		items.DELETE("/:id", c.plan.DeleteItem)
		items.PATCH("/:id/complete", c.plan.SetItemCompleted)
		items.PATCH("/:id/reschedule", c.plan.RescheduleItem)
	}
}
