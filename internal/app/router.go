package app

import (
	"naac_backend/docs"
	"naac_backend/internal/config"
	"naac_backend/internal/middleware"
	"naac_backend/internal/model"
	"naac_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg, s.auth))
	{
		api.POST("/logout", c.auth.Logout)
		api.GET("/profile", c.auth.GetProfile)

		a.registerReadRoutes(api, c)

		// Data entry and score computation require an IQAC role.
		entry := api.Group("")
		entry.Use(middleware.RoleMiddleware(model.RoleIQAC))
		{
			a.registerEntryRoutes(entry, c)
		}
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

// registerReadRoutes covers endpoints every authenticated role may call,
// viewers included.
func (a *App) registerReadRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/iiqa/latest", c.iiqa.Latest)
	rg.GET("/extended-profile", c.profiles.List)
	rg.GET("/scores", c.scores.List)
	rg.GET("/scores/codes", c.scores.Codes)
	rg.GET("/scores/:code", c.scores.Get)
	rg.GET("/responses/:code", c.scores.ListResponses)
}

func (a *App) registerEntryRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/iiqa", c.iiqa.Create)
	rg.POST("/extended-profile", c.profiles.Create)
	rg.POST("/uploads", c.uploads.Upload)

	rg.POST("/scores/:code", c.scores.Compute)

	criteria1 := rg.Group("/criteria1")
	{
		criteria1.POST("/1.1.3", c.criteria1.Submit113)
		criteria1.POST("/1.2.1", c.criteria1.Submit121)
		criteria1.POST("/1.2.2", c.criteria1.Submit122)
		criteria1.POST("/1.3.2", c.criteria1.Submit132)
		criteria1.POST("/1.3.3", c.criteria1.Submit133)
		criteria1.POST("/1.4.1", c.criteria1.Submit141)
		criteria1.POST("/1.4.2", c.criteria1.Submit142)
	}

	criteria2 := rg.Group("/criteria2")
	{
		criteria2.POST("/2.1.1", c.criteria2.Submit211)
		criteria2.POST("/2.1.2", c.criteria2.Submit212)
		criteria2.POST("/faculty-appointment", c.criteria2.SubmitFacultyAppointment)
		criteria2.POST("/2.3.3", c.criteria2.Submit233)
		criteria2.POST("/2.4.2", c.criteria2.Submit242)
		criteria2.POST("/2.6.3", c.criteria2.Submit263)
	}

	criteria3 := rg.Group("/criteria3")
	{
		criteria3.POST("/3.1.1", c.criteria3.Submit311)
	}

	criteria6 := rg.Group("/criteria6")
	{
		criteria6.POST("/6.2.3", c.criteria6.Submit623)
		criteria6.POST("/6.3.2", c.criteria6.Submit632)
		criteria6.POST("/6.3.3", c.criteria6.Submit633)
		criteria6.POST("/6.3.4", c.criteria6.Submit634)
		criteria6.POST("/6.4.2", c.criteria6.Submit642)
	}

	criteria7 := rg.Group("/criteria7")
	{
		criteria7.POST("/7.1.2", c.criteria7.Submit712)
		criteria7.POST("/7.1.10", c.criteria7.Submit7110)
	}
}
