package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"naac_backend/internal/config"
	"naac_backend/internal/controller"
	"naac_backend/internal/repository"
	"naac_backend/internal/service"
	"naac_backend/pkg/database"
	"naac_backend/pkg/logger"
	"naac_backend/pkg/monitoring"
	"naac_backend/pkg/security"
	"naac_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user      *repository.UserRepository
	criteria  *repository.CriteriaRepository
	iiqa      *repository.IIQARepository
	profiles  *repository.ExtendedProfileRepository
	scores    *repository.ScoreRepository
	responses *repository.Responses
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	iiqa        *service.IIQAService
	profiles    *service.ExtendedProfileService
	submissions *service.SubmissionService
	scores      *service.ScoreService
}

type controllers struct {
	auth      *controller.AuthController
	iiqa      *controller.IIQAController
	profiles  *controller.ExtendedProfileController
	criteria1 *controller.Criteria1Controller
	criteria2 *controller.Criteria2Controller
	criteria3 *controller.Criteria3Controller
	criteria6 *controller.Criteria6Controller
	criteria7 *controller.Criteria7Controller
	scores    *controller.ScoreController
	uploads   *controller.UploadController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		criteria:  repository.NewCriteriaRepository(db),
		iiqa:      repository.NewIIQARepository(db),
		profiles:  repository.NewExtendedProfileRepository(db),
		scores:    repository.NewScoreRepository(db),
		responses: repository.NewResponses(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	windows := service.NewWindowResolver(repos.iiqa)

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(cfg, repos.user, rdb)
	s.iiqa = service.NewIIQAService(repos.iiqa)
	s.profiles = service.NewExtendedProfileService(repos.profiles, repos.iiqa, windows)
	s.submissions = service.NewSubmissionService(repos.criteria, repos.responses, windows, cfg.Scoring.EarliestYear)
	s.scores = service.NewScoreService(repos.criteria, repos.scores, repos.profiles, repos.iiqa, repos.responses, windows)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		iiqa:      controller.NewIIQAController(s.iiqa),
		profiles:  controller.NewExtendedProfileController(s.profiles),
		criteria1: controller.NewCriteria1Controller(s.submissions),
		criteria2: controller.NewCriteria2Controller(s.submissions),
		criteria3: controller.NewCriteria3Controller(s.submissions),
		criteria6: controller.NewCriteria6Controller(s.submissions),
		criteria7: controller.NewCriteria7Controller(s.submissions),
		scores:    controller.NewScoreController(s.scores, s.submissions),
		uploads:   controller.NewUploadController(s.storage),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("failed to run migrations", zap.Error(err))
		}
		if err := database.SeedCriteriaMaster(db); err != nil {
			logger.Log.Fatal("failed to seed criteria taxonomy", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(cfg)
	if err != nil {
		// Tokens cannot be revoked without redis but auth still works.
		logger.Log.Warn("redis unavailable, token revocation disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("naac-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg, services)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
