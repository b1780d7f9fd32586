package app

import (
	"context"
	"learnhub_backend/internal/config"
	"learnhub_backend/internal/controller"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/service"
	"learnhub_backend/pkg/database"
	"learnhub_backend/pkg/logger"
	"learnhub_backend/pkg/monitoring"
	"learnhub_backend/pkg/security"
	"learnhub_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user        *repository.UserRepository
	progress    *repository.ProgressRepository
	session     *repository.SessionRepository
	activity    *repository.ActivityRepository
	discussion  *repository.DiscussionRepository
	achievement *repository.AchievementRepository
	content     *repository.ContentRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	content     *service.ContentService
	streak      *service.StreakService
	progress    *service.ProgressService
	engagement  *service.EngagementService
	leaderboard *service.LeaderboardService
	achievement *service.AchievementService
	study       *service.StudyService
	discussion  *service.DiscussionService
	activity    *service.ActivityService
	dashboard   *service.DashboardService
	analytics   *service.AnalyticsService
	hub         *service.ActivityHub
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	dashboard   *controller.DashboardController
	study       *controller.StudyController
	progress    *controller.ProgressController
	leaderboard *controller.LeaderboardController
	discussion  *controller.DiscussionController
	achievement *controller.AchievementController
	activity    *controller.ActivityController
	analytics   *controller.AnalyticsController
	content     *controller.ContentController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progress:    repository.NewProgressRepository(db),
		session:     repository.NewSessionRepository(db),
		activity:    repository.NewActivityRepository(db),
		discussion:  repository.NewDiscussionRepository(db),
		achievement: repository.NewAchievementRepository(db),
		content:     repository.NewContentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.hub = service.NewActivityHub(rdb)
	go s.hub.Run()

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.content = service.NewContentService(repos.content, s.storage)

	s.streak = service.NewStreakService(repos.session, repos.user)
	s.progress = service.NewProgressService(repos.progress, repos.content, repos.activity, cfg)
	s.achievement = service.NewAchievementService(
		repos.achievement,
		repos.session,
		repos.progress,
		repos.activity,
		repos.discussion,
		s.streak,
		s.hub,
	)
	s.engagement = service.NewEngagementService(
		repos.progress,
		repos.activity,
		repos.session,
		repos.discussion,
		repos.achievement,
		repos.user,
		s.streak,
	)
	s.leaderboard = service.NewLeaderboardService(repos.progress, repos.achievement, repos.discussion, repos.user, rdb)
	s.study = service.NewStudyService(db, repos.session, repos.progress, repos.activity, s.streak, s.achievement, s.hub)
	s.discussion = service.NewDiscussionService(db, repos.discussion, repos.activity, s.achievement, s.hub)
	s.activity = service.NewActivityService(repos.activity, s.hub)
	s.dashboard = service.NewDashboardService(s.streak, s.progress, repos.activity, repos.achievement)
	s.analytics = service.NewAnalyticsService(repos.user, s.engagement)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		dashboard:   controller.NewDashboardController(s.dashboard),
		study:       controller.NewStudyController(s.study),
		progress:    controller.NewProgressController(s.progress, s.streak),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		discussion:  controller.NewDiscussionController(s.discussion),
		achievement: controller.NewAchievementController(s.achievement),
		activity:    controller.NewActivityController(s.activity, s.hub),
		analytics:   controller.NewAnalyticsController(s.analytics),
		content:     controller.NewContentController(s.content),
		health:      controller.NewHealthController(db),
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

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	svcs := app.initServices(repos, cfg, db, rdb)
	app.services = svcs
	ctrls := app.initControllers(svcs, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learnhub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
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

	if a.services != nil && a.services.hub != nil {
		a.services.hub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
