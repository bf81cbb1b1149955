package app

import (
	"context"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/controller"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/pkg/configwatcher"
	"ielts_tracker_backend/pkg/database"
	"ielts_tracker_backend/pkg/logger"
	"ielts_tracker_backend/pkg/monitoring"
	"ielts_tracker_backend/pkg/security"
	"ielts_tracker_backend/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configFile = "configs/config.yaml"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	section  *repository.SectionRepository
	test     *repository.PracticeTestRepository
	weakArea *repository.WeakAreaRepository
	session  *repository.StudySessionRepository
	goal     *repository.GoalRepository
	resource *repository.ResourceRepository
	plan     *repository.StudyPlanRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	storage   *service.StorageService
	practice  *service.PracticeService
	weakArea  *service.WeakAreaService
	session   *service.StudySessionService
	goal      *service.GoalService
	resource  *service.ResourceService
	plan      *service.StudyPlanService
	dashboard *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	section   *controller.SectionController
	practice  *controller.PracticeController
	weakArea  *controller.WeakAreaController
	session   *controller.StudySessionController
	goal      *controller.GoalController
	resource  *controller.ResourceController
	plan      *controller.StudyPlanController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		section:  repository.NewSectionRepository(db),
		test:     repository.NewPracticeTestRepository(db, rdb),
		weakArea: repository.NewWeakAreaRepository(db),
		session:  repository.NewStudySessionRepository(db),
		goal:     repository.NewGoalRepository(db),
		resource: repository.NewResourceRepository(db),
		plan:     repository.NewStudyPlanRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.practice = service.NewPracticeService(repos.test, repos.section)
	s.weakArea = service.NewWeakAreaService(repos.weakArea, repos.section, repos.test)
	s.session = service.NewStudySessionService(repos.session, repos.section)
	s.goal = service.NewGoalService(repos.goal, repos.test, repos.section, cfg)
	s.resource = service.NewResourceService(repos.resource, repos.section, s.storage)
	s.plan = service.NewStudyPlanService(db, repos.plan, repos.test, repos.weakArea, repos.section, repos.resource, cfg)

	s.dashboard = service.NewDashboardService(
		repos.user,
		repos.test,
		repos.session,
		repos.weakArea,
		repos.section,
		s.practice,
		s.plan,
		s.goal,
		rdb,
		cfg.Dashboard.CacheTTL(),
	)

	return s, nil
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		user:      controller.NewUserController(s.user),
		section:   controller.NewSectionController(repos.section),
		practice:  controller.NewPracticeController(s.practice),
		weakArea:  controller.NewWeakAreaController(s.weakArea),
		session:   controller.NewStudySessionController(s.session),
		goal:      controller.NewGoalController(s.goal),
		resource:  controller.NewResourceController(s.resource),
		plan:      controller.NewStudyPlanController(s.plan),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db, rdb),
	}
}

// registerReloaders 配置文件变化后需要同步的运行时参数
func (a *App) registerReloaders(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.dashboard.SetCacheTTL(cfg.Dashboard.CacheTTL())
		s.plan.SetPlannerConfig(cfg.Planner)
		s.goal.SetLookaheadDays(cfg.Planner.GoalLookaheadDays)
		logger.Log.Info("Runtime settings reloaded",
			zap.Duration("dashboard_cache_ttl", cfg.Dashboard.CacheTTL()),
			zap.Int("upcoming_default_days", cfg.Planner.UpcomingDefaultDays),
			zap.Int("upcoming_max_days", cfg.Planner.UpcomingMaxDays),
			zap.Int("goal_lookahead_days", cfg.Planner.GoalLookaheadDays))
	})
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(ctx context.Context, s *services) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := s.plan.CompleteExpiredPlans()
				if err != nil {
					logger.Log.Error("complete expired plans error", zap.Error(err))
					continue
				}
				if n > 0 {
					logger.Log.Info("Expired plans completed", zap.Int64("count", n))
				}
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode == "debug" || cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		if cfg.MigrateOnly {
			return &App{Config: cfg, DB: db}
		}
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

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)
	app.registerReloaders(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("ielts-tracker", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := configwatcher.WatchConfig(ctx, configFile, func(cfg *config.Config) {
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	}); err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}

	a.startBackgroundTasks(ctx, a.services)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
