package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradebook_backend/internal/config"
	"gradebook_backend/internal/controller"
	"gradebook_backend/internal/repository"
	"gradebook_backend/internal/service"
	"gradebook_backend/pkg/configwatcher"
	"gradebook_backend/pkg/database"
	"gradebook_backend/pkg/logger"
	"gradebook_backend/pkg/monitoring"
	"gradebook_backend/pkg/security"
	"gradebook_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	gradebook *repository.GradebookRepository
}

type services struct {
	grade     *service.GradeService
	schedule  *service.ScheduleService
	importSvc *service.ImportService
	gradebook *service.GradebookService
}

type controllers struct {
	gradebook  *controller.GradebookController
	subject    *controller.SubjectController
	assignment *controller.AssignmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		gradebook: repository.NewGradebookRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.grade = service.NewGradeService()
	s.schedule = service.NewScheduleService(cfg.Schedule.WindowDays)
	s.importSvc = service.NewImportService()
	s.gradebook = service.NewGradebookService(repos.gradebook, s.grade, s.schedule, s.importSvc)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		gradebook:  controller.NewGradebookController(s.gradebook),
		subject:    controller.NewSubjectController(s.gradebook),
		assignment: controller.NewAssignmentController(s.gradebook),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig 热更新展望窗口等可调参数
func (a *App) watchConfig(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.schedule.SetWindowDays(cfg.Schedule.WindowDays)
		logger.Log.Info("Config reloaded", zap.Int("windowDays", cfg.Schedule.WindowDays))
	})

	go configwatcher.WatchConfig("configs/config.yaml", a.Config, func(cfg interface{}) {
		newCfg, ok := cfg.(*config.Config)
		if !ok {
			return
		}
		a.Config = newCfg
		for _, callback := range a.configCallbacks {
			callback(newCfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("gradebook-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers)

	app.watchConfig(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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
