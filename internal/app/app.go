package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"advent_quiz_backend/internal/config"
	"advent_quiz_backend/internal/controller"
	"advent_quiz_backend/internal/repository"
	"advent_quiz_backend/internal/service"
	"advent_quiz_backend/pkg/database"
	"advent_quiz_backend/pkg/logger"
	"advent_quiz_backend/pkg/monitoring"
	"advent_quiz_backend/pkg/security"
	"advent_quiz_backend/pkg/tracing"

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

	// Game is exposed so the config watcher can swap thresholds at runtime.
	Game *service.PuzzleGameService
}

type repositories struct {
	test        *repository.TestRepository
	answer      *repository.AnswerRepository
	wrongAnswer *repository.WrongAnswerRepository
	result      *repository.ResultRepository
}

type services struct {
	test    *service.TestService
	game    *service.PuzzleGameService
	stats   *service.AnswerStatsService
	ranking *service.RankingService
}

type controllers struct {
	test    *controller.TestController
	game    *controller.GameController
	stats   *controller.StatsController
	ranking *controller.RankingController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		test:        repository.NewTestRepository(db),
		answer:      repository.NewAnswerRepository(db),
		wrongAnswer: repository.NewWrongAnswerRepository(db),
		result:      repository.NewResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.test = service.NewTestService(repos.test, repos.answer, repos.wrongAnswer)
	s.game = service.NewPuzzleGameService(s.test, repos.answer, cfg.Game)
	s.stats = service.NewAnswerStatsService(repos.answer, repos.wrongAnswer)
	s.ranking = service.NewRankingService(repos.result, rdb, cfg.Game.RankingCacheTTL)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		test:    controller.NewTestController(s.test),
		game:    controller.NewGameController(s.game),
		stats:   controller.NewStatsController(s.stats),
		ranking: controller.NewRankingController(s.ranking),
		health:  controller.NewHealthController(db),
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

	// Release deployments migrate only when asked to; everywhere else the
	// schema tracks the models automatically.
	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
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
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)
	app.Game = services.game

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("advent-quiz", cfg.Tracing.CollectorEndpoint, cfg.Tracing.SampleRatio); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
