package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sat_prep_backend/internal/config"
	"sat_prep_backend/internal/controller"
	"sat_prep_backend/internal/generator"
	"sat_prep_backend/internal/llm"
	"sat_prep_backend/internal/repository"
	"sat_prep_backend/internal/service"
	"sat_prep_backend/pkg/database"
	"sat_prep_backend/pkg/logger"
	"sat_prep_backend/pkg/monitoring"
	"sat_prep_backend/pkg/security"
	"sat_prep_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sessionRefreshInterval throttles per-user profile reloads behind
// authenticated requests.
const sessionRefreshInterval = 30 * time.Second

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user         *repository.UserRepository
	section      *repository.SectionRepository
	answer       *repository.AnswerRepository
	result       *repository.ResultRepository
	practiceTest *repository.PracticeTestRepository
	session      *repository.SectionSessionRepository
	followUp     *repository.FollowUpRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	section      *service.SectionService
	generation   *service.GenerationService
	answer       *service.AnswerService
	practiceTest *service.PracticeTestService
	result       *service.ResultService
	attempt      *service.AttemptService
	followUp     *service.FollowUpService
	sessions     *service.SessionContextService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	section      *controller.SectionController
	answer       *controller.AnswerController
	result       *controller.ResultController
	practiceTest *controller.PracticeTestController
	followUp     *controller.FollowUpController
	attempt      *controller.AttemptController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		section:      repository.NewSectionRepository(db),
		answer:       repository.NewAnswerRepository(db),
		result:       repository.NewResultRepository(db),
		practiceTest: repository.NewPracticeTestRepository(db),
		session:      repository.NewSectionSessionRepository(db),
		followUp:     repository.NewFollowUpRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.sessions = service.NewSessionContextService(sessionRefreshInterval, repos.user)
	s.section = service.NewSectionService(repos.section, rdb)

	gen := generator.New(newProvider(cfg), generatorConfig(cfg.Generation))
	s.generation = service.NewGenerationService(gen, repos.section, rdb, cfg.Generation)
	s.generation.OnSectionCreated(func(ctx context.Context) {
		s.section.InvalidateListCache(ctx)
	})

	s.answer = service.NewAnswerService(repos.answer)
	s.practiceTest = service.NewPracticeTestService(repos.practiceTest, repos.section, repos.answer, repos.result)
	s.result = service.NewResultService(repos.result, repos.section)
	s.attempt = service.NewAttemptService(repos.session)
	s.followUp = service.NewFollowUpService(repos.followUp, repos.section, gen)

	return s
}

// newProvider builds the generation backend. Requests go through the
// retry wrapper so transient provider failures stay invisible to the
// caller.
func newProvider(cfg *config.Config) llm.Provider {
	provider, err := llm.NewOpenAIProvider(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
	if err != nil {
		logger.Log.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	return llm.WithRetry(provider, llm.DefaultRetryConfig())
}

func generatorConfig(cfg config.GenerationConfig) generator.Config {
	gc := generator.DefaultConfig()
	if cfg.QuestionCount > 0 {
		gc.QuestionCount = cfg.QuestionCount
	}
	if cfg.ChoiceCount > 0 {
		gc.ChoiceCount = cfg.ChoiceCount
	}
	if cfg.MaxTokens > 0 {
		gc.MaxTokens = cfg.MaxTokens
	}
	if cfg.Temperature > 0 {
		gc.Temperature = cfg.Temperature
	}
	return gc
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.sessions),
		user:         controller.NewUserController(repos.user, s.storage),
		section:      controller.NewSectionController(s.section, s.generation),
		answer:       controller.NewAnswerController(s.answer),
		result:       controller.NewResultController(s.result),
		practiceTest: controller.NewPracticeTestController(s.practiceTest),
		followUp:     controller.NewFollowUpController(s.followUp),
		attempt:      controller.NewAttemptController(s.attempt),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis is a soft dependency (list cache, debounce); run without it.
		logger.Log.Warn("Redis unavailable, continuing without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("sat-prep", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, repos, cfg)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
