package app

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/templui/goaltracker/internal/config"
	"github.com/templui/goaltracker/internal/db"
	"github.com/templui/goaltracker/internal/markdown"
	"github.com/templui/goaltracker/internal/middleware"
	"github.com/templui/goaltracker/internal/repository"
	"github.com/templui/goaltracker/internal/service"
	"github.com/templui/goaltracker/internal/storage"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Parser          *markdown.Parser
	GoalService     *service.GoalService
	TaskService     *service.TaskService
	ProgressService *service.ProgressService
	CalendarService *service.CalendarService
	PlanService     *service.PlanService
	SnapshotService *service.SnapshotService
	DigestService   *service.DigestService

	// Rate limiting of heavy endpoints; Redis is nil without REDIS_URL
	Redis   *redis.Client
	Limiter middleware.Limiter
}

// New opens and migrates the store and wires every service. A store that
// cannot be opened is returned as db.ErrInit.
func New(cfg *config.Config) (*App, error) {
	policy, err := service.ParseDeletePolicy(cfg.GoalDeletePolicy)
	if err != nil {
		return nil, err
	}

	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	taskRepository := repository.NewTaskRepository(database)

	// Storage
	snapshotStorage, err := storage.New(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Rate limiting
	redisClient, limiter, err := newLimiter(cfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	// Services
	parser := markdown.NewParser()
	progressService := service.NewProgressService(taskRepository)
	goalService := service.NewGoalService(goalRepository, taskRepository, progressService, policy)
	taskService := service.NewTaskService(taskRepository, goalRepository, progressService)
	calendarService := service.NewCalendarService(taskRepository)
	planService := service.NewPlanService(parser, goalService, taskService, goalRepository)
	snapshotService := service.NewSnapshotService(goalRepository, taskRepository, progressService, snapshotStorage)
	digestService := service.NewDigestService(calendarService, cfg.ResendAPIKey, cfg.EmailFrom, cfg.DigestTo, cfg.AppName, cfg.IsDevelopment())

	return &App{
		Cfg:             cfg,
		DB:              database,
		Parser:          parser,
		GoalService:     goalService,
		TaskService:     taskService,
		ProgressService: progressService,
		CalendarService: calendarService,
		PlanService:     planService,
		SnapshotService: snapshotService,
		DigestService:   digestService,
		Redis:           redisClient,
		Limiter:         limiter,
	}, nil
}

func newLimiter(cfg *config.Config) (*redis.Client, middleware.Limiter, error) {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = config.DefaultRateLimit
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = config.DefaultRateLimitWindow
	}

	if cfg.RedisURL == "" {
		return nil, middleware.NewRateLimiter(limit, window), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)
	return client, middleware.NewRedisRateLimiter(client, "goaltracker:ratelimit:", limit, window), nil
}

func (a *App) Close() error {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
