package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rykoi/storefront/internal/config"
	"github.com/rykoi/storefront/internal/worker"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config      *config.Config
	logger      *zap.Logger
	db          *pgxpool.Pool
	redisClient *redis.Client
	publisher   publisher
	router      *chi.Mux
	workerPool  *worker.Pool
	server      *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграции
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(ctx, cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	logger.Info("pricing configured",
		zap.Stringer("contribution_unit", cfg.Pricing.ContributionUnit),
		zap.Int64("credits_per_unit", cfg.Pricing.CreditsPerUnit),
		zap.Stringer("box_share_per_unit", cfg.Pricing.BoxSharePerUnit),
		zap.String("currency", cfg.Currency),
	)

	// Настройка роутера
	router := setupRouter(deps, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:      cfg,
		logger:      logger,
		db:          dbPool,
		redisClient: deps.redisClient,
		publisher:   deps.publisher,
		router:      router,
		workerPool:  deps.workerPool,
		server:      server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск relay outbox
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
