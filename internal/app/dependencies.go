package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rykoi/storefront/internal/cache"
	"github.com/rykoi/storefront/internal/config"
	"github.com/rykoi/storefront/internal/domain"
	"github.com/rykoi/storefront/internal/events"
	"github.com/rykoi/storefront/internal/handlers"
	"github.com/rykoi/storefront/internal/repository/postgres"
	"github.com/rykoi/storefront/internal/service"
	"github.com/rykoi/storefront/internal/utils/jwt"
	"github.com/rykoi/storefront/internal/utils/password"
	"github.com/rykoi/storefront/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user         domain.UserRepository
	box          domain.BoxRepository
	contribution domain.ContributionRepository
	settlement   domain.SettlementRepository
	transaction  domain.TransactionRepository
	activity     domain.ActivityRepository
	pack         domain.PackRepository
	outbox       domain.OutboxRepository
}

// services содержит все сервисы приложения
type services struct {
	auth       domain.AuthService
	checkout   domain.CheckoutService
	settlement domain.SettlementService
	ledger     domain.LedgerService
	pack       domain.PackService
	box        domain.BoxService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	checkout *handlers.CheckoutHandler
	payments *handlers.PaymentsHandler
	webhook  *handlers.WebhookHandler
	balance  *handlers.BalanceHandler
	boxes    *handlers.BoxesHandler
	packs    *handlers.PacksHandler
	health   *handlers.HealthHandler
}

// publisher публикует события и освобождает соединения при остановке
type publisher interface {
	domain.EventPublisher
	Close() error
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos       *repositories
	services    *services
	handlers    *handlerSet
	jwtManager  *jwt.Manager
	workerPool  *worker.Pool
	publisher   publisher
	redisClient *redis.Client // nil, если Redis не настроен
}

// initDependencies создает все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user:         postgres.NewUserRepository(dbPool),
		box:          postgres.NewBoxRepository(dbPool),
		contribution: postgres.NewContributionRepository(dbPool),
		settlement:   postgres.NewSettlementRepository(dbPool),
		transaction:  postgres.NewTransactionRepository(dbPool),
		activity:     postgres.NewActivityRepository(dbPool),
		pack:         postgres.NewPackRepository(dbPool),
		outbox:       postgres.NewOutboxRepository(dbPool, postgres.DefaultClaimTimeout, cfg.OutboxMaxAttempts),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost, cfg.MinPasswordLength)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	gateway := service.NewStripeGateway(service.StripeConfig{
		SecretKey:         cfg.StripeSecretKey,
		WebhookSecret:     cfg.StripeWebhookSecret,
		PublicBaseURL:     cfg.PublicBaseURL,
		MaxNetworkRetries: cfg.StripeMaxRetries,
	}, logger)

	// Дедупликация webhook событий
	var (
		dedup       domain.EventDeduplicator = cache.NopDeduplicator{}
		redisClient *redis.Client
		cachePinger handlers.Pinger
	)
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		redisClient = client
		dedup = cache.NewRedisDeduplicator(client, cfg.WebhookDedupTTL)
		cachePinger = handlers.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
		logger.Info("webhook deduplication uses redis")
	}

	// Публикация событий
	var eventPublisher publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			if redisClient != nil {
				_ = redisClient.Close()
			}
			return nil, fmt.Errorf("failed to init kafka publisher: %w", err)
		}
		eventPublisher = kafkaPublisher
		logger.Info("settlement events are published to kafka",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaTopic),
		)
	} else {
		eventPublisher = events.NewLogPublisher(logger)
	}

	// Создание сервисов
	svcs := &services{
		auth:       service.NewAuthService(repos.user, passwordHasher, jwtManager),
		checkout:   service.NewCheckoutService(gateway, repos.box, repos.user, cfg.Pricing, cfg.Currency, logger),
		settlement: service.NewSettlementService(gateway, repos.settlement, repos.contribution, logger),
		ledger:     service.NewLedgerService(repos.user, repos.transaction),
		pack:       service.NewPackService(repos.pack, logger),
		box:        service.NewBoxService(repos.box, repos.contribution, repos.activity, repos.user),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		checkout: handlers.NewCheckoutHandler(svcs.checkout, logger),
		payments: handlers.NewPaymentsHandler(svcs.settlement, logger),
		webhook:  handlers.NewWebhookHandler(gateway, svcs.settlement, dedup, logger),
		balance:  handlers.NewBalanceHandler(svcs.ledger, logger),
		boxes:    handlers.NewBoxesHandler(svcs.box, logger),
		packs:    handlers.NewPacksHandler(svcs.pack, logger),
		health:   handlers.NewHealthHandler(dbPool, cachePinger, logger),
	}

	// Создание worker pool для outbox
	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, repos.outbox, eventPublisher, logger)
	workerPool.SetScanInterval(cfg.WorkerScanInterval)
	workerPool.SetBatchSize(cfg.OutboxBatchSize)

	return &dependencies{
		repos:       repos,
		services:    svcs,
		handlers:    hdlrs,
		jwtManager:  jwtManager,
		workerPool:  workerPool,
		publisher:   eventPublisher,
		redisClient: redisClient,
	}, nil
}
