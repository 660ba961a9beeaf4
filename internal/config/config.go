package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rykoi/storefront/internal/pricing"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress    string        // Адрес и порт запуска сервиса
	DatabaseURI   string        // URI подключения к БД
	PublicBaseURL string        // Базовый адрес витрины для возврата из оплаты
	JWTSecret     string        // Секретный ключ для JWT
	JWTTokenTTL   time.Duration // Время жизни JWT токена
	LogLevel      string        // Уровень логирования

	// Stripe
	StripeSecretKey     string
	StripeWebhookSecret string
	StripeMaxRetries    int64
	Currency            string

	// Курс обмена
	PricingConfigPath string
	Pricing           pricing.Policy

	// Дедупликация webhook событий, пустой адрес отключает Redis
	RedisURL        string
	WebhookDedupTTL time.Duration

	// Публикация событий, без брокеров события пишутся в лог
	KafkaBrokers []string
	KafkaTopic   string

	// Worker Pool конфигурация
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди событий
	WorkerScanInterval time.Duration // Интервал сканирования outbox
	OutboxBatchSize    int           // Событий за один проход
	OutboxMaxAttempts  int           // Попыток публикации до перевода события в DEAD

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки.
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:], os.LookupEnv)
}

// LoadFrom загружает конфигурацию из переданных аргументов и источника env
func LoadFrom(args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        24 * time.Hour,
		LogLevel:           "info",
		StripeMaxRetries:   2,
		Currency:           "eur",
		Pricing:            pricing.DefaultPolicy(),
		WebhookDedupTTL:    72 * time.Hour,
		KafkaTopic:         "pokeball.settlements",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		OutboxBatchSize:    50,
		OutboxMaxAttempts:  10,
		MinPasswordLength:  6,
	}

	// Определяем флаги
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.PublicBaseURL, "u", "http://localhost:3000", "public base URL for checkout redirects")
	fs.StringVar(&cfg.PricingConfigPath, "p", "", "path to pricing YAML")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	setString(lookupEnv, "RUN_ADDRESS", &cfg.RunAddress)
	setString(lookupEnv, "DATABASE_URI", &cfg.DatabaseURI)
	setString(lookupEnv, "PUBLIC_BASE_URL", &cfg.PublicBaseURL)
	setString(lookupEnv, "PRICING_CONFIG", &cfg.PricingConfigPath)
	setString(lookupEnv, "LOG_LEVEL", &cfg.LogLevel)
	setString(lookupEnv, "REDIS_URL", &cfg.RedisURL)
	setString(lookupEnv, "KAFKA_TOPIC", &cfg.KafkaTopic)

	// Секреты только из env, не из флагов
	setString(lookupEnv, "STRIPE_SECRET_KEY", &cfg.StripeSecretKey)
	setString(lookupEnv, "STRIPE_WEBHOOK_SECRET", &cfg.StripeWebhookSecret)
	if envJWTSecret, ok := lookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envCurrency, ok := lookupEnv("CURRENCY"); ok && envCurrency != "" {
		cfg.Currency = strings.ToLower(envCurrency)
	}

	if envBrokers, ok := lookupEnv("KAFKA_BROKERS"); ok {
		cfg.KafkaBrokers = splitList(envBrokers)
	}

	setDuration(lookupEnv, "JWT_TOKEN_TTL", &cfg.JWTTokenTTL)
	setDuration(lookupEnv, "WEBHOOK_DEDUP_TTL", &cfg.WebhookDedupTTL)
	setDuration(lookupEnv, "WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval)
	setPositiveInt(lookupEnv, "WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	setPositiveInt(lookupEnv, "WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	setPositiveInt(lookupEnv, "OUTBOX_BATCH_SIZE", &cfg.OutboxBatchSize)
	setPositiveInt(lookupEnv, "OUTBOX_MAX_ATTEMPTS", &cfg.OutboxMaxAttempts)

	if envRetries, ok := lookupEnv("STRIPE_MAX_RETRIES"); ok {
		if retries, err := strconv.ParseInt(envRetries, 10, 64); err == nil && retries >= 0 {
			cfg.StripeMaxRetries = retries
		}
	}

	if cfg.PricingConfigPath != "" {
		policy, err := LoadPricing(cfg.PricingConfigPath)
		if err != nil {
			return nil, err
		}
		cfg.Pricing = policy
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required (use STRIPE_SECRET_KEY env)")
	}

	if cfg.StripeWebhookSecret == "" {
		return nil, fmt.Errorf("stripe webhook secret is required (use STRIPE_WEBHOOK_SECRET env)")
	}

	return cfg, nil
}

// pricingFile формат YAML файла с курсом
type pricingFile struct {
	Pricing struct {
		ContributionUnit string `yaml:"contribution_unit"`
		CreditsPerUnit   int64  `yaml:"credits_per_unit"`
		BoxSharePerUnit  string `yaml:"box_share_per_unit"`
		MinAmount        string `yaml:"min_amount"`
	} `yaml:"pricing"`
}

// LoadPricing читает курс из YAML файла.
// Отсутствующие поля берутся из курса по умолчанию, результат проверяется.
func LoadPricing(path string) (pricing.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pricing.Policy{}, fmt.Errorf("config: failed to read pricing file %q: %w", path, err)
	}

	return ParsePricing(data)
}

// ParsePricing разбирает YAML с курсом
func ParsePricing(data []byte) (pricing.Policy, error) {
	var file pricingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return pricing.Policy{}, fmt.Errorf("config: failed to parse pricing: %w", err)
	}

	policy := pricing.DefaultPolicy()
	raw := file.Pricing

	var err error
	if policy.ContributionUnit, err = overrideDecimal(policy.ContributionUnit, raw.ContributionUnit, "contribution_unit"); err != nil {
		return pricing.Policy{}, err
	}
	if policy.BoxSharePerUnit, err = overrideDecimal(policy.BoxSharePerUnit, raw.BoxSharePerUnit, "box_share_per_unit"); err != nil {
		return pricing.Policy{}, err
	}
	if policy.MinAmount, err = overrideDecimal(policy.MinAmount, raw.MinAmount, "min_amount"); err != nil {
		return pricing.Policy{}, err
	}
	if raw.CreditsPerUnit != 0 {
		policy.CreditsPerUnit = raw.CreditsPerUnit
	}

	if err := policy.Validate(); err != nil {
		return pricing.Policy{}, fmt.Errorf("config: invalid pricing: %w", err)
	}

	return policy, nil
}

func overrideDecimal(current decimal.Decimal, raw, field string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Join(fmt.Errorf("config: invalid %s %q", field, raw), err)
	}

	return value, nil
}

func setString(lookupEnv func(string) (string, bool), key string, dst *string) {
	if value, ok := lookupEnv(key); ok {
		*dst = value
	}
}

func setDuration(lookupEnv func(string) (string, bool), key string, dst *time.Duration) {
	if value, ok := lookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			*dst = d
		}
	}
}

func setPositiveInt(lookupEnv func(string) (string, bool), key string, dst *int) {
	if value, ok := lookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			*dst = n
		}
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
