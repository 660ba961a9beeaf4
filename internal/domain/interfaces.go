package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, username, name, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetTopContributors(ctx context.Context, limit int) ([]*Contributor, error)
}

// BoxRepository определяет методы для чтения коробок
type BoxRepository interface {
	GetBoxByID(ctx context.Context, id uuid.UUID) (*Box, error)
	GetActiveBoxes(ctx context.Context) ([]*Box, error)
}

// ContributionRepository определяет методы для чтения взносов
type ContributionRepository interface {
	GetContributionByReference(ctx context.Context, paymentReference string) (*Contribution, error)
	GetBoxContributions(ctx context.Context, boxID uuid.UUID, limit int) ([]*Contribution, error)
}

// SettlementRepository проводит платеж одной транзакцией
type SettlementRepository interface {
	ApplySettlement(ctx context.Context, settlement Settlement) (*SettlementResult, error)
}

// TransactionRepository определяет методы для работы с движениями покеболов
type TransactionRepository interface {
	GetTransactions(ctx context.Context, userID uuid.UUID) ([]*CreditTransaction, error)
}

// ActivityRepository определяет методы для чтения ленты активности
type ActivityRepository interface {
	GetActivityFeed(ctx context.Context, limit int) ([]*ActivityEntry, error)
}

// PackRepository определяет методы для работы с паками
type PackRepository interface {
	GetAvailablePacks(ctx context.Context) ([]*Pack, error)
	PurchasePack(ctx context.Context, userID, packID uuid.UUID, scheduledStream time.Time) (*PackPurchase, error)
}

// OutboxRepository определяет методы для работы с outbox событий
type OutboxRepository interface {
	ClaimPendingEvents(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID) error
	// MarkFailed возвращает true, если попытки исчерпаны и событие больше не публикуется
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) (bool, error)
}

// PaymentGateway определяет методы взаимодействия с платежным шлюзом
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	RetrieveSession(ctx context.Context, sessionID string) (*SessionSnapshot, error)
	VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

// EventPublisher публикует события во внешнюю шину
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload []byte, partitionKey string) error
}

// EventDeduplicator отсекает повторные доставки webhook событий
type EventDeduplicator interface {
	MarkSeen(ctx context.Context, eventID string) (bool, error)
	Forget(ctx context.Context, eventID string) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, username, password string) (*AuthSession, error)
	Login(ctx context.Context, username, password string) (*AuthSession, error)
}

// CheckoutService определяет методы создания оплаты
type CheckoutService interface {
	StartCheckout(ctx context.Context, input CheckoutInput) (*CheckoutSession, error)
}

// SettlementService определяет методы проведения платежей
type SettlementService interface {
	Settle(ctx context.Context, snapshot *SessionSnapshot) (*SettlementResult, error)
	VerifySession(ctx context.Context, sessionID string) (*SettlementResult, error)
	HandleEvent(ctx context.Context, event *WebhookEvent) error
}

// LedgerService определяет методы работы с балансом покеболов
type LedgerService interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*Balance, error)
	GetTransactions(ctx context.Context, userID uuid.UUID) ([]*CreditTransaction, error)
}

// PackService определяет методы работы с паками
type PackService interface {
	ListPacks(ctx context.Context) ([]*Pack, error)
	Purchase(ctx context.Context, userID, packID uuid.UUID) (*PackPurchase, error)
}

// BoxService определяет методы чтения коробок и ленты
type BoxService interface {
	GetActiveBoxes(ctx context.Context) ([]*Box, error)
	GetBox(ctx context.Context, id uuid.UUID) (*Box, error)
	GetBoxContributions(ctx context.Context, id uuid.UUID, limit int) ([]*Contribution, error)
	GetActivityFeed(ctx context.Context, limit int) ([]*ActivityEntry, error)
	GetLeaderboard(ctx context.Context, limit int) ([]*Contributor, error)
}
