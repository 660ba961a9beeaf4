package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BoxStatus представляет статус сбора на коробку
type BoxStatus string

const (
	BoxStatusFunding   BoxStatus = "FUNDING"
	BoxStatusReady     BoxStatus = "READY"
	BoxStatusBreaking  BoxStatus = "BREAKING"
	BoxStatusCompleted BoxStatus = "COMPLETED"
)

// AcceptsContributions сообщает, можно ли еще вносить деньги в коробку
func (s BoxStatus) AcceptsContributions() bool {
	return s == BoxStatusFunding || s == BoxStatusReady
}

// ContributionStatus представляет статус взноса
type ContributionStatus string

const (
	ContributionStatusPending   ContributionStatus = "PENDING"
	ContributionStatusCompleted ContributionStatus = "COMPLETED"
	ContributionStatusFailed    ContributionStatus = "FAILED"
	ContributionStatusRefunded  ContributionStatus = "REFUNDED"
)

// CreditTransactionType представляет тип движения покеболов
type CreditTransactionType string

const (
	CreditTransactionContribution CreditTransactionType = "CONTRIBUTION"
	CreditTransactionPackPurchase CreditTransactionType = "PACK_PURCHASE"
	CreditTransactionRefund       CreditTransactionType = "REFUND"
)

// PurchaseStatus представляет статус покупки пака
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusConfirmed PurchaseStatus = "CONFIRMED"
	PurchaseStatusOpened    PurchaseStatus = "OPENED"
)

// Типы событий платежного шлюза
const (
	EventCheckoutCompleted          = "checkout.session.completed"
	EventCheckoutAsyncSucceeded     = "checkout.session.async_payment_succeeded"
	EventCheckoutAsyncFailed        = "checkout.session.async_payment_failed"
	EventPaymentIntentSucceeded     = "payment_intent.succeeded"
	EventPaymentIntentPaymentFailed = "payment_intent.payment_failed"
)

// EventContributionSettled тип события в outbox после успешного расчета
const EventContributionSettled = "contribution.settled"

// Типы записей ленты активности
const (
	ActivityContribution = "CONTRIBUTION"
	ActivityPackPurchase = "PACK_PURCHASE"
)

// AnonymousUsername имя в ленте для взносов без пользователя
const AnonymousUsername = "Anónimo"

// User представляет пользователя магазина
type User struct {
	ID               uuid.UUID       `json:"id"`
	Username         string          `json:"username"`
	Name             string          `json:"name"`
	Email            *string         `json:"email,omitempty"`
	PasswordHash     string          `json:"-"` // Не отправляем хеш в JSON
	Pokeballs        int64           `json:"pokeballs"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
	PacksPurchased   int             `json:"packs_purchased"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AuthSession результат входа или регистрации
type AuthSession struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Pokeballs int64     `json:"pokeballs"`
}

// Balance представляет баланс покеболов пользователя
type Balance struct {
	Pokeballs        int64           `json:"pokeballs"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// Box представляет коробку, на которую идет сбор
type Box struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	ImageURL          string          `json:"image_url"`
	SetName           *string         `json:"set_name,omitempty"`
	TargetPrice       decimal.Decimal `json:"target_price"`
	CurrentRaised     decimal.Decimal `json:"current_raised"`
	ContributorsCount int             `json:"contributors_count"`
	Status            BoxStatus       `json:"status"`
	ScheduledBreak    *time.Time      `json:"scheduled_break,omitempty"`
	StreamURL         *string         `json:"stream_url,omitempty"`
	IsFeatured        bool            `json:"is_featured"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Contribution представляет один проведенный платеж
type Contribution struct {
	ID               uuid.UUID          `json:"id"`
	UserID           *uuid.UUID         `json:"user_id,omitempty"`
	BoxID            *uuid.UUID         `json:"box_id,omitempty"`
	AmountPaid       decimal.Decimal    `json:"amount_paid"`
	BoxShare         decimal.Decimal    `json:"box_share"`
	CreditsGranted   int64              `json:"credits_granted"`
	Status           ContributionStatus `json:"status"`
	PaymentReference string             `json:"-"`
	SessionID        string             `json:"-"`
	Currency         string             `json:"currency"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
}

// CreditTransaction представляет движение покеболов на счете пользователя
type CreditTransaction struct {
	ID          int64                 `json:"-"`
	UserID      uuid.UUID             `json:"-"`
	Type        CreditTransactionType `json:"type"`
	Credits     int64                 `json:"credits"`
	Amount      decimal.Decimal       `json:"amount"`
	ReferenceID string                `json:"reference"`
	CreatedAt   time.Time             `json:"created_at"`
}

// ActivityEntry представляет запись публичной ленты активности
type ActivityEntry struct {
	ID        uuid.UUID      `json:"id"`
	UserID    *uuid.UUID     `json:"user_id,omitempty"`
	Username  string         `json:"username"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Contributor представляет строку рейтинга участников
type Contributor struct {
	UserID           uuid.UUID       `json:"user_id"`
	Username         string          `json:"username"`
	Name             string          `json:"name"`
	TotalContributed decimal.Decimal `json:"total_contributed"`
}

// Pack представляет пак, который покупается за покеболы
type Pack struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	SetName        string    `json:"set_name"`
	ImageURL       string    `json:"image_url"`
	PricePokeballs int64     `json:"price_pokeballs"`
	CardsPerPack   int       `json:"cards_per_pack"`
}

// PackPurchase представляет покупку пака, который откроют на стриме
type PackPurchase struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"-"`
	PackID          uuid.UUID      `json:"pack_id"`
	PokeballsSpent  int64          `json:"pokeballs_spent"`
	Status          PurchaseStatus `json:"status"`
	ScheduledStream time.Time      `json:"scheduled_stream"`
	CreatedAt       time.Time      `json:"created_at"`
}

// SettlementIntentVersion текущая версия схемы намерения в метаданных сессии
const SettlementIntentVersion = 1

// SettlementIntent фиксирует условия оплаты в момент создания сессии.
// При расчете значения берутся отсюда, а не пересчитываются по текущему курсу.
type SettlementIntent struct {
	Version    int
	UserID     *uuid.UUID
	BoxID      *uuid.UUID
	AmountPaid decimal.Decimal
	Credits    int64
	BoxShare   decimal.Decimal
	Currency   string
}

// CheckoutInput представляет запрос клиента на оплату
type CheckoutInput struct {
	Amount         *decimal.Decimal
	Credits        *int64
	BoxID          *uuid.UUID
	UserID         *uuid.UUID
	IdempotencyKey string
}

// CheckoutRequest представляет запрос к шлюзу на создание сессии оплаты
type CheckoutRequest struct {
	Intent         SettlementIntent
	IdempotencyKey string
}

// CheckoutSession представляет созданную сессию оплаты
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

// SessionSnapshot представляет состояние сессии оплаты на стороне шлюза
type SessionSnapshot struct {
	SessionID        string
	Paid             bool
	PaymentReference string
	Metadata         map[string]string
}

// WebhookEvent представляет проверенное событие от шлюза
type WebhookEvent struct {
	ID       string
	Type     string
	ObjectID string
	Session  *SessionSnapshot // Только для событий checkout.session.*
}

// Settlement представляет входные данные для проведения платежа в хранилище
type Settlement struct {
	PaymentReference string
	SessionID        string
	Intent           SettlementIntent
}

// SettlementResult представляет результат проведения платежа
type SettlementResult struct {
	ContributionID   uuid.UUID `json:"contributionId"`
	CreditsGranted   int64     `json:"creditsGranted"`
	AlreadyProcessed bool      `json:"alreadyProcessed"`
	ActivityRecorded bool      `json:"-"`
	ActivityError    error     `json:"-"` // Причина, по которой запись в ленту пропущена
}

// ContributionSettledEvent тело события contribution.settled
type ContributionSettledEvent struct {
	ContributionID   uuid.UUID       `json:"contribution_id"`
	PaymentReference string          `json:"payment_reference"`
	SessionID        string          `json:"session_id"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	BoxID            *uuid.UUID      `json:"box_id,omitempty"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	Credits          int64           `json:"credits"`
	BoxShare         decimal.Decimal `json:"box_share"`
	Currency         string          `json:"currency"`
	BoxStatus        BoxStatus       `json:"box_status,omitempty"`
	SettledAt        time.Time       `json:"settled_at"`
}

// OutboxEvent представляет событие, ожидающее публикации
type OutboxEvent struct {
	ID           uuid.UUID
	EventType    string
	PartitionKey string
	Payload      []byte
	Attempts     int
	CreatedAt    time.Time
}
