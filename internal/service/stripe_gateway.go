package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rykoi/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// MinChargeCents минимальная сумма, которую принимает шлюз, в центах
const MinChargeCents = 50

// defaultRetryAfter пауза, если шлюз вернул 429 без Retry-After
const defaultRetryAfter = time.Second

const checkoutSessionEventPrefix = "checkout.session."

// StripeConfig параметры подключения к Stripe
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PublicBaseURL string
	// BackendURL переопределяет адрес API, пустое значение означает боевой API
	BackendURL        string
	MaxNetworkRetries int64
	HTTPClient        *http.Client
}

// StripeGateway реализует domain.PaymentGateway поверх Stripe Checkout
type StripeGateway struct {
	sessions      session.Client
	webhookSecret string
	baseURL       string
	logger        *zap.Logger
}

// NewStripeGateway создает новый StripeGateway
func NewStripeGateway(cfg StripeConfig, logger *zap.Logger) *StripeGateway {
	backendCfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(cfg.MaxNetworkRetries),
		LeveledLogger:     logger.Named("stripe").Sugar(),
	}
	if cfg.BackendURL != "" {
		backendCfg.URL = stripe.String(cfg.BackendURL)
	}
	if cfg.HTTPClient != nil {
		backendCfg.HTTPClient = cfg.HTTPClient
	}

	return &StripeGateway{
		sessions: session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Key: cfg.SecretKey,
		},
		webhookSecret: cfg.WebhookSecret,
		baseURL:       strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// CreateCheckout создает сессию оплаты с намерением в метаданных
func (g *StripeGateway) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	intent := req.Intent

	cents := intent.AmountPaid.Shift(2).Round(0).IntPart()
	if cents < MinChargeCents {
		return nil, domain.ErrInvalidAmount
	}

	currency := intent.Currency
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(cents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%d Pokeballs", intent.Credits)),
						Description: stripe.String(productDescription(intent.Credits, intent.BoxShare)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(g.baseURL + "/?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.baseURL + "/?canceled=true"),
	}
	params.Context = ctx

	metadata := EncodeIntent(intent)
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}
	params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{Metadata: metadata}

	if intent.UserID != nil {
		params.ClientReferenceID = stripe.String(intent.UserID.String())
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		return nil, g.mapError(err, "create checkout session")
	}

	return &domain.CheckoutSession{
		SessionID:   s.ID,
		RedirectURL: s.URL,
	}, nil
}

// RetrieveSession получает состояние сессии оплаты
func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*domain.SessionSnapshot, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, domain.ErrSessionNotFound
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := g.sessions.Get(sessionID, params)
	if err != nil {
		return nil, g.mapError(err, fmt.Sprintf("retrieve session %q", sessionID))
	}

	return snapshotFromSession(s), nil
}

// VerifyWebhook проверяет подпись события и разбирает его.
// Любая ошибка проверки или разбора возвращается как ErrInvalidSignature.
func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (*domain.WebhookEvent, error) {
	if signatureHeader == "" {
		return nil, domain.ErrInvalidSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	result := &domain.WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil {
		return result, nil
	}

	if strings.HasPrefix(result.Type, checkoutSessionEventPrefix) {
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: malformed checkout session: %v", domain.ErrInvalidSignature, err)
		}
		result.ObjectID = s.ID
		result.Session = snapshotFromSession(&s)
		return result, nil
	}

	if id, ok := event.Data.Object["id"].(string); ok {
		result.ObjectID = id
	}

	return result, nil
}

func (g *StripeGateway) mapError(err error, op string) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fmt.Errorf("stripe gateway: failed to %s: %w", op, err)
	}

	switch {
	case stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound:
		return domain.ErrSessionNotFound
	case stripeErr.HTTPStatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(retryAfter(stripeErr))
	}

	g.logger.Warn("Stripe request failed",
		zap.String("operation", op),
		zap.Int("status", stripeErr.HTTPStatusCode),
		zap.String("code", string(stripeErr.Code)),
		zap.String("request_id", stripeErr.RequestID),
	)

	return fmt.Errorf("stripe gateway: failed to %s: %w", op, err)
}

func retryAfter(stripeErr *stripe.Error) time.Duration {
	if stripeErr.LastResponse == nil {
		return defaultRetryAfter
	}

	seconds, err := strconv.Atoi(stripeErr.LastResponse.Header.Get("Retry-After"))
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}

	return time.Duration(seconds) * time.Second
}

func snapshotFromSession(s *stripe.CheckoutSession) *domain.SessionSnapshot {
	snapshot := &domain.SessionSnapshot{
		SessionID:        s.ID,
		Paid:             s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		PaymentReference: s.ID,
		Metadata:         s.Metadata,
	}
	if s.PaymentIntent != nil && s.PaymentIntent.ID != "" {
		snapshot.PaymentReference = s.PaymentIntent.ID
	}
	return snapshot
}

func productDescription(credits int64, boxShare decimal.Decimal) string {
	if boxShare.IsZero() {
		return fmt.Sprintf("Recibes %d Pokeballs", credits)
	}
	return fmt.Sprintf("Recibes %d Pokeballs + %s€ van al crowdfunding", credits, boxShare.StringFixed(2))
}
