package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

const (
	// StripeSignatureHeader заголовок с подписью webhook
	StripeSignatureHeader = "Stripe-Signature"

	maxWebhookBodyBytes = 64 << 10

	// settlementTimeout ограничивает проведение, отвязанное от запроса
	settlementTimeout = 30 * time.Second
	releaseTimeout    = 5 * time.Second
)

// settlementContext отвязывает проведение от отмены запроса.
// Обрыв соединения со шлюзом или клиентом не должен откатывать начатую проводку.
func settlementContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(r.Context()), settlementTimeout)
}

// WebhookHandler принимает события платежного шлюза
type WebhookHandler struct {
	gateway           domain.PaymentGateway
	settlementService domain.SettlementService
	dedup             domain.EventDeduplicator
	logger            *zap.Logger
}

// NewWebhookHandler создает новый WebhookHandler
func NewWebhookHandler(
	gateway domain.PaymentGateway,
	settlementService domain.SettlementService,
	dedup domain.EventDeduplicator,
	logger *zap.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		gateway:           gateway,
		settlementService: settlementService,
		dedup:             dedup,
		logger:            logger,
	}
}

type webhookResponse struct {
	Received bool `json:"received"`
}

// HandleStripe проверяет подпись и передает событие на проведение.
// После успешной проверки подписи всегда отвечает 200, чтобы шлюз не повторял доставку бесконечно.
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Payload too large", h.logger)
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid payload", h.logger)
		return
	}

	signature := r.Header.Get(StripeSignatureHeader)
	if signature == "" {
		writeError(w, http.StatusBadRequest, "Missing signature", h.logger)
		return
	}

	event, err := h.gateway.VerifyWebhook(payload, signature)
	if err != nil {
		h.logger.Warn("Webhook signature verification failed", zap.Error(err))
		writeError(w, http.StatusBadRequest, "Invalid signature", h.logger)
		return
	}

	ctx, cancel := settlementContext(r)
	defer cancel()
	logger := h.logger.With(zap.String("event_id", event.ID), zap.String("event_type", event.Type))

	marked := false
	if event.ID != "" {
		fresh, err := h.dedup.MarkSeen(ctx, event.ID)
		switch {
		case err != nil:
			// Без дедупликации повтор все равно отсечет уникальность payment_reference
			logger.Warn("Webhook deduplication unavailable", zap.Error(err))
		case !fresh:
			logger.Info("Webhook event already received")
			writeJSON(w, http.StatusOK, webhookResponse{Received: true}, h.logger)
			return
		default:
			marked = true
		}
	}

	if err := h.settlementService.HandleEvent(ctx, event); err != nil {
		logger.Error("Webhook event handling failed", zap.Error(err))
		if marked {
			h.release(r, event.ID, logger)
		}
	}

	writeJSON(w, http.StatusOK, webhookResponse{Received: true}, h.logger)
}

// release снимает отметку о событии, чтобы повторная доставка провела платеж.
// Контекст свежий: контекст проведения к этому моменту мог истечь.
func (h *WebhookHandler) release(r *http.Request, eventID string, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), releaseTimeout)
	defer cancel()

	if err := h.dedup.Forget(ctx, eventID); err != nil {
		logger.Warn("Failed to release webhook event", zap.Error(err))
	}
}
