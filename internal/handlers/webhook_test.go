package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rykoi/storefront/internal/domain"
	domainmocks "github.com/rykoi/storefront/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryDedup хранит отметки в памяти и, как go-redis, отказывает на отмененном контексте
type memoryDedup struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemoryDedup() *memoryDedup {
	return &memoryDedup{seen: make(map[string]bool)}
}

func (d *memoryDedup) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seen[eventID] {
		return false, nil
	}
	d.seen[eventID] = true
	return true, nil
}

func (d *memoryDedup) Forget(ctx context.Context, eventID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, eventID)
	return nil
}

func TestWebhookHandler_HandleStripe(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	event := &domain.WebhookEvent{
		ID:       "evt_1",
		Type:     domain.EventCheckoutCompleted,
		ObjectID: "cs_test_1",
		Session:  &domain.SessionSnapshot{SessionID: "cs_test_1", Paid: true, PaymentReference: "pi_1"},
	}

	newRequest := func(signature string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
		if signature != "" {
			req.Header.Set(StripeSignatureHeader, signature)
		}
		return req
	}

	t.Run("Settles verified event", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Once()
		dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(true, nil).Once()
		settlements.EXPECT().HandleEvent(mock.Anything, event).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("Bad signature never reaches settlement", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=bad").Return(nil, domain.ErrInvalidSignature).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=bad"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid signature"}`, w.Body.String())
	})

	t.Run("Missing signature header", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest(""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Redelivered event is acknowledged without settlement", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Once()
		dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(false, nil).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("Settlement failure is acknowledged and releases the event", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Once()
		dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(true, nil).Once()
		settlements.EXPECT().HandleEvent(mock.Anything, event).Return(errors.New("db down")).Once()
		dedup.EXPECT().Forget(mock.Anything, "evt_1").Return(nil).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("Deduplication outage still settles", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Once()
		dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(false, errors.New("redis: connection refused")).Once()
		settlements.EXPECT().HandleEvent(mock.Anything, event).Return(errors.New("db down")).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc"))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Oversized payload", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := domainmocks.NewEventDeduplicatorMock(t)
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		big := strings.Repeat("a", maxWebhookBodyBytes+1)
		req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", strings.NewReader(big))
		req.Header.Set(StripeSignatureHeader, "t=1,v1=abc")
		w := httptest.NewRecorder()

		handler.HandleStripe(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("Disconnected sender does not cancel settlement", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		handler := NewWebhookHandler(gateway, settlements, newMemoryDedup(), logger)

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Once()
		settlements.EXPECT().HandleEvent(mock.Anything, event).
			RunAndReturn(func(ctx context.Context, _ *domain.WebhookEvent) error {
				return ctx.Err()
			}).Once()

		reqCtx, cancel := context.WithCancel(context.Background())
		cancel()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc").WithContext(reqCtx))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("Redelivery settles after failure on a cancelled request", func(t *testing.T) {
		gateway := domainmocks.NewPaymentGatewayMock(t)
		settlements := domainmocks.NewSettlementServiceMock(t)
		dedup := newMemoryDedup()
		handler := NewWebhookHandler(gateway, settlements, dedup, logger)

		reqCtx, cancel := context.WithCancel(context.Background())

		gateway.EXPECT().VerifyWebhook(payload, "t=1,v1=abc").Return(event, nil).Twice()
		settlements.EXPECT().HandleEvent(mock.Anything, event).
			RunAndReturn(func(ctx context.Context, _ *domain.WebhookEvent) error {
				// Соединение рвется посреди проведения, транзакция откатывается
				cancel()
				return errors.New("settlement service: failed to apply settlement: conn closed")
			}).Once()

		w := httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc").WithContext(reqCtx))
		require.Equal(t, http.StatusOK, w.Code)

		dedup.mu.Lock()
		assert.False(t, dedup.seen["evt_1"], "failed event must be released")
		dedup.mu.Unlock()

		settlements.EXPECT().HandleEvent(mock.Anything, event).Return(nil).Once()

		w = httptest.NewRecorder()
		handler.HandleStripe(w, newRequest("t=1,v1=abc"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})
}
