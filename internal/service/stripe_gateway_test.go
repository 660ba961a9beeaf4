package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*StripeGateway, *int32) {
	t.Helper()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	gateway := NewStripeGateway(StripeConfig{
		SecretKey:         "sk_test_123",
		WebhookSecret:     testWebhookSecret,
		PublicBaseURL:     "https://shop.example/",
		BackendURL:        server.URL,
		MaxNetworkRetries: 0,
		HTTPClient:        server.Client(),
	}, zap.NewNop())

	return gateway, &calls
}

func writeStripeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestStripeGateway_CreateCheckout(t *testing.T) {
	userID := uuid.New()
	boxID := uuid.New()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		gateway, calls := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "800", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "eur", r.PostForm.Get("line_items[0][price_data][currency]"))
			assert.Equal(t, "6 Pokeballs", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
			assert.Equal(t, "1", r.PostForm.Get("metadata[v]"))
			assert.Equal(t, userID.String(), r.PostForm.Get("metadata[user_id]"))
			assert.Equal(t, boxID.String(), r.PostForm.Get("metadata[box_id]"))
			assert.Equal(t, "6", r.PostForm.Get("metadata[credits]"))
			assert.Equal(t, "2.00", r.PostForm.Get("metadata[box_share]"))
			assert.Equal(t, userID.String(), r.PostForm.Get("client_reference_id"))
			assert.Equal(t,
				"https://shop.example/?success=true&session_id={CHECKOUT_SESSION_ID}",
				r.PostForm.Get("success_url"))
			assert.Equal(t, "https://shop.example/?canceled=true", r.PostForm.Get("cancel_url"))

			writeStripeJSON(w, http.StatusOK, map[string]any{
				"id":     "cs_test_1",
				"object": "checkout.session",
				"url":    "https://checkout.stripe.com/c/pay/cs_test_1",
			})
		})

		got, err := gateway.CreateCheckout(ctx, domain.CheckoutRequest{
			Intent: domain.SettlementIntent{
				UserID:     &userID,
				BoxID:      &boxID,
				AmountPaid: decimal.NewFromInt(8),
				Credits:    6,
				BoxShare:   decimal.NewFromInt(2),
				Currency:   "eur",
			},
			IdempotencyKey: "idem-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", got.SessionID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", got.RedirectURL)
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("Amount below gateway minimum", func(t *testing.T) {
		gateway, calls := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("gateway must not be called")
		})

		_, err := gateway.CreateCheckout(ctx, domain.CheckoutRequest{
			Intent: domain.SettlementIntent{
				AmountPaid: decimal.RequireFromString("0.49"),
				Currency:   "eur",
			},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Equal(t, int32(0), atomic.LoadInt32(calls))
	})

	t.Run("Gateway error", func(t *testing.T) {
		gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			writeStripeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{
					"type":    "invalid_request_error",
					"code":    "parameter_invalid_integer",
					"message": "Invalid integer",
				},
			})
		})

		_, err := gateway.CreateCheckout(ctx, domain.CheckoutRequest{
			Intent: domain.SettlementIntent{AmountPaid: decimal.NewFromInt(8), Credits: 6, Currency: "eur"},
		})

		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
	})
}

func TestStripeGateway_RetrieveSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Paid session with payment intent", func(t *testing.T) {
		gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/checkout/sessions/cs_test_1", r.URL.Path)

			writeStripeJSON(w, http.StatusOK, map[string]any{
				"id":             "cs_test_1",
				"object":         "checkout.session",
				"payment_status": "paid",
				"payment_intent": "pi_test_1",
				"metadata":       map[string]string{"v": "1", "amount": "8.00"},
			})
		})

		got, err := gateway.RetrieveSession(ctx, "cs_test_1")
		require.NoError(t, err)
		assert.True(t, got.Paid)
		assert.Equal(t, "cs_test_1", got.SessionID)
		assert.Equal(t, "pi_test_1", got.PaymentReference)
		assert.Equal(t, "8.00", got.Metadata["amount"])
	})

	t.Run("Unpaid session falls back to session id", func(t *testing.T) {
		gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			writeStripeJSON(w, http.StatusOK, map[string]any{
				"id":             "cs_test_2",
				"object":         "checkout.session",
				"payment_status": "unpaid",
			})
		})

		got, err := gateway.RetrieveSession(ctx, "cs_test_2")
		require.NoError(t, err)
		assert.False(t, got.Paid)
		assert.Equal(t, "cs_test_2", got.PaymentReference)
	})

	t.Run("Unknown session", func(t *testing.T) {
		gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			writeStripeJSON(w, http.StatusNotFound, map[string]any{
				"error": map[string]any{
					"type":    "invalid_request_error",
					"code":    "resource_missing",
					"message": "No such checkout.session: 'cs_missing'",
				},
			})
		})

		_, err := gateway.RetrieveSession(ctx, "cs_missing")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Empty session id", func(t *testing.T) {
		gateway, calls := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := gateway.RetrieveSession(ctx, " ")
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Equal(t, int32(0), atomic.LoadInt32(calls))
	})

	t.Run("Rate limited", func(t *testing.T) {
		gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "7")
			writeStripeJSON(w, http.StatusTooManyRequests, map[string]any{
				"error": map[string]any{
					"type":    "invalid_request_error",
					"code":    "rate_limit",
					"message": "Too many requests",
				},
			})
		})

		_, err := gateway.RetrieveSession(ctx, "cs_test_1")

		var rateLimitErr *RateLimitError
		require.ErrorAs(t, err, &rateLimitErr)
		assert.Equal(t, 7*time.Second, rateLimitErr.RetryAfter)
	})
}

func signedEvent(t *testing.T, event map[string]any, secret string) ([]byte, string) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	})

	return payload, signed.Header
}

func TestStripeGateway_VerifyWebhook(t *testing.T) {
	gateway, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})

	checkoutCompleted := map[string]any{
		"id":          "evt_1",
		"object":      "event",
		"type":        "checkout.session.completed",
		"api_version": "2020-08-27",
		"data": map[string]any{
			"object": map[string]any{
				"id":             "cs_test_1",
				"object":         "checkout.session",
				"payment_status": "paid",
				"payment_intent": "pi_test_1",
				"metadata":       map[string]string{"v": "1"},
			},
		},
	}

	t.Run("Checkout session event", func(t *testing.T) {
		payload, header := signedEvent(t, checkoutCompleted, testWebhookSecret)

		got, err := gateway.VerifyWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "evt_1", got.ID)
		assert.Equal(t, domain.EventCheckoutCompleted, got.Type)
		assert.Equal(t, "cs_test_1", got.ObjectID)
		require.NotNil(t, got.Session)
		assert.True(t, got.Session.Paid)
		assert.Equal(t, "pi_test_1", got.Session.PaymentReference)
		assert.Equal(t, "1", got.Session.Metadata["v"])
	})

	t.Run("Payment intent event", func(t *testing.T) {
		payload, header := signedEvent(t, map[string]any{
			"id":     "evt_2",
			"object": "event",
			"type":   "payment_intent.succeeded",
			"data": map[string]any{
				"object": map[string]any{"id": "pi_test_2", "object": "payment_intent"},
			},
		}, testWebhookSecret)

		got, err := gateway.VerifyWebhook(payload, header)
		require.NoError(t, err)
		assert.Equal(t, "pi_test_2", got.ObjectID)
		assert.Nil(t, got.Session)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		payload, header := signedEvent(t, checkoutCompleted, "whsec_other")

		_, err := gateway.VerifyWebhook(payload, header)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		payload, header := signedEvent(t, checkoutCompleted, testWebhookSecret)
		payload = append(payload[:len(payload)-1], []byte(`,"extra":1}`)...)

		_, err := gateway.VerifyWebhook(payload, header)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})

	t.Run("Missing header", func(t *testing.T) {
		payload, _ := signedEvent(t, checkoutCompleted, testWebhookSecret)

		_, err := gateway.VerifyWebhook(payload, "")
		assert.ErrorIs(t, err, domain.ErrInvalidSignature)
	})
}
