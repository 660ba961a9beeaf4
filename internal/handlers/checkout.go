package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader заголовок с ключом идемпотентности создания сессии
const IdempotencyKeyHeader = "Idempotency-Key"

// CheckoutHandler запускает оплату взноса
type CheckoutHandler struct {
	checkoutService domain.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler создает новый CheckoutHandler
func NewCheckoutHandler(checkoutService domain.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

type checkoutRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Credits *int64           `json:"credits"`
	BoxID   string           `json:"boxId"`
	UserID  string           `json:"userId"`
}

// StartCheckout создает сессию оплаты и возвращает адрес для редиректа
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	input := domain.CheckoutInput{
		Amount:         req.Amount,
		Credits:        req.Credits,
		IdempotencyKey: strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)),
	}

	var err error
	if input.BoxID, err = parseOptionalUUID(req.BoxID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid box id", h.logger)
		return
	}

	// Пользователь из токена важнее переданного в теле
	if userID, ok := GetUserID(r.Context()); ok {
		input.UserID = &userID
	} else if input.UserID, err = parseOptionalUUID(req.UserID); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id", h.logger)
		return
	}

	session, err := h.checkoutService.StartCheckout(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "Invalid amount", h.logger)
		case errors.Is(err, domain.ErrBoxNotFound):
			writeError(w, http.StatusNotFound, "Box not found", h.logger)
		case errors.Is(err, domain.ErrBoxNotAcceptingFunds):
			writeError(w, http.StatusConflict, "Box is not accepting contributions", h.logger)
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "User not found", h.logger)
		case writeRateLimited(w, err, h.logger):
		default:
			h.logger.Error("failed to start checkout", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Could not start checkout", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, session, h.logger)
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, nil
	}
	return &id, nil
}
