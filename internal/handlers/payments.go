package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// PaymentsHandler подтверждает оплату по возвращению клиента со страницы шлюза
type PaymentsHandler struct {
	settlementService domain.SettlementService
	logger            *zap.Logger
}

// NewPaymentsHandler создает новый PaymentsHandler
func NewPaymentsHandler(settlementService domain.SettlementService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

type verifyPaymentRequest struct {
	SessionID string `json:"sessionId"`
}

type verifyPaymentResponse struct {
	Success          bool  `json:"success"`
	CreditsGranted   int64 `json:"creditsGranted"`
	AlreadyProcessed bool  `json:"alreadyProcessed"`
}

// VerifyPayment проводит платеж по id сессии.
// Повторный вызов для уже проведенного платежа возвращает success с alreadyProcessed.
func (h *PaymentsHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "Session ID required", h.logger)
		return
	}

	ctx, cancel := settlementContext(r)
	defer cancel()

	result, err := h.settlementService.VerifySession(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentNotCompleted):
			writeError(w, http.StatusBadRequest, "Payment not completed", h.logger)
		case errors.Is(err, domain.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "Session not found", h.logger)
		case writeRateLimited(w, err, h.logger):
		default:
			h.logger.Error("failed to verify payment", zap.Error(err), zap.String("session_id", sessionID))
			writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:  "Failed to verify payment",
				Detail: err.Error(),
			}, h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, verifyPaymentResponse{
		Success:          true,
		CreditsGranted:   result.CreditsGranted,
		AlreadyProcessed: result.AlreadyProcessed,
	}, h.logger)
}
