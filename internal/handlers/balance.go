package handlers

import (
	"errors"
	"net/http"

	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	ledgerService domain.LedgerService
	logger        *zap.Logger
}

func NewBalanceHandler(ledgerService domain.LedgerService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to get balance", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, balance, h.logger)
}

func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get transactions", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, transactions, h.logger)
}
