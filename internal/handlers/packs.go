package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

type PacksHandler struct {
	packService domain.PackService
	logger      *zap.Logger
}

func NewPacksHandler(packService domain.PackService, logger *zap.Logger) *PacksHandler {
	return &PacksHandler{
		packService: packService,
		logger:      logger,
	}
}

func (h *PacksHandler) ListPacks(w http.ResponseWriter, r *http.Request) {
	packs, err := h.packService.ListPacks(r.Context())
	if err != nil {
		h.logger.Error("failed to list packs", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load packs", h.logger)
		return
	}

	if packs == nil {
		packs = []*domain.Pack{}
	}
	writeJSON(w, http.StatusOK, packs, h.logger)
}

// Purchase списывает покеболы и записывает пак на ближайший стрим
func (h *PacksHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	packID, err := uuid.Parse(chi.URLParam(r, "packID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pack id", h.logger)
		return
	}

	purchase, err := h.packService.Purchase(r.Context(), userID, packID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientCredits):
			writeError(w, http.StatusPaymentRequired, "Not enough Pokeballs", h.logger)
		case errors.Is(err, domain.ErrPackNotFound):
			writeError(w, http.StatusNotFound, "Pack not found", h.logger)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
		default:
			h.logger.Error("failed to purchase pack", zap.Error(err), zap.Stringer("pack_id", packID))
			writeError(w, http.StatusInternalServerError, "Failed to purchase pack", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, purchase, h.logger)
}
