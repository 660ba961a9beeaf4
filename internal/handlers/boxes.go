package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// BoxesHandler отдает публичные данные витрины: коробки, ленту и рейтинг
type BoxesHandler struct {
	boxService domain.BoxService
	logger     *zap.Logger
}

// NewBoxesHandler создает новый BoxesHandler
func NewBoxesHandler(boxService domain.BoxService, logger *zap.Logger) *BoxesHandler {
	return &BoxesHandler{
		boxService: boxService,
		logger:     logger,
	}
}

func (h *BoxesHandler) ListBoxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.boxService.GetActiveBoxes(r.Context())
	if err != nil {
		h.logger.Error("failed to list boxes", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load boxes", h.logger)
		return
	}

	if boxes == nil {
		boxes = []*domain.Box{}
	}
	writeJSON(w, http.StatusOK, boxes, h.logger)
}

func (h *BoxesHandler) GetBox(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid box id", h.logger)
		return
	}

	box, err := h.boxService.GetBox(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBoxNotFound) {
			writeError(w, http.StatusNotFound, "Box not found", h.logger)
			return
		}
		h.logger.Error("failed to get box", zap.Error(err), zap.Stringer("box_id", id))
		writeError(w, http.StatusInternalServerError, "Failed to load box", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, box, h.logger)
}

func (h *BoxesHandler) GetBoxContributions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid box id", h.logger)
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid limit", h.logger)
		return
	}

	contributions, err := h.boxService.GetBoxContributions(r.Context(), id, limit)
	if err != nil {
		if errors.Is(err, domain.ErrBoxNotFound) {
			writeError(w, http.StatusNotFound, "Box not found", h.logger)
			return
		}
		h.logger.Error("failed to get box contributions", zap.Error(err), zap.Stringer("box_id", id))
		writeError(w, http.StatusInternalServerError, "Failed to load contributions", h.logger)
		return
	}

	if contributions == nil {
		contributions = []*domain.Contribution{}
	}
	writeJSON(w, http.StatusOK, contributions, h.logger)
}

func (h *BoxesHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid limit", h.logger)
		return
	}

	entries, err := h.boxService.GetActivityFeed(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to get activity feed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load activity", h.logger)
		return
	}

	if entries == nil {
		entries = []*domain.ActivityEntry{}
	}
	writeJSON(w, http.StatusOK, entries, h.logger)
}

func (h *BoxesHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid limit", h.logger)
		return
	}

	contributors, err := h.boxService.GetLeaderboard(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to get leaderboard", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to load leaderboard", h.logger)
		return
	}

	if contributors == nil {
		contributors = []*domain.Contributor{}
	}
	writeJSON(w, http.StatusOK, contributors, h.logger)
}
