package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rykoi/storefront/internal/service"
	"go.uber.org/zap"
)

// errorResponse тело ответа с ошибкой для JSON эндпоинтов
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response", zap.Error(err), zap.Int("status", status))
	}
}

func writeError(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	writeJSON(w, status, errorResponse{Error: message}, logger)
}

// writeRateLimited отвечает 429, если шлюз ограничил частоту запросов
func writeRateLimited(w http.ResponseWriter, err error, logger *zap.Logger) bool {
	var rateLimitErr *service.RateLimitError
	if !errors.As(err, &rateLimitErr) {
		return false
	}

	seconds := int(rateLimitErr.RetryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	writeError(w, http.StatusTooManyRequests, "Too many requests, try again later", logger)
	return true
}

// parseLimit читает необязательный параметр limit из query
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}
