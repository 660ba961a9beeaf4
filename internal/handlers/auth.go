package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rykoi/storefront/internal/domain"
	"go.uber.org/zap"
)

// AuthHandler регистрирует пользователей витрины и выдает им токены
type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// authRequest принимает username, старое поле login оставлено для совместимости клиентов
type authRequest struct {
	Username string `json:"username"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (req authRequest) username() string {
	if name := strings.TrimSpace(req.Username); name != "" {
		return name
	}
	return strings.TrimSpace(req.Login)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	session, err := h.authService.Register(r.Context(), req.username(), req.Password)
	switch {
	case err == nil:
		h.writeSession(w, session)
	case errors.Is(err, domain.ErrUserExists):
		writeError(w, http.StatusConflict, "Username already taken", h.logger)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid username or password", h.logger)
	default:
		h.logger.Error("failed to register", zap.Error(err), zap.String("username", req.username()))
		writeError(w, http.StatusInternalServerError, "Could not register", h.logger)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	session, err := h.authService.Login(r.Context(), req.username(), req.Password)
	switch {
	case err == nil:
		h.writeSession(w, session)
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials", h.logger)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid username or password", h.logger)
	default:
		h.logger.Error("failed to login", zap.Error(err), zap.String("username", req.username()))
		writeError(w, http.StatusInternalServerError, "Could not log in", h.logger)
	}
}

// writeSession отдает токен и в заголовке, и в теле
func (h *AuthHandler) writeSession(w http.ResponseWriter, session *domain.AuthSession) {
	w.Header().Set("Authorization", "Bearer "+session.Token)
	writeJSON(w, http.StatusOK, session, h.logger)
}
