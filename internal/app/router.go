package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rykoi/storefront/internal/handlers"
	"github.com/rykoi/storefront/internal/utils/jwt"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Webhook читает сырое тело для проверки подписи, поэтому без сжатия
	r.Post("/api/webhooks/stripe", deps.handlers.webhook.HandleStripe)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))

		// Публичные эндпоинты
		r.Post("/api/user/register", deps.handlers.auth.Register)
		r.Post("/api/user/login", deps.handlers.auth.Login)
		r.Post("/api/verify-payment", deps.handlers.payments.VerifyPayment)
		r.Get("/api/packs", deps.handlers.packs.ListPacks)
		r.Get("/api/boxes", deps.handlers.boxes.ListBoxes)
		r.Get("/api/boxes/{id}", deps.handlers.boxes.GetBox)
		r.Get("/api/boxes/{id}/contributions", deps.handlers.boxes.GetBoxContributions)
		r.Get("/api/activity", deps.handlers.boxes.GetActivity)
		r.Get("/api/leaderboard", deps.handlers.boxes.GetLeaderboard)

		// Оплата доступна и гостям
		r.With(handlers.OptionalAuthMiddleware(jwtManager)).
			Post("/api/checkout", deps.handlers.checkout.StartCheckout)

		// Защищенные эндпоинты
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(jwtManager))
			r.Get("/api/user/balance", deps.handlers.balance.GetBalance)
			r.Get("/api/user/transactions", deps.handlers.balance.GetTransactions)
			r.Post("/api/user/packs/{packID}/purchase", deps.handlers.packs.Purchase)
		})
	})
}
