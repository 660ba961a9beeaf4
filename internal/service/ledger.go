package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
)

// LedgerService предоставляет чтение баланса покеболов
type LedgerService struct {
	userRepo        domain.UserRepository
	transactionRepo domain.TransactionRepository
}

// NewLedgerService создает новый LedgerService
func NewLedgerService(userRepo domain.UserRepository, transactionRepo domain.TransactionRepository) *LedgerService {
	return &LedgerService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
	}
}

// GetBalance получает баланс пользователя
func (s *LedgerService) GetBalance(ctx context.Context, userID uuid.UUID) (*domain.Balance, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("ledger service: failed to get balance for user %s: %w", userID, err)
	}

	return &domain.Balance{
		Pokeballs:        user.Pokeballs,
		TotalContributed: user.TotalContributed,
	}, nil
}

// GetTransactions получает историю движения покеболов пользователя
func (s *LedgerService) GetTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.CreditTransaction, error) {
	transactions, err := s.transactionRepo.GetTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger service: failed to get transactions for user %s: %w", userID, err)
	}

	return transactions, nil
}
