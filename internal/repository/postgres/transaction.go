package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rykoi/storefront/internal/domain"
)

// TransactionRepository реализует domain.TransactionRepository
type TransactionRepository struct {
	db DBTX
}

// NewTransactionRepository создает новый TransactionRepository
func NewTransactionRepository(db DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions получает историю движений покеболов пользователя
func (r *TransactionRepository) GetTransactions(ctx context.Context, userID uuid.UUID) ([]*domain.CreditTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, credits, COALESCE(amount, 0), reference_id, created_at 
		 FROM credit_transactions 
		 WHERE user_id = $1 
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.CreditTransaction
	for rows.Next() {
		tx := &domain.CreditTransaction{}
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Credits, &tx.Amount, &tx.ReferenceID, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
