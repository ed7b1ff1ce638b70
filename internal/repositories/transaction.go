package repositories

import (
	"context"
	"errors"

	"vigil/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the interface for screened-transaction
// persistence and the history queries the scoring engine depends on.
type TransactionRepository interface {
	// Create persists a screened transaction with its verdict.
	Create(ctx context.Context, tx *models.Transaction) error

	// GetByTransactionID retrieves a transaction by its external identifier.
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)

	// List retrieves screened transactions, newest first, with pagination.
	List(ctx context.Context, offset, limit int) ([]models.Transaction, int64, error)

	// ListFlagged retrieves only fraudulent transactions, newest first.
	ListFlagged(ctx context.Context, offset, limit int) ([]models.Transaction, int64, error)

	// AmountHistory returns the amounts of all transactions previously
	// screened for the given user, the raw input to the amount baseline.
	AmountHistory(ctx context.Context, userID uint) ([]float64, error)

	// LastKnownLocation returns the resolved coordinate of the user's most
	// recently screened transaction, or nil when no prior transaction
	// carries one.
	LastKnownLocation(ctx context.Context, userID uint) (*models.Coordinate, error)
}
