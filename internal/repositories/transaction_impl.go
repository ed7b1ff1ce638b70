package repositories

import (
	"context"

	"vigil/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&tx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) List(ctx context.Context, offset, limit int) ([]models.Transaction, int64, error) {
	return r.list(ctx, offset, limit, nil)
}

func (r *transactionRepository) ListFlagged(ctx context.Context, offset, limit int) ([]models.Transaction, int64, error) {
	flagged := map[string]interface{}{"is_fraud": true}
	return r.list(ctx, offset, limit, flagged)
}

func (r *transactionRepository) list(ctx context.Context, offset, limit int, filter map[string]interface{}) ([]models.Transaction, int64, error) {
	var (
		transactions []models.Transaction
		total        int64
	)

	query := r.db.WithContext(ctx).Model(&models.Transaction{})
	if filter != nil {
		query = query.Where(filter)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("checked_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

func (r *transactionRepository) AmountHistory(ctx context.Context, userID uint) ([]float64, error) {
	var amounts []float64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("checked_by = ?", userID).
		Pluck("amount", &amounts).Error
	if err != nil {
		return nil, err
	}
	return amounts, nil
}

func (r *transactionRepository) LastKnownLocation(ctx context.Context, userID uint) (*models.Coordinate, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).
		Where("checked_by = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", userID).
		Order("checked_at DESC, id DESC").
		First(&tx).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // no prior resolved location, not an error
		}
		return nil, err
	}
	return &models.Coordinate{Latitude: *tx.Latitude, Longitude: *tx.Longitude}, nil
}
