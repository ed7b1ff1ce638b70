package repositories

import (
	"context"

	"vigil/internal/models"

	"gorm.io/gorm"
)

type blacklistRepository struct {
	db *gorm.DB
}

// NewBlacklistRepository creates a new instance of BlacklistRepository
func NewBlacklistRepository(db *gorm.DB) BlacklistRepository {
	return &blacklistRepository{db: db}
}

// IsBlacklisted is deliberately uncached: the feedback loop inserts entries
// mid-request and the very next lookup must see them.
func (r *blacklistRepository) IsBlacklisted(ctx context.Context, kind, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlacklistEntry{}).
		Where("kind = ? AND value = ?", kind, value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *blacklistRepository) Add(ctx context.Context, entry *models.BlacklistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *blacklistRepository) List(ctx context.Context, offset, limit int) ([]models.BlacklistEntry, int64, error) {
	var (
		entries []models.BlacklistEntry
		total   int64
	)

	if err := r.db.WithContext(ctx).Model(&models.BlacklistEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("added_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
