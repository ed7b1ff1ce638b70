package repositories

import (
	"context"

	"vigil/internal/models"
)

// BlacklistRepository defines the interface for blacklist storage. Lookups
// are set-membership tests over (kind, value); the table may legitimately
// hold duplicate rows for the same pair.
type BlacklistRepository interface {
	// IsBlacklisted reports whether any entry matches kind and value exactly.
	IsBlacklisted(ctx context.Context, kind, value string) (bool, error)

	// Add appends a new entry. It never checks for an existing match.
	Add(ctx context.Context, entry *models.BlacklistEntry) error

	// List retrieves entries, newest first, with pagination.
	List(ctx context.Context, offset, limit int) ([]models.BlacklistEntry, int64, error)
}
