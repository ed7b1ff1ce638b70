package fraud

import (
	"context"

	"vigil/internal/models"
)

// Service defines the fraud scoring engine interface
type Service interface {
	// Evaluate scores one transaction. It fails on invalid input and on
	// store errors; an unresolvable location is not a failure.
	Evaluate(ctx context.Context, tx *Transaction) (*EvaluationResult, error)
}

// BlacklistStore is the engine's view of blacklist storage. An error from
// IsBlacklisted is a hard failure; the engine never assumes "not listed".
type BlacklistStore interface {
	IsBlacklisted(ctx context.Context, kind, value string) (bool, error)
	Add(ctx context.Context, entry *models.BlacklistEntry) error
}

// HistoryStore supplies the per-account history the statistical detectors
// read. Implementations must exclude the transaction under evaluation; the
// caller persists it only after scoring.
type HistoryStore interface {
	// AmountHistory returns all prior screened amounts for the account.
	AmountHistory(ctx context.Context, accountID uint) ([]float64, error)

	// LastKnownLocation returns the account's most recent resolved
	// coordinate, or nil when there is none.
	LastKnownLocation(ctx context.Context, accountID uint) (*models.Coordinate, error)
}

// LocationResolver turns a free-text place name into a coordinate. Any
// error is treated as a soft miss: the drift detector is skipped for the
// evaluation and the miss is reported as a warning.
type LocationResolver interface {
	Resolve(ctx context.Context, place string) (*models.Coordinate, error)
}
