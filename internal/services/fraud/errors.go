package fraud

import (
	"errors"
	"fmt"
)

// ErrValidation is the base kind for input rejected before detector
// evaluation. Match with errors.Is.
var ErrValidation = errors.New("invalid transaction")

// Validation errors
var (
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidTimestamp = fmt.Errorf("%w: timestamp is required", ErrValidation)
	ErrMissingRecipient = fmt.Errorf("%w: recipient account is required", ErrValidation)
)

// Hard collaborator failures. These abort the evaluation; they are never
// downgraded to a clean verdict.
var (
	ErrBlacklistUnavailable = errors.New("blacklist lookup failed")
	ErrHistoryUnavailable   = errors.New("transaction history unavailable")
	ErrBlacklistWrite       = errors.New("blacklist update failed")
)
