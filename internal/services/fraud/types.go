package fraud

import (
	"time"

	"vigil/internal/models"
)

// Transaction is the engine's input: one transaction as described by the
// caller. Values are not modified by the engine.
type Transaction struct {
	TransactionID    string
	Timestamp        time.Time // transaction-local wall clock
	Amount           float64
	Currency         string
	Location         string // free-text place name, e.g. "Chennai"
	CardType         string
	RecipientAccount string
	IPAddress        string // empty when the source IP is unknown
	AccountID        uint   // history key: the account the transaction belongs to
}

// Validate rejects input the detectors must never see.
func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if t.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	if t.RecipientAccount == "" {
		return ErrMissingRecipient
	}
	return nil
}

// EvaluationResult is the engine's output for one transaction.
type EvaluationResult struct {
	Transaction

	IsFraud      bool
	RiskScore    int
	FraudReasons []string // one entry per triggered detector, in evaluation order

	// Warnings carries soft-degraded conditions (unresolvable location,
	// insufficient history). Never part of FraudReasons.
	Warnings []string

	// ResolvedLocation is the geocoded coordinate of Transaction.Location,
	// nil when geocoding failed. Callers persist it so it can serve as the
	// account's last known location for the next evaluation.
	ResolvedLocation *models.Coordinate
}

// Baseline summarizes an account's historical transaction amounts.
type Baseline struct {
	Count  int
	Mean   float64
	StdDev float64
}

// MetricsCollector defines the interface for collecting engine metrics
type MetricsCollector interface {
	RecordEvaluationDuration(d time.Duration)
	RecordVerdict(isFraud bool)
	RecordDetectorTrigger(detector string)
	RecordError(stage string)
}
