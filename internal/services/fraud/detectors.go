package fraud

import (
	"context"
	"fmt"
	"math"

	"vigil/internal/models"
)

// detector is one independent check. Detectors run in the fixed order of the
// table in service.go because that order is visible in the result's reasons.
type detector struct {
	name   string
	weight int
	check  checkFunc
}

// checkFunc inspects one transaction. A returned error is a hard failure
// and aborts the whole evaluation.
type checkFunc func(ctx context.Context, tx *Transaction, ev *evaluation) (hit bool, reason string, err error)

// evaluation is the per-call scratch state shared by the detectors.
type evaluation struct {
	// resolved is the geocoded coordinate of the current transaction,
	// nil when geocoding failed.
	resolved *models.Coordinate
	warnings []string
}

func (ev *evaluation) warn(format string, args ...interface{}) {
	ev.warnings = append(ev.warnings, fmt.Sprintf(format, args...))
}

func (s *service) checkBlacklistedIP(ctx context.Context, tx *Transaction, _ *evaluation) (bool, string, error) {
	// An absent IP can never match an entry; skip the lookup entirely.
	if tx.IPAddress == "" {
		return false, "", nil
	}

	listed, err := s.blacklist.IsBlacklisted(ctx, models.BlacklistKindIP, tx.IPAddress)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrBlacklistUnavailable, err)
	}
	if !listed {
		return false, "", nil
	}
	return true, ReasonBlacklistedIP, nil
}

func (s *service) checkBlacklistedAccount(ctx context.Context, tx *Transaction, _ *evaluation) (bool, string, error) {
	listed, err := s.blacklist.IsBlacklisted(ctx, models.BlacklistKindAccount, tx.RecipientAccount)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrBlacklistUnavailable, err)
	}
	if !listed {
		return false, "", nil
	}
	return true, ReasonBlacklistedAccount, nil
}

func (s *service) checkOddHour(_ context.Context, tx *Transaction, _ *evaluation) (bool, string, error) {
	if tx.Timestamp.Hour() > OddHourEnd {
		return false, "", nil
	}
	return true, ReasonOddHours, nil
}

func (s *service) checkAmountAnomaly(ctx context.Context, tx *Transaction, ev *evaluation) (bool, string, error) {
	amounts, err := s.history.AmountHistory(ctx, tx.AccountID)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}

	baseline := baselineFromAmounts(amounts)
	if baseline.Count < MinBaselineCount {
		ev.warn("insufficient history for account (%d prior transactions); amount anomaly check skipped", baseline.Count)
		return false, "", nil
	}
	if baseline.StdDev == 0 {
		return false, "", nil
	}

	z := math.Abs(tx.Amount-baseline.Mean) / baseline.StdDev
	if z <= ZScoreThreshold {
		return false, "", nil
	}
	return true, fmt.Sprintf(ReasonAmountAnomalyFmt, z), nil
}

func (s *service) checkGeographicDrift(ctx context.Context, tx *Transaction, ev *evaluation) (bool, string, error) {
	if ev.resolved == nil {
		// Geocoding already failed and warned; nothing to compare.
		return false, "", nil
	}

	previous, err := s.history.LastKnownLocation(ctx, tx.AccountID)
	if err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrHistoryUnavailable, err)
	}
	if previous == nil {
		// First transaction for the account; no drift to measure.
		return false, "", nil
	}

	if Distance(*previous, *ev.resolved) <= DriftThresholdKm {
		return false, "", nil
	}
	return true, ReasonGeographicDrift, nil
}

// baselineFromAmounts computes the historical baseline over all prior
// amounts. Standard deviation is the population form (divide by n).
func baselineFromAmounts(amounts []float64) Baseline {
	b := Baseline{Count: len(amounts)}
	if b.Count == 0 {
		return b
	}

	var sum float64
	for _, a := range amounts {
		sum += a
	}
	b.Mean = sum / float64(b.Count)

	var squares float64
	for _, a := range amounts {
		d := a - b.Mean
		squares += d * d
	}
	b.StdDev = math.Sqrt(squares / float64(b.Count))

	return b
}
