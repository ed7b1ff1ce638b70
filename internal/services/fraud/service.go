package fraud

import (
	"context"
	"fmt"
	"log"
	"time"

	"vigil/internal/models"
)

type service struct {
	blacklist BlacklistStore
	history   HistoryStore
	resolver  LocationResolver
	metrics   MetricsCollector
	detectors []detector
}

// NewService creates a new fraud scoring service
func NewService(
	blacklist BlacklistStore,
	history HistoryStore,
	resolver LocationResolver,
	metrics MetricsCollector,
) Service {
	if blacklist == nil {
		panic("blacklist store is required")
	}
	if history == nil {
		panic("history store is required")
	}
	if resolver == nil {
		panic("location resolver is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	s := &service{
		blacklist: blacklist,
		history:   history,
		resolver:  resolver,
		metrics:   metrics,
	}

	// Fixed evaluation order; reasons are reported in this order.
	s.detectors = []detector{
		{name: DetectorBlacklistedIP, weight: WeightBlacklistedIP, check: s.checkBlacklistedIP},
		{name: DetectorBlacklistedAccount, weight: WeightBlacklistedAccount, check: s.checkBlacklistedAccount},
		{name: DetectorOddHour, weight: WeightOddHour, check: s.checkOddHour},
		{name: DetectorAmountAnomaly, weight: WeightAmountAnomaly, check: s.checkAmountAnomaly},
		{name: DetectorGeographicDrift, weight: WeightGeographicDrift, check: s.checkGeographicDrift},
	}

	return s
}

func (s *service) Evaluate(ctx context.Context, tx *Transaction) (*EvaluationResult, error) {
	start := time.Now()

	if err := tx.Validate(); err != nil {
		s.metrics.RecordError("validation")
		return nil, err
	}

	ev := &evaluation{}

	// Resolve the place name once. Detectors and the caller's persistence
	// both use the coordinate; a miss only disables the drift check.
	coord, err := s.resolver.Resolve(ctx, tx.Location)
	if err != nil {
		log.Printf("geocoding failed for %q: %v", tx.Location, err)
		ev.warn("location %q could not be resolved; geographic drift check skipped", tx.Location)
	} else {
		ev.resolved = coord
	}

	result := &EvaluationResult{Transaction: *tx}
	for _, d := range s.detectors {
		hit, reason, err := d.check(ctx, tx, ev)
		if err != nil {
			s.metrics.RecordError(d.name)
			return nil, err
		}
		if hit {
			result.FraudReasons = append(result.FraudReasons, reason)
			result.RiskScore += d.weight
			s.metrics.RecordDetectorTrigger(d.name)
		}
	}

	// Any trigger is fraudulent; the score threshold stands on its own so
	// the rule keeps working if weights are ever retuned.
	result.IsFraud = len(result.FraudReasons) > 0 || result.RiskScore >= FraudScoreThreshold
	result.ResolvedLocation = ev.resolved
	result.Warnings = ev.warnings

	if result.IsFraud {
		if err := s.feedback(ctx, tx); err != nil {
			s.metrics.RecordError("feedback")
			return nil, err
		}
		log.Printf("fraudulent transaction detected: %s (score %d)", tx.TransactionID, result.RiskScore)
	}

	s.metrics.RecordVerdict(result.IsFraud)
	s.metrics.RecordEvaluationDuration(time.Since(start))

	return result, nil
}

// feedback appends the recipient to the account blacklist. The write is
// unconditional on every fraudulent verdict; duplicates are fine because
// lookups are membership tests.
func (s *service) feedback(ctx context.Context, tx *Transaction) error {
	entry := &models.BlacklistEntry{
		Kind:    models.BlacklistKindAccount,
		Value:   tx.RecipientAccount,
		Reason:  FeedbackReason,
		AddedAt: time.Now(),
	}
	if err := s.blacklist.Add(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", ErrBlacklistWrite, err)
	}
	return nil
}
