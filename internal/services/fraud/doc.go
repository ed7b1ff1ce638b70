/*
Package fraud implements the transaction fraud scoring engine.

The engine runs a fixed, ordered battery of detectors over a single
transaction and aggregates their results into one verdict:
  - blacklisted source IP (weight 30)
  - blacklisted recipient account (weight 40)
  - odd-hour timing, local hour 0-3 (weight 15)
  - amount anomaly, |z| > 2 against the account's history (weight 20)
  - geographic drift, > 500 km from the last known location (weight 25)

The risk score is the plain sum of the triggered weights. It is not capped:
a transaction that trips everything scores 130. A transaction is fraudulent
when any detector fired or the score reaches 30; both clauses are checked
independently so the rule survives weight retuning. One reason string per
triggered detector is collected in evaluation order.

A fraudulent verdict feeds back into the blacklist: the recipient account is
appended as a new account entry before the caller persists the transaction.
Duplicate entries are expected and harmless; lookups are membership tests.

The engine holds no state of its own. History, blacklist, and geocoding are
injected collaborators:

	svc := fraud.NewService(blacklistRepo, txRepo, resolver, metrics)
	result, err := svc.Evaluate(ctx, &fraud.Transaction{...})

Failures split three ways. Store errors (blacklist, history) abort the
evaluation; a fail-open "not blacklisted" default would defeat the detector.
Geocoding misses and thin history only disable their detector for the one
call and surface as warnings on the result, separate from the fraud reasons.
Bad input (non-positive amount, zero timestamp, missing recipient) is
rejected before any detector runs; errors.Is(err, ErrValidation) identifies
that class.
*/
package fraud
