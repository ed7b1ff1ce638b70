package validation

import (
	"vigil/internal/services/fraud"
)

// Screening validates the inbound fraud-check payload. The engine enforces
// its own invariants again before scoring; this pass reports the request
// fields the stored record needs, keyed per field.
func (v *Validator) Screening(tx *fraud.Transaction) {
	v.Check(!tx.Timestamp.IsZero(), "timestamp", "must be provided")
	v.Positive("amount", tx.Amount)
	v.Required("location", tx.Location)
	v.Required("card_type", tx.CardType)
	v.Required("recipient_account_number", tx.RecipientAccount)
}
