package models

import "time"

// Blacklist entry kinds
const (
	BlacklistKindIP      = "ip"
	BlacklistKindAccount = "account"
)

// BlacklistEntry is one blacklisted value. Entries are append-only and the
// (kind, value) pair is deliberately NOT unique: lookups are set-membership
// tests, and the feedback loop may insert duplicates for repeat offenders.
type BlacklistEntry struct {
	ID      uint      `gorm:"primarykey" json:"-"`
	Kind    string    `gorm:"not null;index:idx_blacklist_kind_value" json:"kind"`
	Value   string    `gorm:"not null;index:idx_blacklist_kind_value" json:"value"`
	Reason  string    `gorm:"not null" json:"reason"`
	AddedAt time.Time `gorm:"not null" json:"added_at"`
}
