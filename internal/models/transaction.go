package models

import (
	"time"

	"github.com/lib/pq"
)

// Consolidated Transaction model: the screened transaction together with
// the verdict the engine produced for it.
type Transaction struct {
	ID               uint           `gorm:"primarykey" json:"-"`
	TransactionID    string         `gorm:"uniqueIndex;not null" json:"transaction_id"`
	Timestamp        time.Time      `gorm:"not null" json:"timestamp"`
	Amount           float64        `gorm:"not null" json:"amount"`
	Currency         string         `gorm:"default:'USD'" json:"currency"`
	Location         string         `gorm:"not null" json:"location"`
	Latitude         *float64       `json:"latitude,omitempty"`  // resolved coordinate, nil when geocoding failed
	Longitude        *float64       `json:"longitude,omitempty"` // resolved coordinate, nil when geocoding failed
	CardType         string         `gorm:"not null" json:"card_type"`
	RecipientAccount string         `gorm:"not null;index" json:"recipient_account_number"`
	IPAddress        string         `json:"ip_address,omitempty"`
	IsFraud          bool           `gorm:"not null;index" json:"is_fraud"`
	RiskScore        int            `gorm:"not null" json:"risk_score"`
	FraudReasons     pq.StringArray `gorm:"type:text[]" json:"fraud_reasons"`
	CheckedBy        uint           `gorm:"not null;index" json:"-"` // user who submitted the check
	CheckedAt        time.Time      `gorm:"not null" json:"checked_at"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
}

// Coordinate is a resolved geographic point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
