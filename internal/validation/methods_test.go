package validation

import (
	"testing"
	"time"

	"vigil/internal/services/fraud"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"alice@example.com", true},
		{"a.b+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"alice@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			v := New()
			v.Email("email", tt.email)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"strong", "Str0ng!pass", true},
		{"too short", "S7!a", false},
		{"no uppercase", "str0ng!pass", false},
		{"no number", "Strong!pass", false},
		{"no special char", "Str0ngpass1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Password("password", tt.password)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestScreening(t *testing.T) {
	valid := fraud.Transaction{
		Timestamp:        time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
		Amount:           100,
		Location:         "New York",
		CardType:         "visa",
		RecipientAccount: "ACC999888777",
	}

	t.Run("accepts a complete payload", func(t *testing.T) {
		v := New()
		tx := valid
		v.Screening(&tx)
		assert.True(t, v.Valid())
	})

	t.Run("flags each missing field", func(t *testing.T) {
		v := New()
		v.Screening(&fraud.Transaction{})

		assert.False(t, v.Valid())
		for _, field := range []string{"timestamp", "amount", "location", "card_type", "recipient_account_number"} {
			assert.Contains(t, v.Errors, field)
		}
	})

	t.Run("flags negative amount", func(t *testing.T) {
		v := New()
		tx := valid
		tx.Amount = -5
		v.Screening(&tx)

		assert.Contains(t, v.Errors, "amount")
	})
}
