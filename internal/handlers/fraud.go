package handlers

import (
	"errors"
	"log"
	"time"

	"vigil/internal/models"
	"vigil/internal/repositories"
	"vigil/internal/services"
	"vigil/internal/services/fraud"
	"vigil/internal/utils"
	"vigil/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// timestampLayout is the wire format of the transaction timestamp. The
// value is treated as transaction-local wall-clock time.
const timestampLayout = "2006-01-02 15:04:05"

type FraudHandler struct {
	engine       fraud.Service
	transactions repositories.TransactionRepository
}

func NewFraudHandler(engine fraud.Service, transactions repositories.TransactionRepository) *FraudHandler {
	return &FraudHandler{
		engine:       engine,
		transactions: transactions,
	}
}

type checkTransactionInput struct {
	TransactionID    string  `json:"transaction_id"`
	Timestamp        string  `json:"timestamp"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Location         string  `json:"location"`
	CardType         string  `json:"card_type"`
	RecipientAccount string  `json:"recipient_account_number"`
	IPAddress        string  `json:"ip_address"`
}

type checkTransactionResponse struct {
	models.Transaction
	Warnings []string `json:"warnings,omitempty"`
}

// CheckTransaction screens a single transaction, stores the screened record
// and returns the verdict.
func (h *FraudHandler) CheckTransaction(c *fiber.Ctx) error {
	var input checkTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Invalid claims")
	}

	tx := &fraud.Transaction{
		TransactionID:    input.TransactionID,
		Amount:           input.Amount,
		Currency:         input.Currency,
		Location:         input.Location,
		CardType:         input.CardType,
		RecipientAccount: input.RecipientAccount,
		IPAddress:        input.IPAddress,
		AccountID:        claims.UserID,
	}
	if input.Timestamp != "" {
		ts, err := time.Parse(timestampLayout, input.Timestamp)
		if err != nil {
			return utils.BadRequest(c, "timestamp must use layout "+timestampLayout)
		}
		tx.Timestamp = ts
	}
	if tx.TransactionID == "" {
		tx.TransactionID = services.GenerateUniqueID()
	}
	if tx.Currency == "" {
		tx.Currency = "USD"
	}
	if tx.IPAddress == "" {
		tx.IPAddress = c.IP()
	}

	v := validation.New()
	v.Screening(tx)
	if !v.Valid() {
		for field, msg := range v.Errors {
			return utils.BadRequest(c, field+" "+msg)
		}
	}

	result, err := h.engine.Evaluate(c.Context(), tx)
	if err != nil {
		if errors.Is(err, fraud.ErrValidation) {
			return utils.BadRequest(c, err.Error())
		}
		log.Printf("Evaluation failed for transaction %s: %v", tx.TransactionID, err)
		return utils.InternalError(c, "Fraud screening failed")
	}

	record := &models.Transaction{
		TransactionID:    tx.TransactionID,
		Timestamp:        tx.Timestamp,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Location:         tx.Location,
		CardType:         tx.CardType,
		RecipientAccount: tx.RecipientAccount,
		IPAddress:        tx.IPAddress,
		IsFraud:          result.IsFraud,
		RiskScore:        result.RiskScore,
		FraudReasons:     pq.StringArray(result.FraudReasons),
		CheckedBy:        claims.UserID,
		CheckedAt:        time.Now(),
	}
	if result.ResolvedLocation != nil {
		record.Latitude = &result.ResolvedLocation.Latitude
		record.Longitude = &result.ResolvedLocation.Longitude
	}

	if err := h.transactions.Create(c.Context(), record); err != nil {
		log.Printf("Failed to persist transaction %s: %v", tx.TransactionID, err)
		return utils.InternalError(c, "Failed to store screening result")
	}

	return utils.Success(c, checkTransactionResponse{
		Transaction: *record,
		Warnings:    result.Warnings,
	})
}
