package handlers

import (
	"errors"
	"log"

	"vigil/internal/repositories"
	"vigil/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultTransactionLimit = 50  // Default transactions per page
	maxTransactionLimit     = 100 // Maximum allowed transactions per page
)

type TransactionHandler struct {
	transactions repositories.TransactionRepository
}

func NewTransactionHandler(transactions repositories.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
	}
}

// List returns screened transactions, newest first.
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	p := listPagination(c)

	transactions, total, err := h.transactions.List(c.Context(), p.Offset, p.Limit)
	if err != nil {
		log.Printf("Transaction listing error: %v", err)
		return utils.InternalError(c, "Failed to retrieve transactions")
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(transactions, p))
}

// ListFlagged returns only transactions that were screened as fraudulent,
// newest first.
func (h *TransactionHandler) ListFlagged(c *fiber.Ctx) error {
	p := listPagination(c)

	transactions, total, err := h.transactions.ListFlagged(c.Context(), p.Offset, p.Limit)
	if err != nil {
		log.Printf("Flagged transaction listing error: %v", err)
		return utils.InternalError(c, "Failed to retrieve transactions")
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(transactions, p))
}

// Get returns a single screening record by its transaction identifier.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	transactionID := c.Params("transactionID")

	tx, err := h.transactions.GetByTransactionID(c.Context(), transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return utils.NotFound(c, "Transaction not found")
		}
		log.Printf("Transaction lookup error for %q: %v", transactionID, err)
		return utils.InternalError(c, "Failed to retrieve transaction")
	}

	return utils.Success(c, tx)
}

func listPagination(c *fiber.Ctx) utils.Pagination {
	p := utils.GetPagination(c, 1, defaultTransactionLimit)
	if p.Limit > maxTransactionLimit {
		p.Limit = maxTransactionLimit
		p.Offset = (p.Page - 1) * p.Limit
	}
	return p
}
