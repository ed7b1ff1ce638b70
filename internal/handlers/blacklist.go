package handlers

import (
	"log"

	"vigil/internal/repositories"
	"vigil/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type BlacklistHandler struct {
	blacklist repositories.BlacklistRepository
}

func NewBlacklistHandler(blacklist repositories.BlacklistRepository) *BlacklistHandler {
	return &BlacklistHandler{
		blacklist: blacklist,
	}
}

// List returns blacklist entries, newest first. Seeded entries and entries
// added by the feedback loop are not distinguished beyond their reason.
func (h *BlacklistHandler) List(c *fiber.Ctx) error {
	p := listPagination(c)

	entries, total, err := h.blacklist.List(c.Context(), p.Offset, p.Limit)
	if err != nil {
		log.Printf("Blacklist listing error: %v", err)
		return utils.InternalError(c, "Failed to retrieve blacklist")
	}

	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(entries, p))
}
