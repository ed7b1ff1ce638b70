package utils

import (
	"errors"

	"vigil/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserClaims extracts the user claims the auth middleware stored on the
// Fiber context. It fails on routes the middleware does not cover.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return nil, errors.New("claims not found in context")
	}
	return claims, nil
}
