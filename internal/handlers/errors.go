package handlers

import (
	"errors"
	"log"

	"vinylstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError translates a service error kind into an HTTP
// response. Unexpected errors surface as a 500 with a generic message;
// internals are never exposed.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrGenreNotFound),
		errors.Is(err, services.ErrStockExceeded),
		errors.Is(err, services.ErrRecordDiscontinued),
		errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrHasDependents),
		errors.Is(err, services.ErrStockConflict),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
		})
	default:
		log.Printf("Unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An unexpected error occurred",
		})
	}
}
