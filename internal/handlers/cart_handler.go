package handlers

import (
	"log"

	"vinylstore/internal/dto"
	"vinylstore/internal/middleware"
	"vinylstore/internal/services"
	"vinylstore/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes on an authenticated router.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Delete("/items/:recordId", h.HandleRemoveItem)
}

// HandleGetCart returns the current user's cart.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.GetCart(middleware.UserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cart)
}

// HandleAddItem adds a record to the current user's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var in dto.CartItemInsertDTO
	if err := c.BodyParser(&in); err != nil {
		log.Printf("Error parsing cart item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if errs := validation.ValidateCartItem(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  errs,
		})
	}

	cart, err := h.service.AddItem(middleware.UserID(c), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleRemoveItem removes a record line from the current user's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	recordID, err := c.ParamsInt("recordId")
	if err != nil || recordID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The record ID is not valid",
		})
	}

	cart, err := h.service.RemoveItem(middleware.UserID(c), recordID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(cart)
}
