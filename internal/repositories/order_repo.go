package repositories

import "vinylstore/internal/models"

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// Checkout persists the order and its details, decrements each
	// record's stock, and clears the cart, all in one transaction.
	// Returns ErrInsufficientStock (and persists nothing) when any line
	// exceeds the available stock.
	Checkout(order *models.Order, cartID int) error
	GetByUser(userID int) ([]models.Order, error)
	GetByID(id int) (*models.Order, error)
}
