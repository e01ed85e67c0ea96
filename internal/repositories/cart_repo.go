package repositories

import "vinylstore/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetOrCreateByUser returns the user's cart with its details and
	// their records loaded, creating an empty cart on first use.
	GetOrCreateByUser(userID int) (*models.Cart, error)
	CreateItem(detail *models.CartDetail) error
	UpdateItem(detail *models.CartDetail) error
	// RemoveItem deletes the cart line for the given record and reports
	// whether a line existed.
	RemoveItem(cartID, recordID int) (bool, error)
	Clear(cartID int) error
}
