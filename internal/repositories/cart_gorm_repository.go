package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetOrCreateByUser returns the user's cart, creating it on first use.
func (r *GORMCartRepository) GetOrCreateByUser(userID int) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Details.Record").First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get cart for user %d: %w", userID, err)
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for user %d: %w", userID, err)
	}
	return &cart, nil
}

// CreateItem adds a new line to a cart.
func (r *GORMCartRepository) CreateItem(detail *models.CartDetail) error {
	if err := r.db.Create(detail).Error; err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// UpdateItem saves an existing cart line.
func (r *GORMCartRepository) UpdateItem(detail *models.CartDetail) error {
	if err := r.db.Save(detail).Error; err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// RemoveItem deletes the line for the given record from the cart.
func (r *GORMCartRepository) RemoveItem(cartID, recordID int) (bool, error) {
	res := r.db.Delete(&models.CartDetail{}, "cart_id = ? AND record_id = ?", cartID, recordID)
	if res.Error != nil {
		return false, fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Clear removes every line from the cart.
func (r *GORMCartRepository) Clear(cartID int) error {
	if err := r.db.Delete(&models.CartDetail{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to clear cart %d: %w", cartID, err)
	}
	return nil
}
