package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Checkout persists the order atomically. Each stock decrement is a
// conditional update guarded by the available quantity, so two
// concurrent checkouts cannot drive stock negative; the first failing
// line rolls the whole transaction back.
func (r *GORMOrderRepository) Checkout(order *models.Order, cartID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range order.Details {
			res := tx.Model(&models.Record{}).
				Where("id = ? AND stock >= ?", line.RecordID, line.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", line.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for record %d: %w", line.RecordID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("record %d: %w", line.RecordID, ErrInsufficientStock)
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := tx.Delete(&models.CartDetail{}, "cart_id = ?", cartID).Error; err != nil {
			return fmt.Errorf("failed to clear cart %d: %w", cartID, err)
		}
		return nil
	})
}

// GetByUser retrieves the user's orders with their details loaded.
func (r *GORMOrderRepository) GetByUser(userID int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Details").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID, or nil when absent.
func (r *GORMOrderRepository) GetByID(id int) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Details").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}
