package dto

import (
	"time"

	"vinylstore/internal/models"
)

// OrderDTO is the transfer shape for an order.
type OrderDTO struct {
	ID          int              `json:"id"`
	Reference   string           `json:"reference"`
	UserID      int              `json:"user_id"`
	TotalAmount float64          `json:"total_amount"`
	Status      string           `json:"status"`
	Details     []OrderDetailDTO `json:"details"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OrderDetailDTO is a single order line.
type OrderDetailDTO struct {
	RecordID int     `json:"record_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// NewOrderDTO converts an order entity with its details loaded.
func NewOrderDTO(o *models.Order) OrderDTO {
	d := OrderDTO{
		ID:          o.ID,
		Reference:   o.Reference,
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Details:     make([]OrderDetailDTO, 0, len(o.Details)),
		CreatedAt:   o.CreatedAt,
	}
	for _, line := range o.Details {
		d.Details = append(d.Details, OrderDetailDTO{
			RecordID: line.RecordID,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}
	return d
}

// NewOrderDTOs converts a slice of order entities.
func NewOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderDTO(&orders[i]))
	}
	return out
}
