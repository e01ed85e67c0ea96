package dto

import "vinylstore/internal/models"

// CartDTO is the transfer shape for a user's cart.
type CartDTO struct {
	ID      int             `json:"id"`
	UserID  int             `json:"user_id"`
	Details []CartDetailDTO `json:"details"`
	Total   float64         `json:"total"`
}

// CartDetailDTO is a single cart line.
type CartDetailDTO struct {
	RecordID    int     `json:"record_id"`
	RecordTitle string  `json:"record_title,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CartItemInsertDTO carries an add-to-cart request.
type CartItemInsertDTO struct {
	RecordID int `json:"record_id"`
	Quantity int `json:"quantity"`
}

// NewCartDTO converts a cart entity with its details loaded.
func NewCartDTO(c *models.Cart) CartDTO {
	d := CartDTO{
		ID:      c.ID,
		UserID:  c.UserID,
		Details: make([]CartDetailDTO, 0, len(c.Details)),
	}
	for i := range c.Details {
		line := &c.Details[i]
		detail := CartDetailDTO{
			RecordID: line.RecordID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		if line.Record != nil {
			detail.RecordTitle = line.Record.Title
		}
		d.Details = append(d.Details, detail)
		d.Total += line.Price * float64(line.Quantity)
	}
	return d
}
