package models

import "time"

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusProcessed = "processed"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order is a checked-out cart.
type Order struct {
	ID          int           `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference   string        `json:"reference" gorm:"type:varchar(36);uniqueIndex"`
	UserID      int           `json:"user_id" gorm:"index;not null"`
	TotalAmount float64       `json:"total_amount"`
	Status      string        `json:"status" gorm:"type:varchar(20)"`
	Details     []OrderDetail `json:"details" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderDetail is a single record line in an order, with the price paid.
type OrderDetail struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID  int     `json:"order_id" gorm:"index;not null"`
	RecordID int     `json:"record_id" gorm:"index;not null"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
