package models

import "time"

// Cart holds the records a user intends to order. One cart per user.
type Cart struct {
	ID      int          `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  int          `json:"user_id" gorm:"uniqueIndex;not null"`
	Details []CartDetail `json:"details" gorm:"foreignKey:CartID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartDetail is a single record line in a cart. Price is captured at
// the time the line is added.
type CartDetail struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID   int     `json:"cart_id" gorm:"index;not null"`
	RecordID int     `json:"record_id" gorm:"index;not null"`
	Record   *Record `json:"record,omitempty" gorm:"foreignKey:RecordID"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
