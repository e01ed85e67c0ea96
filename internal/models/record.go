package models

import "time"

// Record represents an album in the catalog.
type Record struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title        string  `json:"title" gorm:"type:varchar(100);not null"`
	Year         int     `json:"year"`
	ImageRecord  string  `json:"image_record" gorm:"type:varchar(500)"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Discontinued bool    `json:"discontinued"`
	GroupID      int     `json:"group_id" gorm:"index;not null"`
	Group        *Group  `json:"group,omitempty" gorm:"foreignKey:GroupID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
