package models

import "time"

// MusicGenre classifies groups.
type MusicGenre struct {
	ID     int     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string  `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Groups []Group `json:"groups,omitempty" gorm:"foreignKey:MusicGenreID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
