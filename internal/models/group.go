package models

import "time"

// Group represents a band or artist owning zero or more records.
type Group struct {
	ID           int         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string      `json:"name" gorm:"type:varchar(100);not null"`
	ImageGroup   string      `json:"image_group" gorm:"type:varchar(500)"`
	MusicGenreID int         `json:"music_genre_id" gorm:"index;not null"`
	MusicGenre   *MusicGenre `json:"music_genre,omitempty" gorm:"foreignKey:MusicGenreID"`
	Records      []Record    `json:"records,omitempty" gorm:"foreignKey:GroupID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
