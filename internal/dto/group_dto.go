package dto

import "vinylstore/internal/models"

// GroupDTO is the full transfer shape for a group, including its genre
// name and record count. The entity's ImageGroup column is exposed as
// image_url.
type GroupDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	ImageURL       string `json:"image_url,omitempty"`
	MusicGenreID   int    `json:"music_genre_id"`
	MusicGenreName string `json:"music_genre_name,omitempty"`
	TotalRecords   int    `json:"total_records"`
}

// GroupItemDTO is the compact transfer shape used by list and basic
// operations.
type GroupItemDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url,omitempty"`
	MusicGenreID int    `json:"music_genre_id"`
}

// GroupRecordsDTO is a group together with its records.
type GroupRecordsDTO struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	ImageURL     string      `json:"image_url,omitempty"`
	TotalRecords int         `json:"total_records"`
	Records      []RecordDTO `json:"records"`
}

// GroupInsertDTO carries the fields for creating a group. The image URL
// is optional.
type GroupInsertDTO struct {
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	MusicGenreID int    `json:"music_genre_id"`
}

// GroupUpdateDTO carries a full-field overwrite for a group.
type GroupUpdateDTO struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	MusicGenreID int    `json:"music_genre_id"`
}

// NewGroupDTO converts a group entity to its full transfer shape.
func NewGroupDTO(g *models.Group) GroupDTO {
	d := GroupDTO{
		ID:           g.ID,
		Name:         g.Name,
		ImageURL:     g.ImageGroup,
		MusicGenreID: g.MusicGenreID,
		TotalRecords: len(g.Records),
	}
	if g.MusicGenre != nil {
		d.MusicGenreName = g.MusicGenre.Name
	}
	return d
}

// NewGroupItemDTO converts a group entity to its compact shape.
func NewGroupItemDTO(g *models.Group) GroupItemDTO {
	return GroupItemDTO{
		ID:           g.ID,
		Name:         g.Name,
		ImageURL:     g.ImageGroup,
		MusicGenreID: g.MusicGenreID,
	}
}

// NewGroupItemDTOs converts a slice of group entities.
func NewGroupItemDTOs(groups []models.Group) []GroupItemDTO {
	out := make([]GroupItemDTO, 0, len(groups))
	for i := range groups {
		out = append(out, NewGroupItemDTO(&groups[i]))
	}
	return out
}

// NewGroupRecordsDTO converts a group entity with its records loaded.
func NewGroupRecordsDTO(g *models.Group) GroupRecordsDTO {
	return GroupRecordsDTO{
		ID:           g.ID,
		Name:         g.Name,
		ImageURL:     g.ImageGroup,
		TotalRecords: len(g.Records),
		Records:      NewRecordDTOs(g.Records),
	}
}

// ToModel builds a new group entity from an insert payload, mapping
// ImageURL onto the ImageGroup column.
func (d GroupInsertDTO) ToModel() models.Group {
	return models.Group{
		Name:         d.Name,
		ImageGroup:   d.ImageURL,
		MusicGenreID: d.MusicGenreID,
	}
}

// Apply overwrites the entity's fields from the update payload. The
// image is only overwritten when the incoming URL is non-empty.
func (d GroupUpdateDTO) Apply(g *models.Group) {
	g.Name = d.Name
	g.MusicGenreID = d.MusicGenreID
	if d.ImageURL != "" {
		g.ImageGroup = d.ImageURL
	}
}
