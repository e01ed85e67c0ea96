package dto

import "vinylstore/internal/models"

// RecordDTO is the transfer shape for a record. The entity's
// ImageRecord column is exposed as image_url.
type RecordDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	ImageURL     string  `json:"image_url"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Discontinued bool    `json:"discontinued"`
	GroupID      int     `json:"group_id"`
	GroupName    string  `json:"group_name,omitempty"`
}

// RecordInsertDTO carries the fields for creating a record. The image
// URL is mandatory on insert.
type RecordInsertDTO struct {
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	ImageURL     string  `json:"image_url"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Discontinued bool    `json:"discontinued"`
	GroupID      int     `json:"group_id"`
}

// RecordUpdateDTO carries a full-field overwrite for a record. An empty
// image URL means "leave the stored image unchanged".
type RecordUpdateDTO struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	ImageURL     string  `json:"image_url"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	Discontinued bool    `json:"discontinued"`
	GroupID      int     `json:"group_id"`
}

// StockAdjustmentDTO reports the outcome of a stock adjustment.
type StockAdjustmentDTO struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	PreviousStock int    `json:"previous_stock"`
	NewStock      int    `json:"new_stock"`
}

// NewRecordDTO converts a record entity to its transfer shape.
func NewRecordDTO(r *models.Record) RecordDTO {
	d := RecordDTO{
		ID:           r.ID,
		Title:        r.Title,
		Year:         r.Year,
		ImageURL:     r.ImageRecord,
		Price:        r.Price,
		Stock:        r.Stock,
		Discontinued: r.Discontinued,
		GroupID:      r.GroupID,
	}
	if r.Group != nil {
		d.GroupName = r.Group.Name
	}
	return d
}

// NewRecordDTOs converts a slice of record entities.
func NewRecordDTOs(records []models.Record) []RecordDTO {
	out := make([]RecordDTO, 0, len(records))
	for i := range records {
		out = append(out, NewRecordDTO(&records[i]))
	}
	return out
}

// ToModel builds a new record entity from an insert payload, mapping
// ImageURL onto the ImageRecord column.
func (d RecordInsertDTO) ToModel() models.Record {
	return models.Record{
		Title:        d.Title,
		Year:         d.Year,
		ImageRecord:  d.ImageURL,
		Price:        d.Price,
		Stock:        d.Stock,
		Discontinued: d.Discontinued,
		GroupID:      d.GroupID,
	}
}

// Apply overwrites the entity's fields from the update payload. The
// image is only overwritten when the incoming URL is non-empty.
func (d RecordUpdateDTO) Apply(r *models.Record) {
	r.Title = d.Title
	r.Year = d.Year
	r.Price = d.Price
	r.Stock = d.Stock
	r.Discontinued = d.Discontinued
	r.GroupID = d.GroupID
	if d.ImageURL != "" {
		r.ImageRecord = d.ImageURL
	}
}
