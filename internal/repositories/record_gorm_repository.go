package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMRecordRepository is a GORM implementation of RecordRepository.
type GORMRecordRepository struct {
	db *gorm.DB
}

// NewGORMRecordRepository creates a new instance of GORMRecordRepository.
func NewGORMRecordRepository(db *gorm.DB) *GORMRecordRepository {
	return &GORMRecordRepository{
		db: db,
	}
}

// GetAll retrieves all records with their owning group.
func (r *GORMRecordRepository) GetAll() ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Preload("Group").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return records, nil
}

// GetByID retrieves a single record by its ID, or nil when absent.
func (r *GORMRecordRepository) GetByID(id int) (*models.Record, error) {
	var record models.Record
	if err := r.db.Preload("Group").First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record by ID %d: %w", id, err)
	}
	return &record, nil
}

// GetSortedByTitle retrieves all records ordered by title, ties broken
// by id so the ordering is stable.
func (r *GORMRecordRepository) GetSortedByTitle(ascending bool) ([]models.Record, error) {
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}
	var records []models.Record
	err := r.db.Preload("Group").
		Order("title " + direction).Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get records sorted by title: %w", err)
	}
	return records, nil
}

// SearchByTitle retrieves records whose title contains the given text,
// case-insensitively.
func (r *GORMRecordRepository) SearchByTitle(text string) ([]models.Record, error) {
	var records []models.Record
	pattern := "%" + strings.ToLower(text) + "%"
	err := r.db.Preload("Group").
		Where("LOWER(title) LIKE ?", pattern).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search records by title: %w", err)
	}
	return records, nil
}

// GetByPriceRange retrieves records priced within [min, max].
func (r *GORMRecordRepository) GetByPriceRange(min, max float64) ([]models.Record, error) {
	var records []models.Record
	err := r.db.Preload("Group").
		Where("price >= ? AND price <= ?", min, max).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get records by price range: %w", err)
	}
	return records, nil
}

// GroupExists reports whether a group with the given ID exists.
func (r *GORMRecordRepository) GroupExists(groupID int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Group{}).Where("id = ?", groupID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check group %d: %w", groupID, err)
	}
	return count > 0, nil
}

// Create creates a new record in the database.
func (r *GORMRecordRepository) Create(record *models.Record) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update updates an existing record in the database.
func (r *GORMRecordRepository) Update(record *models.Record) error {
	res := r.db.Save(record)
	if res.Error != nil {
		return fmt.Errorf("failed to update record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record with ID %d not found for update", record.ID)
	}
	return nil
}

// UpdateStock writes newStock with a compare-and-swap on the stock
// value read before deciding: a concurrent adjustment between the read
// and this write leaves the row untouched and returns false.
func (r *GORMRecordRepository) UpdateStock(id, expectedStock, newStock int) (bool, error) {
	res := r.db.Model(&models.Record{}).
		Where("id = ? AND stock = ?", id, expectedStock).
		UpdateColumn("stock", newStock)
	if res.Error != nil {
		return false, fmt.Errorf("failed to update stock for record %d: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}

// Delete deletes a record by its ID from the database.
func (r *GORMRecordRepository) Delete(id int) error {
	res := r.db.Delete(&models.Record{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("record with ID %d not found for deletion", id)
	}
	return nil
}
