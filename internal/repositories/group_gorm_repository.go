package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMGroupRepository is a GORM implementation of GroupRepository.
type GORMGroupRepository struct {
	db *gorm.DB
}

// NewGORMGroupRepository creates a new instance of GORMGroupRepository.
func NewGORMGroupRepository(db *gorm.DB) *GORMGroupRepository {
	return &GORMGroupRepository{
		db: db,
	}
}

// GetAll retrieves all groups with their genre and records loaded.
func (r *GORMGroupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Preload("MusicGenre").Preload("Records").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get all groups: %w", err)
	}
	return groups, nil
}

// GetByID retrieves a single group by its ID, or nil when absent.
func (r *GORMGroupRepository) GetByID(id int) (*models.Group, error) {
	var group models.Group
	if err := r.db.Preload("MusicGenre").First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group by ID %d: %w", id, err)
	}
	return &group, nil
}

// GetByIDWithRecords retrieves a group with its records, or nil when absent.
func (r *GORMGroupRepository) GetByIDWithRecords(id int) (*models.Group, error) {
	var group models.Group
	if err := r.db.Preload("Records").First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group %d with records: %w", id, err)
	}
	return &group, nil
}

// GetAllWithRecords retrieves all groups with their records loaded.
func (r *GORMGroupRepository) GetAllWithRecords() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Preload("Records").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to get groups with records: %w", err)
	}
	return groups, nil
}

// SearchByName retrieves groups whose name contains the given text,
// case-insensitively.
func (r *GORMGroupRepository) SearchByName(text string) ([]models.Group, error) {
	var groups []models.Group
	pattern := "%" + strings.ToLower(text) + "%"
	err := r.db.Preload("MusicGenre").
		Where("LOWER(name) LIKE ?", pattern).
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search groups by name: %w", err)
	}
	return groups, nil
}

// GetSortedByName retrieves all groups ordered by name, ties broken by
// id so the ordering is stable.
func (r *GORMGroupRepository) GetSortedByName(ascending bool) ([]models.Group, error) {
	direction := "ASC"
	if !ascending {
		direction = "DESC"
	}
	var groups []models.Group
	err := r.db.Preload("MusicGenre").
		Order("name " + direction).Order("id ASC").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get groups sorted by name: %w", err)
	}
	return groups, nil
}

// HasRecords reports whether any record references the given group.
func (r *GORMGroupRepository) HasRecords(groupID int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Record{}).Where("group_id = ?", groupID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count records for group %d: %w", groupID, err)
	}
	return count > 0, nil
}

// GenreExists reports whether a music genre with the given ID exists.
func (r *GORMGroupRepository) GenreExists(genreID int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.MusicGenre{}).Where("id = ?", genreID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check music genre %d: %w", genreID, err)
	}
	return count > 0, nil
}

// Create creates a new group in the database.
func (r *GORMGroupRepository) Create(group *models.Group) error {
	if err := r.db.Create(group).Error; err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// Update updates an existing group in the database.
func (r *GORMGroupRepository) Update(group *models.Group) error {
	res := r.db.Save(group)
	if res.Error != nil {
		return fmt.Errorf("failed to update group: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("group with ID %d not found for update", group.ID)
	}
	return nil
}

// Delete removes a group after re-checking its dependents inside the
// same transaction, so a record insert racing the delete cannot leave
// an orphaned child.
func (r *GORMGroupRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Record{}).Where("group_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count records for group %d: %w", id, err)
		}
		if count > 0 {
			return ErrDependentRows
		}
		res := tx.Delete(&models.Group{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete group: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("group with ID %d not found for deletion", id)
		}
		return nil
	})
}
