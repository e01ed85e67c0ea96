package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vinylstore/internal/models"
)

// GORMMusicGenreRepository is a GORM implementation of MusicGenreRepository.
type GORMMusicGenreRepository struct {
	db *gorm.DB
}

// NewGORMMusicGenreRepository creates a new instance of GORMMusicGenreRepository.
func NewGORMMusicGenreRepository(db *gorm.DB) *GORMMusicGenreRepository {
	return &GORMMusicGenreRepository{
		db: db,
	}
}

// GetAll retrieves all genres with their groups loaded.
func (r *GORMMusicGenreRepository) GetAll() ([]models.MusicGenre, error) {
	var genres []models.MusicGenre
	if err := r.db.Preload("Groups").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("failed to get all music genres: %w", err)
	}
	return genres, nil
}

// GetByID retrieves a single genre by its ID, or nil when absent.
func (r *GORMMusicGenreRepository) GetByID(id int) (*models.MusicGenre, error) {
	var genre models.MusicGenre
	if err := r.db.Preload("Groups").First(&genre, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get music genre by ID %d: %w", id, err)
	}
	return &genre, nil
}

// Create creates a new genre in the database.
func (r *GORMMusicGenreRepository) Create(genre *models.MusicGenre) error {
	if err := r.db.Create(genre).Error; err != nil {
		return fmt.Errorf("failed to create music genre: %w", err)
	}
	return nil
}

// Update updates an existing genre in the database.
func (r *GORMMusicGenreRepository) Update(genre *models.MusicGenre) error {
	res := r.db.Save(genre)
	if res.Error != nil {
		return fmt.Errorf("failed to update music genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("music genre with ID %d not found for update", genre.ID)
	}
	return nil
}

// Delete removes a genre after re-checking its dependents inside the
// same transaction.
func (r *GORMMusicGenreRepository) Delete(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Group{}).Where("music_genre_id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count groups for music genre %d: %w", id, err)
		}
		if count > 0 {
			return ErrDependentRows
		}
		res := tx.Delete(&models.MusicGenre{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete music genre: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("music genre with ID %d not found for deletion", id)
		}
		return nil
	})
}
