package repositories

import "vinylstore/internal/models"

// MusicGenreRepository defines the interface for music genre data
// access. Lookup methods return nil (and nil error) when absent.
type MusicGenreRepository interface {
	GetAll() ([]models.MusicGenre, error)
	GetByID(id int) (*models.MusicGenre, error)
	Create(genre *models.MusicGenre) error
	Update(genre *models.MusicGenre) error
	// Delete removes the genre, returning ErrDependentRows when groups
	// still reference it. The check runs inside the delete transaction.
	Delete(id int) error
}
