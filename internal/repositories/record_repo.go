package repositories

import "vinylstore/internal/models"

// RecordRepository defines the interface for record data access.
// Lookup methods return a nil record (and nil error) when the id does
// not exist; absence is an expected outcome, not a failure.
type RecordRepository interface {
	GetAll() ([]models.Record, error)
	GetByID(id int) (*models.Record, error)
	GetSortedByTitle(ascending bool) ([]models.Record, error)
	SearchByTitle(text string) ([]models.Record, error)
	GetByPriceRange(min, max float64) ([]models.Record, error)
	GroupExists(groupID int) (bool, error)
	Create(record *models.Record) error
	Update(record *models.Record) error
	// UpdateStock writes newStock only if the stored stock still equals
	// expectedStock. It reports whether the write took effect, so the
	// caller can re-read and retry on contention.
	UpdateStock(id, expectedStock, newStock int) (bool, error)
	Delete(id int) error
}
