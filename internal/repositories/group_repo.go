package repositories

import "vinylstore/internal/models"

// GroupRepository defines the interface for group data access. Lookup
// methods return a nil group (and nil error) when the id does not exist.
type GroupRepository interface {
	GetAll() ([]models.Group, error)
	GetByID(id int) (*models.Group, error)
	GetByIDWithRecords(id int) (*models.Group, error)
	GetAllWithRecords() ([]models.Group, error)
	SearchByName(text string) ([]models.Group, error)
	GetSortedByName(ascending bool) ([]models.Group, error)
	HasRecords(groupID int) (bool, error)
	GenreExists(genreID int) (bool, error)
	Create(group *models.Group) error
	Update(group *models.Group) error
	// Delete removes the group, re-checking inside the delete
	// transaction that no records reference it. Returns
	// ErrDependentRows when the group still owns records.
	Delete(id int) error
}
