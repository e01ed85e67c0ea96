package repositories

import "vinylstore/internal/models"

// UserRepository defines the interface for user data access. Lookup
// methods return nil (and nil error) when no matching user exists.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}
