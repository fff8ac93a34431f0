package repositories

import "pasar/internal/models"

// UserRepository defines the interface for customer account data access.
// Balances are never written here; only the settlement store mutates them.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

// AddressRepository defines the interface for a buyer's address book.
type AddressRepository interface {
	Create(address *models.Address) error
	GetDefaultByUser(userID string) (*models.Address, error)
	GetAllByUser(userID string) ([]models.Address, error)
}
