package repositories

import "pasar/internal/models"

// ProductRepository defines the interface for product data access. Stock is
// never written here; only the settlement store mutates Remaining.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetAllByVendor(vendorID string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}

// CartRepository defines the interface for a buyer's cart lines.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id string) (*models.Cart, error)
	GetActiveByUser(userID string) ([]models.Cart, error)
}
