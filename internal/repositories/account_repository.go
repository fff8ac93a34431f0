package repositories

import "pasar/internal/models"

// VendorRepository defines the interface for vendor account data access.
type VendorRepository interface {
	Create(vendor *models.Vendor) error
	GetByName(name string) (*models.Vendor, error)
	GetByID(id string) (*models.Vendor, error)
}

// RiderRepository defines the interface for rider account data access.
type RiderRepository interface {
	Create(rider *models.Rider) error
	GetByName(name string) (*models.Rider, error)
	GetByID(id string) (*models.Rider, error)
}

// ShippingFeeRepository defines the interface for rider delivery quotes.
type ShippingFeeRepository interface {
	Create(fee *models.ShippingFee) error
	GetByID(id string) (*models.ShippingFee, error)
	GetAllByRider(riderID string) ([]models.ShippingFee, error)
}
