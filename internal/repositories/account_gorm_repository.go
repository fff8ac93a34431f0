package repositories

import (
	"fmt"

	"pasar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMVendorRepository is a GORM implementation of VendorRepository.
type GORMVendorRepository struct {
	db *gorm.DB
}

// NewGORMVendorRepository creates a new instance of GORMVendorRepository.
func NewGORMVendorRepository(db *gorm.DB) *GORMVendorRepository {
	return &GORMVendorRepository{
		db: db,
	}
}

// Create creates a new vendor in the database.
func (r *GORMVendorRepository) Create(vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	if err := r.db.Create(vendor).Error; err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

// GetByName retrieves a vendor by its name from the database.
func (r *GORMVendorRepository) GetByName(name string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("vendor with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor by name %s: %w", name, err)
	}
	return &vendor, nil
}

// GetByID retrieves a vendor by its ID from the database.
func (r *GORMVendorRepository) GetByID(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("vendor with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendor by ID %s: %w", id, err)
	}
	return &vendor, nil
}

// GORMRiderRepository is a GORM implementation of RiderRepository.
type GORMRiderRepository struct {
	db *gorm.DB
}

// NewGORMRiderRepository creates a new instance of GORMRiderRepository.
func NewGORMRiderRepository(db *gorm.DB) *GORMRiderRepository {
	return &GORMRiderRepository{
		db: db,
	}
}

// Create creates a new rider in the database.
func (r *GORMRiderRepository) Create(rider *models.Rider) error {
	if rider.ID == "" {
		rider.ID = uuid.New().String()
	}
	if err := r.db.Create(rider).Error; err != nil {
		return fmt.Errorf("failed to create rider: %w", err)
	}
	return nil
}

// GetByName retrieves a rider by its name from the database.
func (r *GORMRiderRepository) GetByName(name string) (*models.Rider, error) {
	var rider models.Rider
	if err := r.db.First(&rider, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rider with name %s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rider by name %s: %w", name, err)
	}
	return &rider, nil
}

// GetByID retrieves a rider by its ID from the database.
func (r *GORMRiderRepository) GetByID(id string) (*models.Rider, error) {
	var rider models.Rider
	if err := r.db.First(&rider, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rider with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get rider by ID %s: %w", id, err)
	}
	return &rider, nil
}

// GORMShippingFeeRepository is a GORM implementation of ShippingFeeRepository.
type GORMShippingFeeRepository struct {
	db *gorm.DB
}

// NewGORMShippingFeeRepository creates a new instance of GORMShippingFeeRepository.
func NewGORMShippingFeeRepository(db *gorm.DB) *GORMShippingFeeRepository {
	return &GORMShippingFeeRepository{
		db: db,
	}
}

// Create creates a new shipping fee quote in the database.
func (r *GORMShippingFeeRepository) Create(fee *models.ShippingFee) error {
	if fee.ID == "" {
		fee.ID = uuid.New().String()
	}
	if err := r.db.Create(fee).Error; err != nil {
		return fmt.Errorf("failed to create shipping fee: %w", err)
	}
	return nil
}

// GetByID retrieves a shipping fee quote by its ID from the database.
func (r *GORMShippingFeeRepository) GetByID(id string) (*models.ShippingFee, error) {
	var fee models.ShippingFee
	if err := r.db.First(&fee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shipping fee with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shipping fee by ID %s: %w", id, err)
	}
	return &fee, nil
}

// GetAllByRider retrieves all shipping fee quotes owned by a rider.
func (r *GORMShippingFeeRepository) GetAllByRider(riderID string) ([]models.ShippingFee, error) {
	var fees []models.ShippingFee
	if err := r.db.Find(&fees, "rider_id = ?", riderID).Error; err != nil {
		return nil, fmt.Errorf("failed to get shipping fees for rider %s: %w", riderID, err)
	}
	return fees, nil
}
