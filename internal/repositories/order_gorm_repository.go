package repositories

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetByUniqueID retrieves a single order by its unique ID.
func (r *GORMOrderRepository) GetByUniqueID(uniqueID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "unique_id = ?", uniqueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", uniqueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", uniqueID, err)
	}
	return &order, nil
}

// GetByTracking retrieves all orders in a tracking group.
func (r *GORMOrderRepository) GetByTracking(trackingNumber string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders, "tracking_number = ?", trackingNumber).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for tracking %s: %w", trackingNumber, err)
	}
	return orders, nil
}

// GetAllByUser retrieves all orders placed by a user.
func (r *GORMOrderRepository) GetAllByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at DESC").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetAllByVendor retrieves all orders addressed to a vendor.
func (r *GORMOrderRepository) GetAllByVendor(vendorID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Order("created_at DESC").Find(&orders, "vendor_id = ?", vendorID).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for vendor %s: %w", vendorID, err)
	}
	return orders, nil
}

// GetHistory retrieves the audit trail of an order, oldest first.
func (r *GORMOrderRepository) GetHistory(orderUniqueID string) ([]models.OrderHistory, error) {
	var history []models.OrderHistory
	if err := r.db.Order("created_at ASC").Find(&history, "order_unique_id = ?", orderUniqueID).Error; err != nil {
		return nil, fmt.Errorf("failed to get history for order %s: %w", orderUniqueID, err)
	}
	return history, nil
}

// GetDisputes retrieves the dispute rows of an order, oldest first.
func (r *GORMOrderRepository) GetDisputes(orderUniqueID string) ([]models.Dispute, error) {
	var disputes []models.Dispute
	if err := r.db.Order("created_at ASC").Find(&disputes, "order_unique_id = ?", orderUniqueID).Error; err != nil {
		return nil, fmt.Errorf("failed to get disputes for order %s: %w", orderUniqueID, err)
	}
	return disputes, nil
}

// GetCompleted retrieves the completion snapshot of an order.
func (r *GORMOrderRepository) GetCompleted(orderUniqueID string) (*models.OrderCompleted, error) {
	var completed models.OrderCompleted
	if err := r.db.First(&completed, "order_unique_id = ?", orderUniqueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("completed snapshot for order %s: %w", orderUniqueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get completed snapshot for order %s: %w", orderUniqueID, err)
	}
	return &completed, nil
}
