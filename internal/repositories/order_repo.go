package repositories

import "pasar/internal/models"

// OrderRepository defines the read-side interface for orders and their audit
// rows. All writes to orders go through the SettlementRepository so that
// every state transition is atomic with its ledger effects.
type OrderRepository interface {
	GetByUniqueID(uniqueID string) (*models.Order, error)
	GetByTracking(trackingNumber string) ([]models.Order, error)
	GetAllByUser(userID string) ([]models.Order, error)
	GetAllByVendor(vendorID string) ([]models.Order, error)
	GetHistory(orderUniqueID string) ([]models.OrderHistory, error)
	GetDisputes(orderUniqueID string) ([]models.Dispute, error)
	GetCompleted(orderUniqueID string) (*models.OrderCompleted, error)
}
