package repositories

import "pasar/internal/models"

// SettlementStore is the unit of work handed to a settlement operation. All
// reads of mutable rows (orders, accounts, products, carts) are locked for
// the duration of the transaction and memoized per key: asking for the same
// vendor or product twice within one batch returns the same pointer, so a
// multi-order tracking group accumulates its balance and stock deltas
// in-memory and each distinct row is written back exactly once at commit.
// Append-only rows (history, disputes, transactions, snapshots) are inserted
// directly inside the same transaction.
type SettlementStore interface {
	Order(uniqueID string) (*models.Order, error)
	OrdersByTracking(trackingNumber string) ([]*models.Order, error)
	User(id string) (*models.User, error)
	Vendor(id string) (*models.Vendor, error)
	Rider(id string) (*models.Rider, error)
	Product(id string) (*models.Product, error)
	Cart(id string) (*models.Cart, error)
	ShippingFee(id string) (*models.ShippingFee, error)
	DefaultAddress(userID string) (*models.Address, error)
	LatestDispute(orderUniqueID string) (*models.Dispute, error)

	CreateOrder(order *models.Order) error
	AddHistory(history *models.OrderHistory) error
	AddDispute(dispute *models.Dispute) error
	AddCompleted(completed *models.OrderCompleted) error
	AddUserTransaction(tx *models.UserTransaction) error
	AddVendorTransaction(tx *models.VendorTransaction) error
	AddRiderTransaction(tx *models.RiderTransaction) error
}

// SettlementRepository runs one settlement as a single atomic unit: every
// mutation made through the store persists, or none do. A returned error
// from fn (or from any write) rolls the whole unit back.
type SettlementRepository interface {
	Settle(fn func(store SettlementStore) error) error
}
