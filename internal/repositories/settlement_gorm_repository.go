package repositories

import (
	"fmt"

	"pasar/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSettlementRepository is the GORM implementation of
// SettlementRepository. Each Settle call opens one database transaction;
// mutable rows are read with SELECT ... FOR UPDATE so concurrent settlements
// touching the same account or product serialize instead of applying deltas
// over a stale read. SQLite has no FOR UPDATE and serializes writers itself,
// so the locking clause is only added on other dialects.
type GORMSettlementRepository struct {
	db *gorm.DB
}

// NewGORMSettlementRepository creates a new instance of GORMSettlementRepository.
func NewGORMSettlementRepository(db *gorm.DB) *GORMSettlementRepository {
	return &GORMSettlementRepository{
		db: db,
	}
}

// Settle runs fn inside one transaction and flushes every memoized row back
// once before commit. Any error aborts the transaction with no partial
// writes.
func (r *GORMSettlementRepository) Settle(fn func(store SettlementStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		store := &gormSettlementStore{
			tx:       tx,
			lock:     tx.Dialector.Name() != "sqlite",
			orders:   make(map[string]*models.Order),
			users:    make(map[string]*models.User),
			vendors:  make(map[string]*models.Vendor),
			riders:   make(map[string]*models.Rider),
			products: make(map[string]*models.Product),
			carts:    make(map[string]*models.Cart),
		}
		if err := fn(store); err != nil {
			return err
		}
		return store.flush()
	})
}

type gormSettlementStore struct {
	tx   *gorm.DB
	lock bool

	orders   map[string]*models.Order
	users    map[string]*models.User
	vendors  map[string]*models.Vendor
	riders   map[string]*models.Rider
	products map[string]*models.Product
	carts    map[string]*models.Cart
}

func (s *gormSettlementStore) locked() *gorm.DB {
	if s.lock {
		return s.tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return s.tx
}

// Order returns the locked order row, memoized by unique ID.
func (s *gormSettlementStore) Order(uniqueID string) (*models.Order, error) {
	if order, ok := s.orders[uniqueID]; ok {
		return order, nil
	}
	var order models.Order
	if err := s.locked().First(&order, "unique_id = ?", uniqueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s: %w", uniqueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock order %s: %w", uniqueID, err)
	}
	s.orders[uniqueID] = &order
	return &order, nil
}

// OrdersByTracking returns the locked orders of a tracking group, memoized
// individually so later Order calls within the batch see the same rows.
func (s *gormSettlementStore) OrdersByTracking(trackingNumber string) ([]*models.Order, error) {
	var orders []models.Order
	if err := s.locked().Find(&orders, "tracking_number = ?", trackingNumber).Error; err != nil {
		return nil, fmt.Errorf("failed to lock orders for tracking %s: %w", trackingNumber, err)
	}
	group := make([]*models.Order, 0, len(orders))
	for i := range orders {
		order := orders[i]
		if existing, ok := s.orders[order.UniqueID]; ok {
			group = append(group, existing)
			continue
		}
		s.orders[order.UniqueID] = &order
		group = append(group, &order)
	}
	return group, nil
}

// User returns the locked user account, memoized by ID.
func (s *gormSettlementStore) User(id string) (*models.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	var user models.User
	if err := s.locked().First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock user %s: %w", id, err)
	}
	s.users[id] = &user
	return &user, nil
}

// Vendor returns the locked vendor account, memoized by ID.
func (s *gormSettlementStore) Vendor(id string) (*models.Vendor, error) {
	if vendor, ok := s.vendors[id]; ok {
		return vendor, nil
	}
	var vendor models.Vendor
	if err := s.locked().First(&vendor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("vendor with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock vendor %s: %w", id, err)
	}
	s.vendors[id] = &vendor
	return &vendor, nil
}

// Rider returns the locked rider account, memoized by ID.
func (s *gormSettlementStore) Rider(id string) (*models.Rider, error) {
	if rider, ok := s.riders[id]; ok {
		return rider, nil
	}
	var rider models.Rider
	if err := s.locked().First(&rider, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("rider with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock rider %s: %w", id, err)
	}
	s.riders[id] = &rider
	return &rider, nil
}

// Product returns the locked product row, memoized by ID.
func (s *gormSettlementStore) Product(id string) (*models.Product, error) {
	if product, ok := s.products[id]; ok {
		return product, nil
	}
	var product models.Product
	if err := s.locked().First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock product %s: %w", id, err)
	}
	s.products[id] = &product
	return &product, nil
}

// Cart returns the locked cart line, memoized by ID.
func (s *gormSettlementStore) Cart(id string) (*models.Cart, error) {
	if cart, ok := s.carts[id]; ok {
		return cart, nil
	}
	var cart models.Cart
	if err := s.locked().First(&cart, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("cart with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock cart %s: %w", id, err)
	}
	s.carts[id] = &cart
	return &cart, nil
}

// ShippingFee reads a rider quote. Quotes are immutable during settlement,
// so no lock and no memoization.
func (s *gormSettlementStore) ShippingFee(id string) (*models.ShippingFee, error) {
	var fee models.ShippingFee
	if err := s.tx.First(&fee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("shipping fee with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shipping fee %s: %w", id, err)
	}
	return &fee, nil
}

// DefaultAddress reads the buyer's default address. Read-only.
func (s *gormSettlementStore) DefaultAddress(userID string) (*models.Address, error) {
	var address models.Address
	if err := s.tx.First(&address, "user_id = ? AND is_default = ?", userID, true).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("default address for user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get default address for user %s: %w", userID, err)
	}
	return &address, nil
}

// LatestDispute reads the most recent dispute row of an order. Read-only;
// dispute rows are never mutated.
func (s *gormSettlementStore) LatestDispute(orderUniqueID string) (*models.Dispute, error) {
	var dispute models.Dispute
	if err := s.tx.Order("id DESC").First(&dispute, "order_unique_id = ?", orderUniqueID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("dispute for order %s: %w", orderUniqueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dispute for order %s: %w", orderUniqueID, err)
	}
	return &dispute, nil
}

// CreateOrder inserts a new order and memoizes it so later reads in the same
// batch see it.
func (s *gormSettlementStore) CreateOrder(order *models.Order) error {
	if err := s.tx.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	s.orders[order.UniqueID] = order
	return nil
}

// AddHistory appends an audit row.
func (s *gormSettlementStore) AddHistory(history *models.OrderHistory) error {
	if err := s.tx.Create(history).Error; err != nil {
		return fmt.Errorf("failed to create order history: %w", err)
	}
	return nil
}

// AddDispute appends a dispute row.
func (s *gormSettlementStore) AddDispute(dispute *models.Dispute) error {
	if err := s.tx.Create(dispute).Error; err != nil {
		return fmt.Errorf("failed to create dispute: %w", err)
	}
	return nil
}

// AddCompleted inserts the completion snapshot.
func (s *gormSettlementStore) AddCompleted(completed *models.OrderCompleted) error {
	if err := s.tx.Create(completed).Error; err != nil {
		return fmt.Errorf("failed to create completed snapshot: %w", err)
	}
	return nil
}

// AddUserTransaction appends a customer ledger entry.
func (s *gormSettlementStore) AddUserTransaction(t *models.UserTransaction) error {
	if err := s.tx.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create user transaction: %w", err)
	}
	return nil
}

// AddVendorTransaction appends a vendor ledger entry.
func (s *gormSettlementStore) AddVendorTransaction(t *models.VendorTransaction) error {
	if err := s.tx.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create vendor transaction: %w", err)
	}
	return nil
}

// AddRiderTransaction appends a rider ledger entry.
func (s *gormSettlementStore) AddRiderTransaction(t *models.RiderTransaction) error {
	if err := s.tx.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create rider transaction: %w", err)
	}
	return nil
}

// flush writes every memoized row back exactly once. Rows created through
// CreateOrder are saved again, which is a no-op update on unchanged fields.
func (s *gormSettlementStore) flush() error {
	for _, order := range s.orders {
		if err := s.tx.Save(order).Error; err != nil {
			return fmt.Errorf("failed to save order %s: %w", order.UniqueID, err)
		}
	}
	for _, user := range s.users {
		if err := s.tx.Save(user).Error; err != nil {
			return fmt.Errorf("failed to save user %s: %w", user.ID, err)
		}
	}
	for _, vendor := range s.vendors {
		if err := s.tx.Save(vendor).Error; err != nil {
			return fmt.Errorf("failed to save vendor %s: %w", vendor.ID, err)
		}
	}
	for _, rider := range s.riders {
		if err := s.tx.Save(rider).Error; err != nil {
			return fmt.Errorf("failed to save rider %s: %w", rider.ID, err)
		}
	}
	for _, product := range s.products {
		if err := s.tx.Save(product).Error; err != nil {
			return fmt.Errorf("failed to save product %s: %w", product.ID, err)
		}
	}
	for _, cart := range s.carts {
		if err := s.tx.Save(cart).Error; err != nil {
			return fmt.Errorf("failed to save cart %s: %w", cart.ID, err)
		}
	}
	return nil
}
