package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// AccountService handles the read side of accounts and orders: address
// book, wallet view and order/audit lookups.
type AccountService struct {
	userRepo    repositories.UserRepository
	addressRepo repositories.AddressRepository
	orderRepo   repositories.OrderRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository, addressRepo repositories.AddressRepository, orderRepo repositories.OrderRepository) *AccountService {
	return &AccountService{
		userRepo:    userRepo,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
	}
}

// AddAddress adds an address to a buyer's address book.
func (s *AccountService) AddAddress(userID string, address *models.Address) error {
	address.UserID = userID
	return s.addressRepo.Create(address)
}

// GetAddresses retrieves a buyer's address book.
func (s *AccountService) GetAddresses(userID string) ([]models.Address, error) {
	return s.addressRepo.GetAllByUser(userID)
}

// GetWallet retrieves a buyer's balance and service charge.
func (s *AccountService) GetWallet(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = "" // never expose the hash
	return user, nil
}

// GetUserOrders retrieves all orders placed by a buyer.
func (s *AccountService) GetUserOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetAllByUser(userID)
}

// GetVendorOrders retrieves all orders addressed to a vendor.
func (s *AccountService) GetVendorOrders(vendorID string) ([]models.Order, error) {
	return s.orderRepo.GetAllByVendor(vendorID)
}

// OrderDetail bundles an order with its audit trail and dispute rows.
type OrderDetail struct {
	Order    models.Order           `json:"order"`
	History  []models.OrderHistory  `json:"history"`
	Disputes []models.Dispute       `json:"disputes"`
	Snapshot *models.OrderCompleted `json:"snapshot,omitempty"`
}

// GetOrderDetail retrieves one order with its history, disputes and (when
// completed) its snapshot. The caller must own the order unless admin.
func (s *AccountService) GetOrderDetail(actorID, role, orderID string) (*OrderDetail, error) {
	order, err := s.orderRepo.GetByUniqueID(orderID)
	if err != nil {
		return nil, err
	}
	switch role {
	case models.RoleAdmin:
	case models.RoleCustomer:
		if order.UserID != actorID {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotOwner)
		}
	case models.RoleVendor:
		if order.VendorID != actorID {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotOwner)
		}
	case models.RoleRider:
		if order.RiderID != actorID {
			return nil, fmt.Errorf("order %s: %w", orderID, ErrNotOwner)
		}
	default:
		return nil, fmt.Errorf("order %s: %w", orderID, ErrNotOwner)
	}

	hist, err := s.orderRepo.GetHistory(orderID)
	if err != nil {
		return nil, err
	}
	disputes, err := s.orderRepo.GetDisputes(orderID)
	if err != nil {
		return nil, err
	}
	detail := &OrderDetail{Order: *order, History: hist, Disputes: disputes}
	if snapshot, err := s.orderRepo.GetCompleted(orderID); err == nil {
		detail.Snapshot = snapshot
	}
	return detail, nil
}
