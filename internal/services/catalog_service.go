package services

import (
	"fmt"

	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogService handles the vendor-facing catalog: products, cart lines and
// shipping quotes. Stock and balances are only read here; settlement
// operations own the writes.
type CatalogService struct {
	productRepo  repositories.ProductRepository
	cartRepo     repositories.CartRepository
	shippingRepo repositories.ShippingFeeRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(productRepo repositories.ProductRepository, cartRepo repositories.CartRepository, shippingRepo repositories.ShippingFeeRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		cartRepo:     cartRepo,
		shippingRepo: shippingRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// GetVendorProducts retrieves all products of one vendor.
func (s *CatalogService) GetVendorProducts(vendorID string) ([]models.Product, error) {
	return s.productRepo.GetAllByVendor(vendorID)
}

// CreateProduct creates a new product owned by the given vendor.
func (s *CatalogService) CreateProduct(vendorID string, product *models.Product) error {
	product.VendorID = vendorID
	return s.productRepo.Create(product)
}

// UpdateProduct updates a product. Only the owning vendor may change it.
func (s *CatalogService) UpdateProduct(vendorID string, product *models.Product) error {
	existing, err := s.productRepo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.VendorID != vendorID {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotOwner)
	}
	product.VendorID = vendorID
	return s.productRepo.Update(product)
}

// DeleteProduct removes a product from the catalog. Only the owning vendor
// may delete it. Orders already placed keep their product reference.
func (s *CatalogService) DeleteProduct(vendorID, productID string) error {
	existing, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if existing.VendorID != vendorID {
		return fmt.Errorf("product %s: %w", productID, ErrNotOwner)
	}
	return s.productRepo.Delete(productID)
}

// AddToCart adds a cart line for a buyer after checking the product and
// shipping quote exist. Stock is validated again at checkout and payment.
func (s *CatalogService) AddToCart(userID string, cart *models.Cart) error {
	product, err := s.productRepo.GetByID(cart.ProductID)
	if err != nil {
		return err
	}
	if product.Remaining < cart.Quantity {
		return fmt.Errorf("product %s: %w", product.ID, ErrInsufficientStock)
	}
	if _, err := s.shippingRepo.GetByID(cart.ShippingFeeID); err != nil {
		return err
	}
	cart.UserID = userID
	cart.Status = models.CartActive
	return s.cartRepo.Create(cart)
}

// GetActiveCart retrieves a buyer's active cart lines.
func (s *CatalogService) GetActiveCart(userID string) ([]models.Cart, error) {
	return s.cartRepo.GetActiveByUser(userID)
}

// CreateShippingFee creates a delivery quote owned by the given rider.
func (s *CatalogService) CreateShippingFee(riderID string, fee *models.ShippingFee) error {
	fee.RiderID = riderID
	return s.shippingRepo.Create(fee)
}

// GetRiderShippingFees retrieves all quotes of one rider.
func (s *CatalogService) GetRiderShippingFees(riderID string) ([]models.ShippingFee, error) {
	return s.shippingRepo.GetAllByRider(riderID)
}
