package services_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllByVendor(vendorID string) ([]models.Product, error) {
	args := m.Called(vendorID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(cart *models.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) GetActiveByUser(userID string) ([]models.Cart, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Cart), args.Error(1)
}

// MockShippingFeeRepository is a mock implementation of repositories.ShippingFeeRepository
type MockShippingFeeRepository struct {
	mock.Mock
}

func (m *MockShippingFeeRepository) Create(fee *models.ShippingFee) error {
	args := m.Called(fee)
	return args.Error(0)
}

func (m *MockShippingFeeRepository) GetByID(id string) (*models.ShippingFee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShippingFee), args.Error(1)
}

func (m *MockShippingFeeRepository) GetAllByRider(riderID string) ([]models.ShippingFee, error) {
	args := m.Called(riderID)
	return args.Get(0).([]models.ShippingFee), args.Error(1)
}

func newCatalogService() (*services.CatalogService, *MockProductRepository, *MockCartRepository, *MockShippingFeeRepository) {
	productRepo := new(MockProductRepository)
	cartRepo := new(MockCartRepository)
	shippingRepo := new(MockShippingFeeRepository)
	return services.NewCatalogService(productRepo, cartRepo, shippingRepo), productRepo, cartRepo, shippingRepo
}

func TestCatalogService_GetAllProducts(t *testing.T) {
	service, productRepo, _, _ := newCatalogService()

	expected := []models.Product{
		{ID: "1", VendorID: "v1", Name: "Product A", Price: 10.0, Remaining: 100},
		{ID: "2", VendorID: "v1", Name: "Product B", Price: 20.0, Remaining: 50},
	}
	productRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct(t *testing.T) {
	service, productRepo, _, _ := newCatalogService()

	product := &models.Product{Name: "New Product", Price: 15.0, Remaining: 3}
	productRepo.On("Create", product).Return(nil).Once()

	err := service.CreateProduct("vendor-1", product)

	assert.NoError(t, err)
	assert.Equal(t, "vendor-1", product.VendorID)
	productRepo.AssertExpectations(t)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	service, productRepo, _, _ := newCatalogService()

	existing := &models.Product{ID: "p1", VendorID: "vendor-1", Name: "Old Name", Price: 10.0}
	update := &models.Product{ID: "p1", Name: "New Name", Price: 12.0}

	// Owning vendor may update.
	productRepo.On("GetByID", "p1").Return(existing, nil).Once()
	productRepo.On("Update", update).Return(nil).Once()
	err := service.UpdateProduct("vendor-1", update)
	assert.NoError(t, err)

	// Another vendor may not.
	productRepo.On("GetByID", "p1").Return(existing, nil).Once()
	err = service.UpdateProduct("vendor-2", update)
	assert.ErrorIs(t, err, services.ErrNotOwner)

	productRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	service, productRepo, _, _ := newCatalogService()

	existing := &models.Product{ID: "p1", VendorID: "vendor-1", Name: "Product A", Price: 10.0}

	// Owning vendor may delete.
	productRepo.On("GetByID", "p1").Return(existing, nil).Once()
	productRepo.On("Delete", "p1").Return(nil).Once()
	err := service.DeleteProduct("vendor-1", "p1")
	assert.NoError(t, err)

	// Another vendor may not.
	productRepo.On("GetByID", "p1").Return(existing, nil).Once()
	err = service.DeleteProduct("vendor-2", "p1")
	assert.ErrorIs(t, err, services.ErrNotOwner)

	productRepo.AssertExpectations(t)
}

func TestCatalogService_AddToCart(t *testing.T) {
	service, productRepo, cartRepo, shippingRepo := newCatalogService()

	product := &models.Product{ID: "p1", VendorID: "v1", Name: "Product A", Price: 10.0, Remaining: 5}
	fee := &models.ShippingFee{ID: "f1", RiderID: "r1", Fee: 5.0}
	cart := &models.Cart{ProductID: "p1", ShippingFeeID: "f1", Quantity: 2}

	productRepo.On("GetByID", "p1").Return(product, nil).Once()
	shippingRepo.On("GetByID", "f1").Return(fee, nil).Once()
	cartRepo.On("Create", cart).Return(nil).Once()

	err := service.AddToCart("user-1", cart)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Equal(t, models.CartActive, cart.Status)
	productRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	shippingRepo.AssertExpectations(t)
}

func TestCatalogService_AddToCartInsufficientStock(t *testing.T) {
	service, productRepo, cartRepo, _ := newCatalogService()

	product := &models.Product{ID: "p1", VendorID: "v1", Name: "Product A", Price: 10.0, Remaining: 1}
	cart := &models.Cart{ProductID: "p1", ShippingFeeID: "f1", Quantity: 2}

	productRepo.On("GetByID", "p1").Return(product, nil).Once()

	err := service.AddToCart("user-1", cart)

	assert.ErrorIs(t, err, services.ErrInsufficientStock)
	cartRepo.AssertNotCalled(t, "Create")
	productRepo.AssertExpectations(t)
}

func TestCatalogService_AddToCartUnknownProduct(t *testing.T) {
	service, productRepo, cartRepo, _ := newCatalogService()

	cart := &models.Cart{ProductID: "missing", ShippingFeeID: "f1", Quantity: 1}
	productRepo.On("GetByID", "missing").Return(nil, repositories.ErrNotFound).Once()

	err := service.AddToCart("user-1", cart)

	assert.ErrorIs(t, err, repositories.ErrNotFound)
	cartRepo.AssertNotCalled(t, "Create")
	productRepo.AssertExpectations(t)
}

func TestCatalogService_CreateShippingFee(t *testing.T) {
	service, _, _, shippingRepo := newCatalogService()

	fee := &models.ShippingFee{Fee: 7.5}
	shippingRepo.On("Create", fee).Return(nil).Once()

	err := service.CreateShippingFee("rider-1", fee)

	assert.NoError(t, err)
	assert.Equal(t, "rider-1", fee.RiderID)
	shippingRepo.AssertExpectations(t)
}
