package services_test

import (
	"fmt"
	"testing"

	"gerai/internal/models"
	"gerai/internal/services"

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

func (m *MockProductRepository) ReserveStock(id string, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) ReleaseStock(id string, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

var (
	adminIdentity = models.Identity{UserID: "admin-1", Role: models.RoleAdmin}
	userIdentity  = models.Identity{UserID: "user-1", Role: models.RoleUser}
)

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Price: 10.0, Stock: 100},
		{ID: "2", Name: "Product B", Price: 20.0, Stock: 50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Price: 10.0, Stock: 100}

	// Successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "New Product", Price: 50.0, Stock: 20}

	// Admin may create
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct, adminIdentity)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Non-admin is rejected before the repository is touched
	freshRepo := new(MockProductRepository)
	err = services.NewProductService(freshRepo).CreateProduct(newProduct, userIdentity)
	assert.ErrorIs(t, err, models.ErrForbidden)
	freshRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", Name: "Product A", Description: "Original", Price: 12.0, Stock: 95}

	// Partial update: only the supplied fields change
	newPrice := 15.0
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	updated, err := service.UpdateProduct("1", models.ProductUpdate{Price: &newPrice}, adminIdentity)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, updated.Price)
	assert.Equal(t, "Product A", updated.Name)
	assert.Equal(t, "Original", updated.Description)
	assert.Equal(t, 95, updated.Stock)
	mockRepo.AssertExpectations(t)

	// Non-admin is rejected
	_, err = service.UpdateProduct("1", models.ProductUpdate{Price: &newPrice}, userIdentity)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// Unknown product
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	_, err = service.UpdateProduct("99", models.ProductUpdate{Price: &newPrice}, adminIdentity)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// Admin may delete
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1", adminIdentity)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Non-admin is rejected
	freshRepo := new(MockProductRepository)
	err = services.NewProductService(freshRepo).DeleteProduct("1", userIdentity)
	assert.ErrorIs(t, err, models.ErrForbidden)
	freshRepo.AssertNotCalled(t, "Delete", mock.Anything)

	// Deleting an unknown product
	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	err = service.DeleteProduct("99", adminIdentity)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
