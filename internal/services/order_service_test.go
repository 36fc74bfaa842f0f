package services_test

import (
	"fmt"
	"testing"

	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewOrderService(mockRepo, mockPublisher)

	items := []models.OrderItem{
		{ProductID: "prod-1", Quantity: 2},
	}

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Run(func(args mock.Arguments) {
		order := args.Get(0).(*models.Order)
		// The owner must already be the caller when the repository sees it.
		assert.Equal(t, "user-1", order.UserID)
		order.ID = "order-1"
		order.Total = 60.0
		order.Status = models.OrderStatusPending
		order.Items[0].Price = 30.0
	}).Return(nil).Once()
	mockPublisher.On("Publish", "order.created", mock.Anything).Return(nil).Once()

	order, err := service.CreateOrder(userIdentity, items)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 60.0, order.Total, 0.0001)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_CreateOrder_RepositoryFailures(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	items := []models.OrderItem{{ProductID: "prod-404", Quantity: 1}}

	// Unknown product
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Return(fmt.Errorf("product with ID prod-404: %w", models.ErrNotFound)).Once()
	_, err := service.CreateOrder(userIdentity, items)
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Not enough stock
	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).
		Return(fmt.Errorf("product with ID prod-404: %w", models.ErrInsufficientStock)).Once()
	_, err = service.CreateOrder(userIdentity, items)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	mockRepo.AssertExpectations(t)

	// No items at all
	_, err = service.CreateOrder(userIdentity, nil)
	assert.Error(t, err)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewOrderService(mockRepo, mockPublisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()
	mockPublisher.On("Publish", "order.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	_, err := service.CreateOrder(userIdentity, []models.OrderItem{{ProductID: "prod-1", Quantity: 1}})
	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestOrderService_GetAllOrders(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	allOrders := []models.Order{
		{ID: "order-1", UserID: "user-1"},
		{ID: "order-2", UserID: "user-2"},
	}

	// Admin sees everything
	mockRepo.On("GetAll").Return(allOrders, nil).Once()
	orders, err := service.GetAllOrders(adminIdentity)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)

	// A regular user only sees their own orders, as a filter, not an error
	mockRepo.On("GetByUserID", "user-1").Return(allOrders[:1], nil).Once()
	orders, err = service.GetAllOrders(userIdentity)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "user-1", orders[0].UserID)
	mockRepo.AssertExpectations(t)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	service := services.NewOrderService(mockRepo, nil)

	order := &models.Order{ID: "order-1", UserID: "user-1", Total: 60.0}

	// Owner may read
	mockRepo.On("GetByID", "order-1").Return(order, nil).Once()
	got, err := service.GetOrderByID("order-1", userIdentity)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Admin may read someone else's order
	mockRepo.On("GetByID", "order-1").Return(order, nil).Once()
	got, err = service.GetOrderByID("order-1", adminIdentity)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// Another user gets NotFound, not Forbidden, so existence never leaks
	mockRepo.On("GetByID", "order-1").Return(order, nil).Once()
	stranger := models.Identity{UserID: "user-2", Role: models.RoleUser}
	_, err = service.GetOrderByID("order-1", stranger)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NotErrorIs(t, err, models.ErrForbidden)

	// A truly absent order looks exactly the same
	mockRepo.On("GetByID", "order-404").Return(nil, fmt.Errorf("order with ID order-404: %w", models.ErrNotFound)).Once()
	_, err = service.GetOrderByID("order-404", userIdentity)
	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
