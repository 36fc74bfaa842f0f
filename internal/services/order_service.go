package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

// CreateOrder creates a new order from the requested line items. The order's
// owner is always the caller; the repository prices, stock-checks, and
// persists the order atomically.
func (s *OrderService) CreateOrder(identity models.Identity, items []models.OrderItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("an order needs at least one item")
	}

	order := &models.Order{
		UserID: identity.UserID,
		Items:  make([]models.OrderItem, len(items)),
	}
	for i, item := range items {
		order.Items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	publishEvent(s.publisher, "order.created", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total,
	})
	return order, nil
}

// GetAllOrders returns all orders for ADMIN callers and only the caller's own
// orders otherwise. Narrowed results, not an error.
func (s *OrderService) GetAllOrders(identity models.Identity) ([]models.Order, error) {
	if identity.IsAdmin() {
		return s.orderRepo.GetAll()
	}
	return s.orderRepo.GetByUserID(identity.UserID)
}

// GetOrderByID returns a single order. A caller who is neither the owner nor
// an ADMIN gets the same NotFound as for an absent order.
func (s *OrderService) GetOrderByID(id string, identity models.Identity) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return order, nil
}
