package repositories

import (
	"fmt"
	"sync"
	"time"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Order creations serialize on the repository lock, which stands in for the
// database transaction of the GORM implementation.
type MockOrderRepository struct {
	orders   map[string]models.Order
	sequence []string
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository backed
// by the given in-memory product repository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		products: products,
	}
}

// GetAll returns all orders in creation order.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.sequence))
	for _, id := range r.sequence {
		orderList = append(orderList, r.orders[id])
	}
	return orderList, nil
}

// GetByUserID returns the orders owned by a user in creation order.
func (r *MockOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, id := range r.sequence {
		if order := r.orders[id]; order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// Create prices, stock-checks, and stores the order. Reservations already
// applied are released again when a later line fails, so a rejected order
// leaves stock exactly as it was.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Existence and price snapshot for every line before any stock moves.
	var total float64
	for i := range order.Items {
		item := &order.Items[i]
		product, err := r.products.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		item.Price = product.Price
		total += item.Price * float64(item.Quantity)
	}

	// Per-line reservation in caller order, compensated on failure.
	for i := range order.Items {
		item := &order.Items[i]
		if err := r.products.ReserveStock(item.ProductID, item.Quantity); err != nil {
			for j := 0; j < i; j++ {
				applied := order.Items[j]
				if releaseErr := r.products.ReleaseStock(applied.ProductID, applied.Quantity); releaseErr != nil {
					return fmt.Errorf("failed to release stock after rejected order: %w", releaseErr)
				}
			}
			return err
		}
	}

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.Total = total
	order.Status = models.OrderStatusPending
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	r.sequence = append(r.sequence, order.ID)
	return nil
}
