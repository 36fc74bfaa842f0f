package repositories

import (
	"errors"
	"fmt"

	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db       *gorm.DB
	products *GORMProductRepository
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
// The product repository is used inside the creation transaction for the
// stock reservations.
func NewGORMOrderRepository(db *gorm.DB, products *GORMProductRepository) *GORMOrderRepository {
	return &GORMOrderRepository{
		db:       db,
		products: products,
	}
}

// GetAll retrieves all orders with their items in creation order.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByUserID retrieves the orders owned by a user, with items, in creation
// order.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create prices, stock-checks, and persists the order in one transaction.
// Any failure rolls the whole transaction back, so stock decrements and the
// order row are all-or-nothing.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.Status = models.OrderStatusPending

	err := r.db.Transaction(func(tx *gorm.DB) error {
		products := r.products.WithTx(tx)

		// Every referenced product must exist before any stock is touched.
		// The unit price is snapshotted here and frozen on the item.
		var total float64
		for i := range order.Items {
			item := &order.Items[i]
			product, err := products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			item.Price = product.Price
			total += item.Price * float64(item.Quantity)
		}

		// Per-line reservation, in caller order. A repeated product ID is
		// checked against whatever the earlier lines left behind.
		for i := range order.Items {
			item := &order.Items[i]
			if err := products.ReserveStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		order.Total = total
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
