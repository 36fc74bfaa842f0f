package repositories

import "gerai/internal/models"

// OrderRepository defines the interface for order data access.
//
// Create receives an order whose items carry only ProductID and Quantity.
// The repository snapshots each line's unit price, computes the total,
// decrements stock per line, and persists the order with its items as a
// single atomic unit: a missing product or an insufficient line leaves stock
// and the order store untouched. Lines are processed in caller order and
// repeated product IDs are NOT aggregated before checking.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
}
