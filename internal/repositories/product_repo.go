package repositories

import "gerai/internal/models"

// ProductRepository defines the interface for catalog data access.
//
// ReserveStock is the atomic check-and-decrement for a single order line:
// it decrements stock by quantity only if at least that much is available,
// and is safe to call from concurrently executing order creations.
// ReleaseStock undoes a reservation when a later line of the same order
// fails, so a rejected order never leaves partial stock effects behind.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	ReserveStock(id string, quantity int) error
	ReleaseStock(id string, quantity int) error
}
