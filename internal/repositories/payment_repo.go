package repositories

import "gerai/internal/models"

// PaymentRepository defines the interface for payment data access.
// Nothing prevents two payments against the same order; deduplication is a
// documented follow-up, not a current constraint.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByOrderID(orderID string) ([]models.Payment, error)
}
