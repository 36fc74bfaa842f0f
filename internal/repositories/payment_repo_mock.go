package repositories

import (
	"sync"
	"time"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
type MockPaymentRepository struct {
	payments map[string]models.Payment
	sequence []string
	mu       sync.RWMutex
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{
		payments: make(map[string]models.Payment),
	}
}

// Create adds a new payment.
func (r *MockPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	r.payments[payment.ID] = *payment
	r.sequence = append(r.sequence, payment.ID)
	return nil
}

// GetByOrderID returns the payments recorded against an order in creation
// order.
func (r *MockPaymentRepository) GetByOrderID(orderID string) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var paymentList []models.Payment
	for _, id := range r.sequence {
		if payment := r.payments[id]; payment.OrderID == orderID {
			paymentList = append(paymentList, payment)
		}
	}
	return paymentList, nil
}
