package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// PaymentService handles business logic related to payments.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
	publisher   EventPublisher
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentRepository, orderRepo repositories.OrderRepository, publisher EventPublisher) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// CreatePayment records a completed payment for the order's total. Only the
// order's owner may pay it; unlike order reads, ADMIN gets no override here,
// and a foreign order is indistinguishable from an absent one.
func (s *PaymentService) CreatePayment(identity models.Identity, orderID string) (*models.Payment, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != identity.UserID {
		return nil, fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
	}

	payment := &models.Payment{
		OrderID: orderID,
		Amount:  order.Total,
		Status:  models.PaymentStatusCompleted,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment for order %s: %w", orderID, err)
	}

	publishEvent(s.publisher, "payment.completed", map[string]interface{}{
		"payment_id": payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"status":     payment.Status,
	})
	return payment, nil
}
