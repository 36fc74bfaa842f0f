package repositories_test

import (
	"testing"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestMockProductRepository_ReserveStock(t *testing.T) {
	products := newCatalog(t, models.Product{ID: "prod-1", Name: "Laptop Stand", Price: 30.0, Stock: 5})

	assert.NoError(t, products.ReserveStock("prod-1", 3))
	assert.Equal(t, 2, stockOf(t, products, "prod-1"))

	err := products.ReserveStock("prod-1", 3)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, 2, stockOf(t, products, "prod-1"))

	assert.ErrorIs(t, products.ReserveStock("prod-404", 1), models.ErrNotFound)

	assert.NoError(t, products.ReleaseStock("prod-1", 3))
	assert.Equal(t, 5, stockOf(t, products, "prod-1"))
}

func TestMockUserRepository_EmailUniqueness(t *testing.T) {
	users := repositories.NewMockUserRepository()

	first := &models.User{Email: "a@example.com", Password: "hash", Role: models.RoleUser}
	assert.NoError(t, users.Create(first))
	assert.NotEmpty(t, first.ID)

	dup := &models.User{Email: "a@example.com", Password: "hash", Role: models.RoleUser}
	assert.ErrorIs(t, users.Create(dup), models.ErrEmailTaken)

	found, err := users.GetByEmail("a@example.com")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = users.GetByEmail("missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMockPaymentRepository_RecordsDuplicatePayments(t *testing.T) {
	payments := repositories.NewMockPaymentRepository()

	// Nothing stops a second payment against the same order; both are kept.
	for i := 0; i < 2; i++ {
		payment := &models.Payment{
			OrderID: "order-1",
			Amount:  60.0,
			Status:  models.PaymentStatusCompleted,
		}
		assert.NoError(t, payments.Create(payment))
		assert.NotEmpty(t, payment.ID)
	}

	recorded, err := payments.GetByOrderID("order-1")
	assert.NoError(t, err)
	assert.Len(t, recorded, 2)

	none, err := payments.GetByOrderID("order-2")
	assert.NoError(t, err)
	assert.Empty(t, none)
}
