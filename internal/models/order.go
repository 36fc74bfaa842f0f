package models

import "time"

// OrderStatusPending is the status every order is created with. Orders are
// never mutated after creation.
const OrderStatusPending = "PENDING"

// OrderItem represents a single line within an order. Price is the unit price
// of the product at the time the order was created and is frozen against
// later catalog changes.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a customer order together with its line items.
// Total equals the sum of quantity * snapshot price over all items and is
// computed exactly once, at creation.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
