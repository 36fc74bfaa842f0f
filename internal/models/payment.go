package models

import "time"

// PaymentStatusCompleted is the status every payment is recorded with.
const PaymentStatusCompleted = "COMPLETED"

// Payment represents a completed payment against an order. Amount is copied
// from the order's total at creation time.
type Payment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string    `json:"order_id" gorm:"index;type:varchar(36)"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
