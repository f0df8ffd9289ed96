package models

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"

	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

var orderStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// IsValidOrderStatus reports whether s is one of the defined order statuses.
func IsValidOrderStatus(s string) bool {
	return orderStatuses[s]
}

// OrderItem is a denormalized snapshot of a menu item at order time.
// Later menu edits do not affect existing orders.
type OrderItem struct {
	MenuID   int     `json:"menuId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID            int         `json:"-"`
	OrderID       string      `json:"orderId"`
	StudentEmail  string      `json:"studentEmail"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"paymentStatus"`
	DeliveryTime  *time.Time  `json:"deliveryTime,omitempty"`
	Notes         string      `json:"notes"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
