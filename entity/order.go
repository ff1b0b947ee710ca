package entity

import "time"

type OrderStatus string

const (
	StatusOrderPlaced OrderStatus = "Order Placed"
	// Reserved for a future kitchen-side flow; nothing produces these yet.
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
)

// Order is immutable once written to the order slot.
type Order struct {
	ID           string      `json:"id"`
	Date         time.Time   `json:"date"`
	Items        []CartItem  `json:"items"`
	TotalAmount  int64       `json:"totalAmount"`
	Status       OrderStatus `json:"status"`
	CanteenNames []string    `json:"canteenNames"`
	UserInfo     UserInfo    `json:"userInfo"`
}
