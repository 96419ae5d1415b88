package models

import (
	"time"
)

type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	EventID     string      `json:"event_id"`
	TotalAmount float64     `json:"total_amount"`
	Currency    string      `json:"currency"`
	Status      string      `json:"status"` // pending, completed, refunded, cancelled
	CreatedAt   time.Time   `json:"created_at"`
	Event       *Event      `json:"event,omitempty"`
	Items       []OrderItem `json:"order_items"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	TierID    string  `json:"tier_id"`
	TierName  string  `json:"tier_name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

func (o *Order) EventTitle() string {
	if o.Event != nil && o.Event.Title != "" {
		return o.Event.Title
	}
	return "Unknown Event"
}
