package models

import (
	"time"
)

type TicketTier struct {
	ID       string  `json:"id"`
	EventID  string  `json:"event_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// Ticket links a user to an event and tier. The linked Event and Tier
// come pre-joined from the store and may be missing when the referenced
// record was deleted; display code must tolerate both being nil.
type Ticket struct {
	ID           string      `json:"id"`
	EventID      string      `json:"event_id"`
	TierID       string      `json:"tier_id"`
	OrderID      string      `json:"order_id,omitempty"`
	UserID       string      `json:"user_id"`
	QRCodeSecret string      `json:"qr_code_secret,omitempty"`
	Status       string      `json:"status"` // valid, used, cancelled, expired
	SeatLabel    string      `json:"seat_label,omitempty"`
	PurchaseDate time.Time   `json:"purchase_date"`
	Event        *Event      `json:"event,omitempty"`
	Tier         *TicketTier `json:"tier,omitempty"`
}

// EventTitle returns the linked event's title or the placeholder used
// when the reference is broken.
func (t *Ticket) EventTitle() string {
	if t.Event != nil && t.Event.Title != "" {
		return t.Event.Title
	}
	return "Unknown Event"
}

// TierName falls back to a generic label for broken tier references.
func (t *Ticket) TierName() string {
	if t.Tier != nil && t.Tier.Name != "" {
		return t.Tier.Name
	}
	return "Ticket"
}
