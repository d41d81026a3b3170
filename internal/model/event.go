package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// EventOrderImported is published after a text import is stored.
	EventOrderImported = "order.imported"
)

// OrderImportedEvent is the message body published for EventOrderImported.
// PickupAt keeps the store's civil offset.
type OrderImportedEvent struct {
	EventType       string           `json:"event_type"`
	OrderID         string           `json:"order_id"`
	CustomerName    string           `json:"customer_name"`
	PickupType      string           `json:"pickup_type"`
	PickupAt        time.Time        `json:"pickup_at"`
	PickupDefaulted bool             `json:"pickup_defaulted"`
	ItemCount       int              `json:"item_count"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	Channel         string           `json:"channel"`
	ImportedAt      time.Time        `json:"imported_at"`
}
