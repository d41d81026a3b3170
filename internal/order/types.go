package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Extraction Model ---

// PickupType is how the customer receives the order.
type PickupType string

const (
	PickupTypePickup   PickupType = "PICKUP"
	PickupTypeDelivery PickupType = "DELIVERY"
	PickupTypeUnknown  PickupType = "UNKNOWN"
)

// ItemDraft is one line item as written in the source text.
type ItemDraft struct {
	Text     string `json:"text"`
	Name     string `json:"name"`
	Quantity *int   `json:"quantity,omitempty"`
}

// Draft is the structured result of extracting an order from raw text.
// Optional fields are nil when the text did not contain them.
type Draft struct {
	CustomerName    string           `json:"customer_name"`
	CustomerContact *string          `json:"customer_contact,omitempty"`
	PickupType      PickupType       `json:"pickup_type"`
	PickupAt        time.Time        `json:"pickup_at"`
	PickupDefaulted bool             `json:"pickup_defaulted"`
	PickupSource    *string          `json:"pickup_source,omitempty"`
	Address         *string          `json:"address,omitempty"`
	Request         *string          `json:"request,omitempty"`
	Items           []ItemDraft      `json:"items"`
	TotalPrice      *decimal.Decimal `json:"total_price,omitempty"`
	SourceText      string           `json:"source_text"`
}

// PickupDate formats the pickup instant's civil date.
func (d Draft) PickupDate() string {
	return d.PickupAt.Format("2006-01-02")
}

// PickupTime formats the pickup instant's civil time of day.
func (d Draft) PickupTime() string {
	return d.PickupAt.Format("15:04")
}

// --- Stored Record ---

// Status is the review workflow state of a stored order.
type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusConfirmed     Status = "confirmed"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPendingReview, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a review workflow may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPendingReview:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Kind distinguishes how an order entered the system.
type Kind string

const KindReservation Kind = "reservation"

// Channel is where the raw text came from.
type Channel string

const (
	ChannelManual    Channel = "manual"
	ChannelExtension Channel = "extension"
)

// Order is a persisted draft with identity and workflow state.
type Order struct {
	ID        string
	Draft     Draft
	Status    Status
	Kind      Kind
	Channel   Channel
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- UseCase Inputs ---

type ImportInput struct {
	Text    string
	Channel Channel
}

type PreviewInput struct {
	Text string
}

type ListOrdersInput struct {
	Status Status
	Limit  int
	Offset int
}

type UpdateStatusInput struct {
	ID     string
	Status Status
}

// --- UseCase Outputs ---

type ImportOutput struct {
	Order Order
}

type PreviewOutput struct {
	Draft Draft
}

type DetailOutput struct {
	Order Order
}

type ListOrdersOutput struct {
	Orders []Order
	Total  int
	Limit  int
	Offset int
}

type UpdateStatusOutput struct {
	Order Order
}
