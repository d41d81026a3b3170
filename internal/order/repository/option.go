package repository

import (
	"time"

	"order-intake/internal/order"
)

// CreateOrderOptions holds parameters for inserting a new order.
// The repository assigns the ID.
type CreateOrderOptions struct {
	Draft     order.Draft
	Status    order.Status
	Kind      order.Kind
	Channel   order.Channel
	CreatedAt time.Time
}

// GetOneOrderOptions selects a single order by ID.
type GetOneOrderOptions struct {
	ID string
}

// ListOrdersOptions holds filter and pagination parameters for listing orders.
type ListOrdersOptions struct {
	Status order.Status
	Limit  int
	Offset int
}

// UpdateOrderStatusOptions moves an order from one status to another.
// The update only applies while the stored status still equals From.
type UpdateOrderStatusOptions struct {
	ID        string
	From      order.Status
	To        order.Status
	UpdatedAt time.Time
}
