package repository

import (
	"context"

	"order-intake/internal/order"
)

// Repository is the composed interface for the order data store.
type Repository interface {
	OrderRepository
	// EnsureSchema creates the orders table and its indexes when missing.
	EnsureSchema(ctx context.Context) error
}

// OrderRepository defines all data access methods for stored orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (order.Order, error)
	GetOneOrder(ctx context.Context, opt GetOneOrderOptions) (order.Order, error)
	ListOrders(ctx context.Context, opt ListOrdersOptions) ([]order.Order, int, error)
	UpdateOrderStatus(ctx context.Context, opt UpdateOrderStatusOptions) (order.Order, error)
}
