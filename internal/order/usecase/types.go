package usecase

import (
	"context"
	"time"

	"order-intake/internal/order"
	"order-intake/pkg/gcalendar"
)

// Publisher sends domain events to the message bus.
type Publisher interface {
	Publish(ctx context.Context, key string, value any) error
}

// Calendar reserves the pickup slot of an imported order.
type Calendar interface {
	CreateHold(ctx context.Context, req gcalendar.HoldRequest) (gcalendar.Hold, error)
}

// Config carries the import settings.
type Config struct {
	DefaultChannel order.Channel
	// Location is the store's civil zone; stored instants are shown in it.
	Location     *time.Location
	CalendarID   string
	HoldDuration time.Duration
	MaxTextBytes int
}
