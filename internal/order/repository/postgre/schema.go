package postgre

import (
	"context"

	repo "order-intake/internal/order/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id               UUID PRIMARY KEY,
		customer_name    TEXT NOT NULL,
		customer_contact TEXT,
		pickup_type      TEXT NOT NULL,
		pickup_at        TIMESTAMPTZ NOT NULL,
		pickup_defaulted BOOLEAN NOT NULL DEFAULT FALSE,
		pickup_source    TEXT,
		address          TEXT,
		request          TEXT,
		items            JSONB NOT NULL DEFAULT '[]'::jsonb,
		total_price      NUMERIC(14, 2),
		source_text      TEXT NOT NULL,
		status           TEXT NOT NULL,
		kind             TEXT NOT NULL,
		channel          TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status_created_at ON orders (status, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_pickup_at ON orders (pickup_at)`,
}

// EnsureSchema creates the orders table and indexes when missing.
func (r *implRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureSchema"), err)
			return repo.ErrFailedToMigrate
		}
	}
	return nil
}
