package order

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Import extracts a draft from raw text and stores it as a pending-review reservation.
	Import(ctx context.Context, input ImportInput) (ImportOutput, error)
	// Preview extracts a draft without storing anything.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)

	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context, input ListOrdersInput) (ListOrdersOutput, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (UpdateStatusOutput, error)
}

// Extractor turns raw platform text into a Draft. now is used only when the
// text has no resolvable pickup date.
type Extractor interface {
	Extract(text string, now time.Time) (Draft, error)
}
