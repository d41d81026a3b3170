package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"order-intake/internal/model"
	"order-intake/internal/order"
	repo "order-intake/internal/order/repository"
	"order-intake/pkg/gcalendar"
	"order-intake/pkg/metrics"
)

// Import extracts a draft from raw text and stores it for review.
// Extraction errors are returned as-is and nothing is stored.
func (uc *implUseCase) Import(ctx context.Context, input order.ImportInput) (order.ImportOutput, error) {
	channel := input.Channel
	if channel == "" {
		channel = uc.cfg.DefaultChannel
	}
	if channel != order.ChannelManual && channel != order.ChannelExtension {
		return order.ImportOutput{}, order.ErrInvalidChannel
	}

	now := uc.now()
	draft, err := uc.extract(input.Text, now)
	if err != nil {
		return order.ImportOutput{}, err
	}

	o, err := uc.repo.CreateOrder(ctx, repo.CreateOrderOptions{
		Draft:     draft,
		Status:    order.StatusPendingReview,
		Kind:      order.KindReservation,
		Channel:   channel,
		CreatedAt: now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "order.usecase.Import: CreateOrder: %v", err)
		uc.metrics.ObserveImport(string(channel), "failed")
		return order.ImportOutput{}, fmt.Errorf("%w: %v", order.ErrPersistence, err)
	}
	uc.metrics.ObserveImport(string(channel), "stored")
	o = uc.localize(o)

	uc.publishImported(ctx, o, now)
	uc.holdPickupSlot(ctx, o)

	uc.l.Infof(ctx, "order.usecase.Import: stored order %s for %s (defaulted date: %t)",
		o.ID, o.Draft.CustomerName, o.Draft.PickupDefaulted)
	return order.ImportOutput{Order: o}, nil
}

// Preview extracts a draft without storing it.
func (uc *implUseCase) Preview(ctx context.Context, input order.PreviewInput) (order.PreviewOutput, error) {
	draft, err := uc.extract(input.Text, uc.now())
	if err != nil {
		return order.PreviewOutput{}, err
	}
	return order.PreviewOutput{Draft: draft}, nil
}

func (uc *implUseCase) extract(text string, now time.Time) (order.Draft, error) {
	if uc.cfg.MaxTextBytes > 0 && len(text) > uc.cfg.MaxTextBytes {
		uc.metrics.ObserveExtraction(metrics.OutcomeMalformed, 0)
		return order.Draft{}, order.ErrTextTooLong
	}

	start := time.Now()
	draft, err := uc.extractor.Extract(text, now)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, order.ErrNoCustomerName):
		uc.metrics.ObserveExtraction(metrics.OutcomeNoName, elapsed)
	case err != nil:
		uc.metrics.ObserveExtraction(metrics.OutcomeMalformed, elapsed)
	case draft.PickupDefaulted:
		uc.metrics.ObserveExtraction(metrics.OutcomeDefaultedDate, elapsed)
	default:
		uc.metrics.ObserveExtraction(metrics.OutcomeExtracted, elapsed)
	}
	return draft, err
}

// publishImported is best-effort; the order is already stored.
func (uc *implUseCase) publishImported(ctx context.Context, o order.Order, now time.Time) {
	if uc.publisher == nil {
		return
	}
	err := uc.publisher.Publish(ctx, o.ID, model.OrderImportedEvent{
		EventType:       model.EventOrderImported,
		OrderID:         o.ID,
		CustomerName:    o.Draft.CustomerName,
		PickupType:      string(o.Draft.PickupType),
		PickupAt:        o.Draft.PickupAt,
		PickupDefaulted: o.Draft.PickupDefaulted,
		ItemCount:       len(o.Draft.Items),
		TotalPrice:      o.Draft.TotalPrice,
		Channel:         string(o.Channel),
		ImportedAt:      now,
	})
	uc.metrics.ObserveSidecar("event", err)
	if err != nil {
		uc.l.Warnf(ctx, "order.usecase.Import: publish %s: %v", o.ID, err)
	}
}

// holdPickupSlot is best-effort. A defaulted date is not a real slot, so
// no hold is created for it.
func (uc *implUseCase) holdPickupSlot(ctx context.Context, o order.Order) {
	if uc.calendar == nil || o.Draft.PickupDefaulted {
		return
	}
	_, err := uc.calendar.CreateHold(ctx, gcalendar.HoldRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     holdSummary(o.Draft),
		Description: o.Draft.SourceText,
		Location:    deref(o.Draft.Address),
		Start:       o.Draft.PickupAt,
		Duration:    uc.cfg.HoldDuration,
	})
	uc.metrics.ObserveSidecar("calendar", err)
	if err != nil {
		uc.l.Warnf(ctx, "order.usecase.Import: calendar hold %s: %v", o.ID, err)
	}
}

func holdSummary(d order.Draft) string {
	label := "픽업"
	switch d.PickupType {
	case order.PickupTypeDelivery:
		label = "배달"
	case order.PickupTypeUnknown:
		label = "확인 필요"
	}

	parts := []string{"[" + label + "]", d.CustomerName}
	if len(d.Items) > 0 {
		parts = append(parts, d.Items[0].Text)
		if len(d.Items) > 1 {
			parts = append(parts, fmt.Sprintf("외 %d건", len(d.Items)-1))
		}
	}
	return strings.Join(parts, " ")
}
