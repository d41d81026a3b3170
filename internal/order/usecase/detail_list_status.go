package usecase

import (
	"context"

	"github.com/google/uuid"

	"order-intake/internal/order"
	repo "order-intake/internal/order/repository"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Detail retrieves a single order. Returns ErrOrderNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, id string) (order.DetailOutput, error) {
	o, err := uc.getOne(ctx, id)
	if err != nil {
		return order.DetailOutput{}, err
	}
	return order.DetailOutput{Order: o}, nil
}

// List returns a page of orders, newest first.
func (uc *implUseCase) List(ctx context.Context, input order.ListOrdersInput) (order.ListOrdersOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return order.ListOrdersOutput{}, order.ErrInvalidStatus
	}
	limit := input.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := max(input.Offset, 0)

	orders, total, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{
		Status: input.Status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "order.usecase.List: ListOrders: %v", err)
		return order.ListOrdersOutput{}, wrapPersistence(err)
	}
	for i := range orders {
		orders[i] = uc.localize(orders[i])
	}

	return order.ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateStatus moves an order along the review workflow.
func (uc *implUseCase) UpdateStatus(ctx context.Context, input order.UpdateStatusInput) (order.UpdateStatusOutput, error) {
	if !input.Status.Valid() {
		return order.UpdateStatusOutput{}, order.ErrInvalidStatus
	}

	current, err := uc.getOne(ctx, input.ID)
	if err != nil {
		return order.UpdateStatusOutput{}, err
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return order.UpdateStatusOutput{}, order.ErrInvalidTransfer
	}

	updated, err := uc.repo.UpdateOrderStatus(ctx, repo.UpdateOrderStatusOptions{
		ID:        current.ID,
		From:      current.Status,
		To:        input.Status,
		UpdatedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "order.usecase.UpdateStatus: UpdateOrderStatus: %v", err)
		return order.UpdateStatusOutput{}, wrapPersistence(err)
	}
	// Another request changed the status first.
	if updated.ID == "" {
		return order.UpdateStatusOutput{}, order.ErrInvalidTransfer
	}

	uc.l.Infof(ctx, "order.usecase.UpdateStatus: %s %s -> %s", updated.ID, current.Status, updated.Status)
	return order.UpdateStatusOutput{Order: uc.localize(updated)}, nil
}

func (uc *implUseCase) getOne(ctx context.Context, id string) (order.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return order.Order{}, order.ErrOrderNotFound
	}

	o, err := uc.repo.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "order.usecase.getOne: GetOneOrder: %v", err)
		return order.Order{}, wrapPersistence(err)
	}
	if o.ID == "" {
		return order.Order{}, order.ErrOrderNotFound
	}
	return uc.localize(o), nil
}
