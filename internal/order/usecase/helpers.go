package usecase

import (
	"fmt"

	"order-intake/internal/order"
)

// localize shows stored instants in the store's civil zone. Some drivers
// hand back UTC or the session zone.
func (uc *implUseCase) localize(o order.Order) order.Order {
	o.Draft.PickupAt = o.Draft.PickupAt.In(uc.cfg.Location)
	o.CreatedAt = o.CreatedAt.In(uc.cfg.Location)
	o.UpdatedAt = o.UpdatedAt.In(uc.cfg.Location)
	return o
}

func wrapPersistence(err error) error {
	return fmt.Errorf("%w: %v", order.ErrPersistence, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
