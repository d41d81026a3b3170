package http

import (
	"order-intake/internal/order"
	"order-intake/pkg/log"
)

type handler struct {
	l  log.Logger
	uc order.UseCase
}

// New creates the HTTP handler for the order domain.
func New(l log.Logger, uc order.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
