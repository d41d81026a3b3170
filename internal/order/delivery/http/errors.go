package http

import (
	"errors"
	"net/http"

	"order-intake/internal/order"
	pkgErrors "order-intake/pkg/errors"
)

// mapError translates usecase errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, order.ErrMalformedInput),
		errors.Is(err, order.ErrNoCustomerName),
		errors.Is(err, order.ErrInvalidChannel),
		errors.Is(err, order.ErrTextTooLong),
		errors.Is(err, order.ErrInvalidStatus):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransfer):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
