package order

import "errors"

var (
	ErrMalformedInput  = errors.New("input text is empty or not valid text")
	ErrNoCustomerName  = errors.New("no name found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidTransfer = errors.New("status transition not allowed")
	ErrPersistence     = errors.New("failed to store order")
	ErrInvalidChannel  = errors.New("invalid import channel")
	ErrTextTooLong     = errors.New("input text is too long")
)
