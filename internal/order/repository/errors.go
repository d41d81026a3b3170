package repository

import "errors"

var (
	ErrFailedToInsert  = errors.New("failed to insert order")
	ErrFailedToGet     = errors.New("failed to get order")
	ErrFailedToList    = errors.New("failed to list orders")
	ErrFailedToUpdate  = errors.New("failed to update order")
	ErrFailedToMigrate = errors.New("failed to ensure order schema")
)
