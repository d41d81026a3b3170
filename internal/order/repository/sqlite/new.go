package sqlite

import (
	"database/sql"
	"fmt"

	"order-intake/internal/order/repository"
	"order-intake/pkg/log"
)

// timeLayout keeps a fixed-width fraction so UTC timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed order Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("order/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/sqlite.%s", method)
}
