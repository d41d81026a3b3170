package postgre

import (
	"database/sql"
	"fmt"

	"order-intake/internal/order/repository"
	"order-intake/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed order Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("order/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/postgre.%s", method)
}
