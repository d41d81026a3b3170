package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"order-intake/internal/order"
	repo "order-intake/internal/order/repository"
)

const orderColumns = `id, customer_name, customer_contact, pickup_type, pickup_at, pickup_defaulted,
	pickup_source, address, request, items, total_price, source_text, status, kind, channel,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (order.Order, error) {
	var (
		row                            repo.Row
		pickupAt, createdAt, updatedAt string
	)
	err := s.Scan(
		&row.ID, &row.CustomerName, &row.CustomerContact, &row.PickupType, &pickupAt,
		&row.PickupDefaulted, &row.PickupSource, &row.Address, &row.Request, &row.Items,
		&row.TotalPrice, &row.SourceText, &row.Status, &row.Kind, &row.Channel,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}

	o, err := row.Order()
	if err != nil {
		return order.Order{}, err
	}
	if o.Draft.PickupAt, err = time.Parse(time.RFC3339Nano, pickupAt); err != nil {
		return order.Order{}, err
	}
	if o.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return order.Order{}, err
	}
	if o.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return order.Order{}, err
	}
	return o, nil
}

// CreateOrder inserts a new order row and returns the stored entity.
func (r *implRepository) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (order.Order, error) {
	row, err := repo.NewRow(uuid.NewString(), opt)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}

	created := opt.CreatedAt.UTC().Format(timeLayout)
	query := fmt.Sprintf(`INSERT INTO orders (%s) VALUES (%s)`, orderColumns, placeholders(17))
	_, err = r.db.ExecContext(ctx, query,
		row.ID, row.CustomerName, row.CustomerContact, row.PickupType, opt.Draft.PickupAt.Format(timeLayout),
		row.PickupDefaulted, row.PickupSource, row.Address, row.Request, row.Items,
		row.TotalPrice, row.SourceText, row.Status, row.Kind, row.Channel, created, created,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}

	o, err := r.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: row.ID})
	if err != nil || o.ID == "" {
		return order.Order{}, repo.ErrFailedToInsert
	}
	return o, nil
}

// GetOneOrder retrieves a single order by ID.
// Returns a zero-value Order (ID == "") when not found.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (order.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = ? LIMIT 1`, orderColumns)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneOrder"), err)
		return order.Order{}, repo.ErrFailedToGet
	}
	return o, nil
}

// ListOrders returns a page of orders, newest first, and the total count.
func (r *implRepository) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) ([]order.Order, int, error) {
	where, args := buildFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, args := buildPage(opt, args)
	query := fmt.Sprintf(`SELECT %s FROM orders %s ORDER BY created_at DESC, id %s`, orderColumns, where, page)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	orders := make([]order.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrders"), err)
			return nil, 0, repo.ErrFailedToList
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return orders, total, nil
}

// UpdateOrderStatus applies a status change guarded by the expected current
// status. Returns a zero-value Order when no row matched.
func (r *implRepository) UpdateOrderStatus(ctx context.Context, opt repo.UpdateOrderStatusOptions) (order.Order, error) {
	const query = `UPDATE orders SET status = ?, updated_at = ? WHERE id = ? AND status = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(opt.To), opt.UpdatedAt.UTC().Format(timeLayout), opt.ID, string(opt.From))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateOrderStatus"), err)
		return order.Order{}, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateOrderStatus"), err)
		return order.Order{}, repo.ErrFailedToUpdate
	}
	if n == 0 {
		return order.Order{}, nil
	}

	o, err := r.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: opt.ID})
	if err != nil {
		return order.Order{}, repo.ErrFailedToUpdate
	}
	return o, nil
}

func buildFilter(opt repo.ListOrdersOptions) (string, []any) {
	if opt.Status == "" {
		return "", nil
	}
	return "WHERE status = ?", []any{string(opt.Status)}
}

// buildPage emits LIMIT -1 when only an offset is given; SQLite has no bare OFFSET.
func buildPage(opt repo.ListOrdersOptions, args []any) (string, []any) {
	switch {
	case opt.Limit > 0 && opt.Offset > 0:
		return "LIMIT ? OFFSET ?", append(args, opt.Limit, opt.Offset)
	case opt.Limit > 0:
		return "LIMIT ?", append(args, opt.Limit)
	case opt.Offset > 0:
		return "LIMIT -1 OFFSET ?", append(args, opt.Offset)
	}
	return "", args
}

func placeholders(n int) string {
	list := make([]string, n)
	for i := range list {
		list[i] = "?"
	}
	return strings.Join(list, ", ")
}
