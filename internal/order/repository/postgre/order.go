package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
		row   repo.Row
		items []byte
		o     order.Order
	)
	err := s.Scan(
		&row.ID, &row.CustomerName, &row.CustomerContact, &row.PickupType, &o.Draft.PickupAt,
		&row.PickupDefaulted, &row.PickupSource, &row.Address, &row.Request, &items,
		&row.TotalPrice, &row.SourceText, &row.Status, &row.Kind, &row.Channel,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, err
	}
	row.Items = string(items)

	built, err := row.Order()
	if err != nil {
		return order.Order{}, err
	}
	built.Draft.PickupAt = o.Draft.PickupAt
	built.CreatedAt = o.CreatedAt
	built.UpdatedAt = o.UpdatedAt
	return built, nil
}

// CreateOrder inserts a new order row and returns the stored entity.
func (r *implRepository) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (order.Order, error) {
	row, err := repo.NewRow(uuid.NewString(), opt)
	if err != nil {
		r.l.Errorf(ctx, "%s encode: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO orders (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING %s`, orderColumns, orderColumns)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query,
		row.ID, row.CustomerName, row.CustomerContact, row.PickupType, opt.Draft.PickupAt,
		row.PickupDefaulted, row.PickupSource, row.Address, row.Request, row.Items,
		row.TotalPrice, row.SourceText, row.Status, row.Kind, row.Channel, opt.CreatedAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateOrder"), err)
		return order.Order{}, repo.ErrFailedToInsert
	}
	return o, nil
}

// GetOneOrder retrieves a single order by ID.
// Returns a zero-value Order (ID == "") when not found.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (order.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1 LIMIT 1`, orderColumns)

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
	where, args := r.buildFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM orders %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListOrders"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, args := r.buildPage(opt, args)
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
	query := fmt.Sprintf(`
		UPDATE orders
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING %s`, orderColumns)

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, string(opt.To), opt.UpdatedAt, opt.ID, string(opt.From)))
	if errors.Is(err, sql.ErrNoRows) {
		return order.Order{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateOrderStatus"), err)
		return order.Order{}, repo.ErrFailedToUpdate
	}
	return o, nil
}
