package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/shopspring/decimal"

	"order-intake/internal/order"
)

// Row is the column-level shape shared by the SQL backends.
type Row struct {
	ID              string
	CustomerName    string
	CustomerContact sql.NullString
	PickupType      string
	PickupDefaulted bool
	PickupSource    sql.NullString
	Address         sql.NullString
	Request         sql.NullString
	Items           string
	TotalPrice      decimal.NullDecimal
	SourceText      string
	Status          string
	Kind            string
	Channel         string
}

// NewRow flattens the insert options into column values.
func NewRow(id string, opt CreateOrderOptions) (Row, error) {
	items := opt.Draft.Items
	if items == nil {
		items = []order.ItemDraft{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return Row{}, err
	}

	r := Row{
		ID:              id,
		CustomerName:    opt.Draft.CustomerName,
		CustomerContact: nullString(opt.Draft.CustomerContact),
		PickupType:      string(opt.Draft.PickupType),
		PickupDefaulted: opt.Draft.PickupDefaulted,
		PickupSource:    nullString(opt.Draft.PickupSource),
		Address:         nullString(opt.Draft.Address),
		Request:         nullString(opt.Draft.Request),
		Items:           string(raw),
		SourceText:      opt.Draft.SourceText,
		Status:          string(opt.Status),
		Kind:            string(opt.Kind),
		Channel:         string(opt.Channel),
	}
	if opt.Draft.TotalPrice != nil {
		r.TotalPrice = decimal.NewNullDecimal(*opt.Draft.TotalPrice)
	}
	return r, nil
}

// Order rebuilds the domain record. Timestamps are filled by the caller
// because each backend stores them differently.
func (r Row) Order() (order.Order, error) {
	items := []order.ItemDraft{}
	if r.Items != "" {
		if err := json.Unmarshal([]byte(r.Items), &items); err != nil {
			return order.Order{}, err
		}
	}

	o := order.Order{
		ID: r.ID,
		Draft: order.Draft{
			CustomerName:    r.CustomerName,
			CustomerContact: stringPtr(r.CustomerContact),
			PickupType:      order.PickupType(r.PickupType),
			PickupDefaulted: r.PickupDefaulted,
			PickupSource:    stringPtr(r.PickupSource),
			Address:         stringPtr(r.Address),
			Request:         stringPtr(r.Request),
			Items:           items,
			SourceText:      r.SourceText,
		},
		Status:  order.Status(r.Status),
		Kind:    order.Kind(r.Kind),
		Channel: order.Channel(r.Channel),
	}
	if r.TotalPrice.Valid {
		v := r.TotalPrice.Decimal
		o.Draft.TotalPrice = &v
	}
	return o, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
