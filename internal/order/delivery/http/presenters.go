package http

import (
	"errors"
	"strings"
	"time"

	"order-intake/internal/order"
	"order-intake/pkg/response"
)

// --- Request DTOs ---

type importReq struct {
	Text    string `json:"text"`
	Channel string `json:"channel" binding:"omitempty,oneof=manual extension"`
}

func (r importReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}

func (r importReq) toInput() order.ImportInput {
	return order.ImportInput{
		Text:    r.Text,
		Channel: order.Channel(r.Channel),
	}
}

type parseReq struct {
	Text string `json:"text"`
}

func (r parseReq) toInput() order.PreviewInput {
	return order.PreviewInput{Text: r.Text}
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error {
	if r.Offset < 0 {
		return errors.New("offset must not be negative")
	}
	return nil
}

func (r listReq) toInput() order.ListOrdersInput {
	return order.ListOrdersInput{
		Status: order.Status(r.Status),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

type updateStatusReq struct {
	ID     string `json:"-"`
	Status string `json:"status" binding:"required"`
}

func (r updateStatusReq) validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func (r updateStatusReq) toInput() order.UpdateStatusInput {
	return order.UpdateStatusInput{
		ID:     r.ID,
		Status: order.Status(r.Status),
	}
}

// --- Response DTOs ---

type itemResp struct {
	Text     string `json:"text"`
	Name     string `json:"name"`
	Quantity *int   `json:"quantity,omitempty"`
}

type draftResp struct {
	CustomerName    string        `json:"customer_name"`
	CustomerContact *string       `json:"customer_contact"`
	PickupType      string        `json:"pickup_type"`
	PickupAt        time.Time     `json:"pickup_at"`
	PickupDate      response.Date `json:"pickup_date"`
	PickupTime      string        `json:"pickup_time"`
	PickupDefaulted bool          `json:"pickup_defaulted"`
	PickupSource    *string       `json:"pickup_source"`
	Address         *string       `json:"address"`
	Request         *string       `json:"request"`
	Items           []itemResp    `json:"items"`
	TotalPrice      *string       `json:"total_price"`
	SourceText      string        `json:"source_text"`
}

func newDraftResp(d order.Draft) draftResp {
	items := make([]itemResp, len(d.Items))
	for i, it := range d.Items {
		items[i] = itemResp{Text: it.Text, Name: it.Name, Quantity: it.Quantity}
	}

	var total *string
	if d.TotalPrice != nil {
		s := d.TotalPrice.String()
		total = &s
	}

	return draftResp{
		CustomerName:    d.CustomerName,
		CustomerContact: d.CustomerContact,
		PickupType:      string(d.PickupType),
		PickupAt:        d.PickupAt,
		PickupDate:      response.Date(d.PickupAt),
		PickupTime:      d.PickupTime(),
		PickupDefaulted: d.PickupDefaulted,
		PickupSource:    d.PickupSource,
		Address:         d.Address,
		Request:         d.Request,
		Items:           items,
		TotalPrice:      total,
		SourceText:      d.SourceText,
	}
}

type orderResp struct {
	ID string `json:"id"`
	draftResp
	Status    string            `json:"status"`
	Kind      string            `json:"kind"`
	Channel   string            `json:"channel"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newOrderResp(o order.Order) orderResp {
	return orderResp{
		ID:        o.ID,
		draftResp: newDraftResp(o.Draft),
		Status:    string(o.Status),
		Kind:      string(o.Kind),
		Channel:   string(o.Channel),
		CreatedAt: response.DateTime(o.CreatedAt),
		UpdatedAt: response.DateTime(o.UpdatedAt),
	}
}

type importResp struct {
	Order           orderResp `json:"order"`
	PickupDefaulted bool      `json:"pickup_defaulted"`
}

func (h *handler) newImportResp(out order.ImportOutput) importResp {
	return importResp{
		Order:           newOrderResp(out.Order),
		PickupDefaulted: out.Order.Draft.PickupDefaulted,
	}
}

type parseResp struct {
	Draft draftResp `json:"draft"`
}

func (h *handler) newParseResp(out order.PreviewOutput) parseResp {
	return parseResp{Draft: newDraftResp(out.Draft)}
}

type listResp struct {
	Orders []orderResp `json:"orders"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListResp(out order.ListOrdersOutput) listResp {
	orders := make([]orderResp, len(out.Orders))
	for i, o := range out.Orders {
		orders[i] = newOrderResp(o)
	}
	return listResp{
		Orders: orders,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Order orderResp `json:"order"`
}

func (h *handler) newDetailResp(out order.DetailOutput) detailResp {
	return detailResp{Order: newOrderResp(out.Order)}
}

type updateStatusResp struct {
	Order orderResp `json:"order"`
}

func (h *handler) newUpdateStatusResp(out order.UpdateStatusOutput) updateStatusResp {
	return updateStatusResp{Order: newOrderResp(out.Order)}
}
