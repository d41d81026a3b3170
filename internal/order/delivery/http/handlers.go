package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgErrors "order-intake/pkg/errors"
	"order-intake/pkg/response"
)

// Import godoc
// @Summary     Import an order from reservation text
// @Description Extracts a draft from pasted platform text and stores it as a pending-review reservation.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body importReq true "Raw reservation text"
// @Success     200  {object} importResp
// @Failure     400  {object} response.Resp "Bad Request - empty text or no name found"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.Import", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newImportResp(output))
}

// Parse godoc
// @Summary     Preview an extraction
// @Description Extracts a draft from pasted text without storing it.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       body body parseReq true "Raw reservation text"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request - empty text or no name found"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Router      /api/v1/orders/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.Preview", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// List godoc
// @Summary     List orders
// @Description Returns a page of orders, newest first, with an optional status filter.
// @Tags        Orders
// @Produce     json
// @Security    ApiKeyAuth
// @Param       status query string false "pending_review, confirmed, completed or cancelled"
// @Param       limit  query int    false "Page size (default: 20, max: 100)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.List", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get order detail
// @Tags        Orders
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Order ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.logError(c, "uc.Detail", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// UpdateStatus godoc
// @Summary     Move an order through review
// @Description pending_review may become confirmed or cancelled; confirmed may become completed or cancelled.
// @Tags        Orders
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id   path string          true "Order ID"
// @Param       body body updateStatusReq true "Target status"
// @Success     200 {object} updateStatusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - transition not allowed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/orders/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.UpdateStatus(ctx, req.toInput())
	if err != nil {
		h.logError(c, "uc.UpdateStatus", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateStatusResp(output))
}

// logError logs client errors at warn level and everything else at error.
func (h *handler) logError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	var he *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &he) && he.StatusCode < 500 {
		h.l.Warnf(ctx, "%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
}
