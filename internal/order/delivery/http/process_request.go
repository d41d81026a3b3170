package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processImportReq(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateStatusReq binds the status body and the id path param.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
