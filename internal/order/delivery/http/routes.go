package http

import (
	"github.com/gin-gonic/gin"

	"order-intake/internal/middleware"
)

// RegisterRoutes mounts the order routes under rg. Every route goes through
// the API key check and the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	orders := rg.Group("/orders", mw.Auth(), mw.RateLimit())
	{
		orders.POST("/import", h.Import)
		orders.POST("/parse", h.Parse)
		orders.GET("", h.List)
		orders.GET("/:id", h.Detail)
		orders.PATCH("/:id/status", h.UpdateStatus)
	}
}
