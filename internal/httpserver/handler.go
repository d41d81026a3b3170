package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"order-intake/internal/middleware"
	"order-intake/internal/model"
)

func (srv HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l, srv.metrics, srv.middleware)

	srv.registerMiddlewares(ctx, mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(ctx, mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(ctx context.Context, mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.Logging())

	if srv.environment == string(model.EnvironmentProduction) && srv.middleware.APIKey == "" {
		srv.l.Warnf(ctx, "API key is empty in production, order routes are open")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(ctx context.Context, mw middleware.Middleware) error {
	api := srv.gin.Group("/api/v1")

	if err := srv.setupOrderDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
