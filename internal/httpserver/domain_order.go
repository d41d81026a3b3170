package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"order-intake/internal/middleware"
	orderHTTP "order-intake/internal/order/delivery/http"
	"order-intake/internal/order/extractor"
	"order-intake/internal/order/repository"
	orderPostgre "order-intake/internal/order/repository/postgre"
	orderSQLite "order-intake/internal/order/repository/sqlite"
	orderUC "order-intake/internal/order/usecase"
	"order-intake/pkg/datenorm"
	"order-intake/pkg/sqldb"
)

// setupOrderDomain builds the order stack and registers /api/v1/orders.
func (srv HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo, err := srv.newOrderRepository()
	if err != nil {
		return err
	}
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("order schema: %w", err)
	}

	// 2. UseCase
	norm := datenorm.Default()
	cfg := srv.orderCfg
	if cfg.Location == nil {
		cfg.Location = norm.Location()
	}
	uc := orderUC.New(srv.l, extractor.New(norm), repo, srv.metrics, srv.publisher, srv.calendar, cfg)

	// 3. HTTP Handler
	h := orderHTTP.New(srv.l, uc)

	// 4. Routes
	orderHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Order domain registered (store: %s)", srv.dbDriver)
	return nil
}

func (srv HTTPServer) newOrderRepository() (repository.Repository, error) {
	switch srv.dbDriver {
	case sqldb.DriverPostgres:
		return orderPostgre.New(srv.db, srv.l), nil
	case sqldb.DriverSQLite:
		return orderSQLite.New(srv.db, srv.l), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", srv.dbDriver)
	}
}
