package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"order-intake/internal/middleware"
	orderUC "order-intake/internal/order/usecase"
	"order-intake/pkg/log"
	"order-intake/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db       *sql.DB
	dbDriver string
	metrics  *metrics.Registry

	// Order domain
	publisher  orderUC.Publisher
	calendar   orderUC.Calendar
	orderCfg   orderUC.Config
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	DBDriver string
	Metrics  *metrics.Registry

	// Publisher and Calendar are optional.
	Publisher  orderUC.Publisher
	Calendar   orderUC.Calendar
	Order      orderUC.Config
	Middleware middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		dbDriver:    cfg.DBDriver,
		metrics:     cfg.Metrics,
		publisher:   cfg.Publisher,
		calendar:    cfg.Calendar,
		orderCfg:    cfg.Order,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
