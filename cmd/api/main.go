package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"order-intake/config"
	_ "order-intake/docs" // Swagger docs
	"order-intake/internal/httpserver"
	"order-intake/internal/middleware"
	"order-intake/internal/model"
	"order-intake/internal/order"
	orderUC "order-intake/internal/order/usecase"
	"order-intake/pkg/gcalendar"
	"order-intake/pkg/kafka"
	"order-intake/pkg/log"
	"order-intake/pkg/metrics"
	"order-intake/pkg/sqldb"
)

// @title       Order Intake API
// @description Turns reservation text pasted from Korean ordering platforms into reviewable orders.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in          header
// @name        X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Order Intake...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqldb.Open(ctx, sqldb.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s database: %v", cfg.Database.Driver, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database connected (%s)", cfg.Database.Driver)

	registry := metrics.NewRegistry()

	// 4. Kafka publisher (optional)
	var publisher orderUC.Publisher
	if cfg.Kafka.Enabled {
		syncProducer, kErr := kafka.NewSyncProducer(kafka.Config{Brokers: cfg.Kafka.Brokers, ClientID: cfg.Kafka.ClientID})
		if kErr != nil {
			logger.Warnf(ctx, "Kafka not available (optional): %v", kErr)
		} else {
			producer := kafka.NewProducer(syncProducer, cfg.Kafka.Topic, logger)
			defer producer.Close()
			publisher = producer
			logger.Infof(ctx, "Publishing %s events to topic %s", model.EventOrderImported, cfg.Kafka.Topic)
		}
	}

	// 5. Google Calendar client (optional)
	var calendar orderUC.Calendar
	if cfg.GoogleCalendar.Enabled {
		calendarClient, gErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "Run `intakectl calendar-auth` to generate the token file")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		DBDriver:    cfg.Database.Driver,
		Metrics:     registry,
		Publisher:   publisher,
		Calendar:    calendar,
		Order: orderUC.Config{
			DefaultChannel: order.Channel(cfg.Importer.DefaultChannel),
			CalendarID:     cfg.GoogleCalendar.CalendarID,
			HoldDuration:   cfg.GoogleCalendar.HoldDuration,
			MaxTextBytes:   cfg.Importer.MaxTextBytes,
		},
		Middleware: middleware.Config{
			APIKey:          cfg.Importer.APIKey,
			RateLimitPerMin: cfg.Importer.RateLimitPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
