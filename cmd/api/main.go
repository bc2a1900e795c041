package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arangodoc/docs"
	"arangodoc/internal/config"
	"arangodoc/internal/database"
	"arangodoc/internal/database/migration"
	handlers "arangodoc/internal/http/handler"
	"arangodoc/internal/http/middleware"
	"arangodoc/internal/logging"
	"arangodoc/internal/otel"
	"arangodoc/internal/repository/arango"
	"arangodoc/internal/service"
)

// @title arangodoc gateway
// @version 1.0
// @description REST gateway over an ArangoDB document store.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := logging.New("api")
	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}
	if err := logging.SetLogLevel(cfg.LogLevel); err != nil {
		logger.Fatalw("invalid log level", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatalw("failed to initialize tracing", "error", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Connect to the database; the connection pings the server before returning
	conn, err := database.NewConnection(cfg.Arango, logging.New("arango"), reg)
	if err != nil {
		logger.Fatalw("failed to connect to database", "error", err)
	}
	if err := migration.EnsureCollections(ctx, conn, cfg.Arango.Collections, logging.New("migration")); err != nil {
		logger.Fatalw("failed to prepare collections", "error", err)
	}

	// Initialize repositories and services
	docRepo := arango.NewDocumentArango(conn, cfg.Arango.Cluster)
	docSvc := service.NewDocumentService(docRepo)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatalw("failed to register gateway metrics", "error", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logging.New("http")))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, docSvc)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warnw("server shutdown", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	logger.Infow("listening", "addr", addr, "database", cfg.Arango.Database)
	if err := app.Listen(addr); err != nil {
		logger.Fatalw("failed to start server", "error", err)
	}
}
