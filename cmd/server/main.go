package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"shoppinglist/internal/catalog"
	"shoppinglist/internal/classifier"
	"shoppinglist/internal/config"
	"shoppinglist/internal/handlers"
	"shoppinglist/internal/middleware"
	"shoppinglist/internal/repository"
	"shoppinglist/internal/service"
	"shoppinglist/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting shopping list api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"db_driver", cfg.Database.Driver,
		"log_level", cfg.LogLevel,
	)

	// Open the backing store and migrate tables
	db, err := repository.Open(cfg.Database)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	categoryRepo := repository.NewGormCategoryRepository(db)
	itemRepo := repository.NewGormItemRepository(db)

	ctx := context.Background()

	// Seed the category reference table on first run
	if err := seedCategories(ctx, categoryRepo, log); err != nil {
		log.Error("failed to seed categories", "error", err)
		os.Exit(1)
	}

	// Load the catalog; falls back to the built-in set if the store
	// cannot be read
	cat := catalog.Load(ctx, categoryRepo, log)

	// Initialize the classification gateway
	openaiClient := classifier.NewOpenAIClient(cfg.OpenAI)
	gateway := classifier.NewGateway(openaiClient, cat, log)

	// Initialize services
	orderService := service.NewOrderService(categoryRepo, itemRepo, log)
	historyService := service.NewHistoryService(itemRepo, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	categoryHandler := handlers.NewCategoryHandler(cat, log)
	checkHandler := handlers.NewCheckHandler(gateway, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	historyHandler := handlers.NewHistoryHandler(historyService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.ClientOriginURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.ClientOriginURL)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Catalog-Degraded"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Register routes
	r.Get("/health", healthHandler.ServeHTTP)
	r.Get("/categories", categoryHandler.ListCategories)
	r.Get("/check", checkHandler.Check)
	r.Post("/orders", orderHandler.CreateOrder)
	r.Get("/order-history", historyHandler.OrderHistory)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// seedCategories inserts the built-in category set on an empty store
func seedCategories(ctx context.Context, repo repository.CategoryRepository, log *slog.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("categories already exist", "count", count)
		return nil
	}

	log.Info("inserting initial categories")
	return repo.CreateBatch(ctx, catalog.Builtin())
}
