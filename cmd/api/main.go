package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"itexe-marketplace-api/internal/config"
	"itexe-marketplace-api/internal/genai"
	"itexe-marketplace-api/internal/handler"
	"itexe-marketplace-api/internal/repository"
	"itexe-marketplace-api/internal/router"
	"itexe-marketplace-api/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting IT.exe marketplace API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize state repository based on config. Any backend failure
	// degrades to the in-memory repository: the service always comes up,
	// worst case with seed data and no durability.
	stateRepo := newStateRepository(cfg)
	defer stateRepo.Close()

	ctx := context.Background()

	// Initialize services. Construction order matters: the catalog needs
	// the session to snapshot sellers, and every store reports through
	// the notification sink.
	notificationService := service.NewNotificationService(cfg.Notifications.TTL)
	userService := service.NewUserService(ctx, stateRepo, notificationService)
	productService := service.NewProductService(ctx, stateRepo, notificationService, userService)
	cartService := service.NewCartService(notificationService)

	genaiClient := genai.NewClient(genai.Config{
		APIKey:  cfg.GenAI.APIKey,
		Model:   cfg.GenAI.Model,
		Timeout: cfg.GenAI.Timeout,
	})
	if !genaiClient.Enabled() {
		log.Println("Warning: Gemini API key not set, description drafting disabled")
	}

	// Create router
	r := router.New(router.Config{
		Handler:             handler.New(cfg.App.Version),
		AuthHandler:         handler.NewAuthHandler(userService),
		ProductHandler:      handler.NewProductHandler(productService, userService),
		CartHandler:         handler.NewCartHandler(cartService, productService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		DescribeHandler:     handler.NewDescribeHandler(genaiClient),
		Session:             userService,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}

// newStateRepository selects the persistence backend from config, falling
// back to memory on any initialization failure.
func newStateRepository(cfg *config.Config) repository.StateRepository {
	switch cfg.State.Type {
	case "mysql":
		repo, err := repository.NewMySQLStateRepository(cfg.State.MySQLDSN())
		if err != nil {
			log.Printf("Warning: MySQL state backend failed, using memory: %v", err)
			return repository.NewMemoryStateRepository()
		}
		log.Println("MySQL state repository initialized")
		return repo
	case "redis":
		repo, err := repository.NewRedisStateRepository(repository.RedisStateConfig{
			Addr:     cfg.State.RedisAddress(),
			Password: cfg.State.RedisPassword,
			DB:       cfg.State.RedisDB,
			Prefix:   cfg.State.RedisPrefix,
		})
		if err != nil {
			log.Printf("Warning: Redis state backend failed, using memory: %v", err)
			return repository.NewMemoryStateRepository()
		}
		log.Println("Redis state repository initialized")
		return repo
	case "memory":
		log.Println("Memory state repository initialized (state will not survive restarts)")
		return repository.NewMemoryStateRepository()
	default: // sqlite
		repo, err := repository.NewSQLiteStateRepository(cfg.State.Path)
		if err != nil {
			log.Printf("Warning: SQLite state backend failed, using memory: %v", err)
			return repository.NewMemoryStateRepository()
		}
		log.Println("SQLite state repository initialized")
		return repo
	}
}
