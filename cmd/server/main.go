package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coletaops/coleta/api/internal/config"
	"github.com/coletaops/coleta/api/internal/database"
	"github.com/coletaops/coleta/api/internal/handler"
	"github.com/coletaops/coleta/api/internal/middleware"
	"github.com/coletaops/coleta/api/internal/repository"
	"github.com/coletaops/coleta/api/internal/service"
	"github.com/coletaops/coleta/api/pkg/token"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database.DSN())
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	// Run schema migrations
	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize token service
	tokenService, err := token.NewService(token.Config{
		Secret:       cfg.Auth.Secret,
		ValidityMins: cfg.Auth.TokenTTLMins,
	})
	if err != nil {
		slog.Error("failed to initialize token service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo: userRepo,
		Tokens:   tokenService,
	})
	clientService := service.NewClientService(service.ClientServiceConfig{
		ClientRepo: clientRepo,
	})
	collectionService := service.NewCollectionService(service.CollectionServiceConfig{
		CollectionRepo: collectionRepo,
		ClientRepo:     clientRepo,
	})

	// Initialize handlers
	userHandler := handler.NewUserHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	collectionHandler := handler.NewCollectionHandler(collectionService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	authMiddleware := middleware.Auth(tokenService)
	userHandler.RegisterRoutes(mux, authMiddleware)
	clientHandler.RegisterRoutes(mux, authMiddleware)
	collectionHandler.RegisterRoutes(mux, authMiddleware)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
