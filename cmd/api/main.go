package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/safar/freight-quotes/internal/api/handlers"
	"github.com/safar/freight-quotes/internal/api/routes"
	"github.com/safar/freight-quotes/internal/auth"
	"github.com/safar/freight-quotes/internal/blob"
	"github.com/safar/freight-quotes/internal/cache"
	"github.com/safar/freight-quotes/internal/config"
	"github.com/safar/freight-quotes/internal/database"
	"github.com/safar/freight-quotes/internal/store"
	"github.com/safar/freight-quotes/internal/usecase"
	"github.com/safar/freight-quotes/internal/usecase/interfaces"
	"github.com/safar/freight-quotes/migrations"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("api exited", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run owns every resource it opens, so its defers have run by the time main
// decides the exit code.
func run(logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()
	logger.Info("connected to database")

	repo := store.NewRepository(db)

	var profiles interfaces.IProfileRepository = repo
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		profiles = cache.NewCompanyCache(rdb, repo, cfg.Redis.CompanyTTL, logger)
		logger.Info("company cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	blobs, err := blob.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init object storage: %w", err)
	}

	quoteUseCase := usecase.NewQuoteUseCase(repo, profiles, logger)
	editUseCase := usecase.NewEditUseCase(repo, repo, repo, profiles, logger)
	documentUseCase := usecase.NewDocumentUseCase(repo, repo, blobs, profiles, cfg.Storage.MaxUploadBytes, logger)

	router := routes.New(cfg, routes.Handlers{
		Quotes:    handlers.NewQuoteHandler(quoteUseCase),
		Edits:     handlers.NewEditHandler(editUseCase),
		Documents: handlers.NewDocumentHandler(documentUseCase),
		Health:    handlers.NewHealthHandler(repo, logger),
	}, auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	return serve(server, sigCh, cfg.Server.ShutdownTimeout, logger)
}
