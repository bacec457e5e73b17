package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/urbankicks/storefront/app/catalog"
	"github.com/urbankicks/storefront/app/filters"
	"github.com/urbankicks/storefront/app/server"
	"github.com/urbankicks/storefront/db"
	"github.com/urbankicks/storefront/models"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := server.NewLogger(cfg)

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		logger.Error("migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	productsRepo := models.NewProductsRepository(gdb)
	reviewsRepo := models.NewReviewsRepository(gdb)
	dimensionsRepo := models.NewDimensionsRepository(gdb)

	router := server.NewRouter(server.RouterParams{
		Config:  cfg,
		Catalog: catalog.NewCatalogHandler(productsRepo, reviewsRepo),
		Filters: filters.NewFiltersHandler(dimensionsRepo),
	})

	srv := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
