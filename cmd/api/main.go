package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcart/internal/api"
	"smartcart/internal/core/catalog"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/favorites"
	"smartcart/internal/core/optimizer"
	"smartcart/internal/core/pantry"
	"smartcart/internal/core/shoppinglist"
	"smartcart/internal/core/suggest"
	"smartcart/internal/infrastructure/config"
	"smartcart/internal/infrastructure/storage"
	"smartcart/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("starting application",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.Bool("debug", cfg.App.Debug),
	)

	db, err := storage.NewDB(cfg.Database.Path)
	if err != nil {
		common.LogFatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	dealRepo, err := deals.NewRepository(&cfg.Redis)
	if err != nil {
		common.LogFatal("Failed to connect to deal index", zap.Error(err))
	}
	defer dealRepo.Close()

	cat := catalog.New()
	pantrySvc := pantry.NewService(pantry.NewRepository(db.SQL))
	dealSvc := deals.NewService(dealRepo)
	listSvc := shoppinglist.NewService(shoppinglist.NewRepository(db.SQL))
	favoriteSvc := favorites.NewService(favorites.NewRepository(db.SQL))
	suggestSvc := suggest.NewService(cat, pantrySvc, dealSvc)
	optimizerSvc := optimizer.NewService(cat, pantrySvc, dealSvc, &cfg.Deals)

	importCtx, stopImport := context.WithCancel(context.Background())
	defer stopImport()
	go deals.NewImporter(dealSvc, &cfg.Deals).Run(importCtx)

	router := api.SetupRouter(cfg, &api.Services{
		Optimizer: optimizerSvc,
		Pantry:    pantrySvc,
		Deals:     dealSvc,
		DealRepo:  dealRepo,
		Lists:     listSvc,
		Favorites: favoriteSvc,
		Suggest:   suggestSvc,
		DB:        db,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")
	stopImport()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
