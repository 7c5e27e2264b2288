package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"card-trading/internal/catalog"
	"card-trading/internal/config"
	"card-trading/internal/database"
	"card-trading/internal/handler"
	"card-trading/internal/logger"
	"card-trading/internal/notify"
	"card-trading/internal/repository"
	"card-trading/internal/repository/memory"
	"card-trading/internal/repository/postgres"
	"card-trading/internal/service"
	"card-trading/internal/worker"

	"github.com/rs/zerolog"

	_ "card-trading/docs"
)

// @title Card Trading API
// @version 1.0
// @description Trade requests, trade rooms and card settlement between collectors
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true, "info")
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	// Setup logger
	log := logger.New(cfg.Server.PrettyLogs, cfg.Server.LogLevel)

	// Stores for the selected driver
	storeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repos, notificationRepo, closeStore, err := openStore(storeCtx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	defer closeStore()

	// Catalog lookups go through an LRU
	cards, err := catalog.NewCachedRepository(repos.Cards, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create catalog cache")
	}
	repos.Cards = cards

	// Notifications: stored, then pushed over websockets
	hub := notify.NewHub(cfg.Notify, log)
	emitter := notify.NewEmitter(notificationRepo, hub, log)

	// Services
	inventory := service.NewInventoryService(repos.UserCards, log)
	requestService := service.NewTradeRequestService(repos, inventory, emitter, cfg.Trade, log)
	tradeService := service.NewTradeService(repos, inventory, emitter, cfg.Trade, log)
	notificationService := service.NewNotificationService(notificationRepo)
	reconcileService := service.NewReconciliationService(repos, emitter, cfg.Worker, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker repairing half-promoted trade requests
	reconciliationWorker := worker.NewReconciliationWorker(reconcileService, cfg.Worker.ReconcileInterval, log)
	reconciliationWorker.Start(ctx)
	defer reconciliationWorker.Stop()

	// http handler
	h := handler.NewHandler(requestService, tradeService, notificationService, hub, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Str("driver", cfg.Store.Driver).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}

// openStore builds the repositories for cfg.Store.Driver
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (service.Repositories, repository.NotificationRepository, func(), error) {
	switch cfg.Store.Driver {
	case "memory":
		store := memory.New()
		if cfg.Store.SeedDemo {
			store.SeedDemo()
			log.Info().Msg("demo data seeded")
		}
		log.Warn().Msg("memory store in use: data is lost on restart and transactions do not roll back")
		return service.Repositories{
			DB:            store,
			Users:         store.Users,
			Cards:         store.Cards,
			UserCards:     store.UserCards,
			TradeRequests: store.TradeRequests,
			Trades:        store.Trades,
			Invitations:   store.RoomInvitations,
		}, store.Notifications, func() {}, nil

	case "postgres":
		dbPool, err := database.NewPool(ctx, cfg.Database)
		if err != nil {
			return service.Repositories{}, nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if cfg.Database.MigrationsDir != "" {
			if err := database.Migrate(ctx, dbPool, cfg.Database.MigrationsDir); err != nil {
				dbPool.Close()
				return service.Repositories{}, nil, nil, fmt.Errorf("migrate: %w", err)
			}
			log.Info().Str("dir", cfg.Database.MigrationsDir).Msg("migrations applied")
		}
		return service.Repositories{
			DB:            postgres.NewTransactionManager(dbPool),
			Users:         postgres.NewUserRepository(dbPool),
			Cards:         postgres.NewCardRepository(dbPool),
			UserCards:     postgres.NewUserCardRepository(dbPool),
			TradeRequests: postgres.NewTradeRequestRepository(dbPool),
			Trades:        postgres.NewTradeRepository(dbPool),
			Invitations:   postgres.NewRoomInvitationRepository(dbPool),
		}, postgres.NewNotificationRepository(dbPool), dbPool.Close, nil

	default:
		return service.Repositories{}, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
