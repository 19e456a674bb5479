package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api"
	"github.com/dkuiper/crypto-portfolio-backend/internal/config"
	"github.com/dkuiper/crypto-portfolio-backend/internal/database"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	cryptoRepo := repository.NewCryptoRepository(db)
	fiatRepo := repository.NewFiatRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	// Create services
	services := api.Services{
		System:    service.NewSystemService(db),
		Portfolio: service.NewPortfolioService(portfolioRepo, walletRepo, movementRepo, holdingRepo),
		Wallet:    service.NewWalletService(walletRepo, portfolioRepo),
		Crypto:    service.NewCryptoService(cryptoRepo),
		Fiat:      service.NewFiatService(fiatRepo),
		Movement:  service.NewMovementService(movementRepo, walletRepo, cryptoRepo),
		Ledger:    service.NewLedgerService(db, movementRepo, holdingRepo),
		Seeder:    service.NewCatalogSeeder(portfolioRepo, walletRepo, cryptoRepo, fiatRepo),
		Wiper:     service.NewDataWiper(db, portfolioRepo, walletRepo, cryptoRepo, fiatRepo, movementRepo, holdingRepo),
	}

	// Optional scheduled holdings rebuild
	if cfg.Reconcile.Schedule != "" {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(cfg.Reconcile.Schedule, func() {
			count, err := services.Ledger.Rebuild(context.Background())
			if err != nil {
				log.Printf("Scheduled holdings rebuild failed: %v", err)
				return
			}
			log.Printf("Scheduled holdings rebuild wrote %d holdings", count)
		})
		if err != nil {
			log.Fatalf("Invalid reconcile schedule %q: %v", cfg.Reconcile.Schedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(services, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
