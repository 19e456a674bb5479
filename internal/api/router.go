package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/handlers"
	custommiddleware "github.com/dkuiper/crypto-portfolio-backend/internal/api/middleware"
	"github.com/dkuiper/crypto-portfolio-backend/internal/config"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	System    *service.SystemService
	Portfolio *service.PortfolioService
	Wallet    *service.WalletService
	Crypto    *service.CryptoService
	Fiat      *service.FiatService
	Movement  *service.MovementService
	Ledger    *service.LedgerService
	Seeder    *service.CatalogSeeder
	Wiper     *service.DataWiper
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
			r.Get("/", portfolioHandler.Portfolios)
			r.Post("/", portfolioHandler.CreatePortfolio)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", portfolioHandler.Portfolio)
				r.Put("/", portfolioHandler.UpdatePortfolio)
				r.Delete("/", portfolioHandler.DeletePortfolio)
				r.Get("/summary", portfolioHandler.PortfolioSummary)
			})
		})

		r.Route("/wallet", func(r chi.Router) {
			walletHandler := handlers.NewWalletHandler(svc.Wallet)
			r.Get("/", walletHandler.Wallets)
			r.Post("/", walletHandler.CreateWallet)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", walletHandler.Wallet)
				r.Put("/", walletHandler.UpdateWallet)
				r.Delete("/", walletHandler.DeleteWallet)
			})
		})

		r.Route("/catalog", func(r chi.Router) {
			catalogHandler := handlers.NewCatalogHandler(svc.Crypto, svc.Fiat)
			r.Route("/crypto", func(r chi.Router) {
				r.Get("/", catalogHandler.Cryptos)
				r.Post("/", catalogHandler.UpsertCrypto)
				r.Get("/{symbol}", catalogHandler.Crypto)
				r.Delete("/{symbol}", catalogHandler.DeleteCrypto)
			})
			r.Route("/fiat", func(r chi.Router) {
				r.Get("/", catalogHandler.Fiats)
				r.Post("/", catalogHandler.UpsertFiat)
				r.Get("/{code}", catalogHandler.Fiat)
				r.Delete("/{code}", catalogHandler.DeleteFiat)
			})
		})

		r.Route("/movement", func(r chi.Router) {
			movementHandler := handlers.NewMovementHandler(svc.Movement)
			r.Get("/", movementHandler.Movements)
			r.Post("/", movementHandler.CreateMovement)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", movementHandler.Movement)
				r.Delete("/", movementHandler.DeleteMovement)
			})
		})

		r.Route("/holding", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Ledger)
			r.Get("/", holdingHandler.Holdings)
		})

		r.Route("/admin", func(r chi.Router) {
			adminHandler := handlers.NewAdminHandler(svc.Seeder, svc.Wiper, svc.Ledger)
			r.Get("/status", adminHandler.Status)
			r.Post("/seed", adminHandler.Seed)
			r.Post("/wipe", adminHandler.Wipe)
			r.Post("/reconcile", adminHandler.Reconcile)
		})
	})

	return r
}
