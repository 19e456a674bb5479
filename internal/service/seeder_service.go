package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
)

// CatalogSeeder bootstraps default reference data: a default portfolio and
// its wallets, the crypto catalog, and the fiat catalog. Catalog seeding is
// idempotent (upsert by natural key), so callers never need to pre-check
// emptiness before asking for a category.
//
// Seed is not wrapped in a cross-category transaction: if a later category
// fails, earlier categories stay committed.
type CatalogSeeder struct {
	portfolioRepo *repository.PortfolioRepository
	walletRepo    *repository.WalletRepository
	cryptoRepo    *repository.CryptoRepository
	fiatRepo      *repository.FiatRepository
}

// NewCatalogSeeder creates a new CatalogSeeder with the provided repository dependencies.
func NewCatalogSeeder(
	portfolioRepo *repository.PortfolioRepository,
	walletRepo *repository.WalletRepository,
	cryptoRepo *repository.CryptoRepository,
	fiatRepo *repository.FiatRepository,
) *CatalogSeeder {
	return &CatalogSeeder{
		portfolioRepo: portfolioRepo,
		walletRepo:    walletRepo,
		cryptoRepo:    cryptoRepo,
		fiatRepo:      fiatRepo,
	}
}

// Status returns current row counts per category without side effects.
// The four counts are independent reads, so they run concurrently.
func (s *CatalogSeeder) Status(ctx context.Context) (model.CatalogStatus, error) {
	var status model.CatalogStatus

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		status.Portfolios, err = s.portfolioRepo.CountAll()
		return err
	})
	g.Go(func() error {
		var err error
		status.Wallets, err = s.walletRepo.CountAll()
		return err
	})
	g.Go(func() error {
		var err error
		status.Cryptos, err = s.cryptoRepo.CountAll()
		return err
	})
	g.Go(func() error {
		var err error
		status.Fiat, err = s.fiatRepo.CountAll()
		return err
	})

	if err := g.Wait(); err != nil {
		return model.CatalogStatus{}, fmt.Errorf("failed to read catalog status: %w", err)
	}

	return status, nil
}

// Seed populates the categories selected in req. Selecting nothing is a
// no-op returning zero counts and a nil portfolio ID.
func (s *CatalogSeeder) Seed(ctx context.Context, req model.SeedRequest) (model.SeedResult, error) {
	var result model.SeedResult

	if req.Wallets {
		portfolioID, err := s.ensureDefaultPortfolio()
		if err != nil {
			return result, err
		}
		result.CreatedPortfolioID = &portfolioID

		wallets := DefaultWallets(portfolioID)
		if err := s.walletRepo.UpsertAll(wallets); err != nil {
			return result, fmt.Errorf("failed to seed wallets: %w", err)
		}
		// Reported as the size of the fixed set whether rows were
		// inserted or replaced.
		result.WalletsInserted = len(wallets)
	}

	if req.Cryptos {
		cryptos := DefaultCryptos()
		if err := s.cryptoRepo.UpsertAll(cryptos); err != nil {
			return result, fmt.Errorf("failed to seed cryptos: %w", err)
		}
		result.CryptosUpserted = len(cryptos)
	}

	if req.Fiat {
		fiats := DefaultFiats()
		if err := s.fiatRepo.UpsertAll(fiats); err != nil {
			return result, fmt.Errorf("failed to seed fiat currencies: %w", err)
		}
		result.FiatUpserted = len(fiats)
	}

	if req.SyncManual {
		// No store mutation; placeholder for config propagation.
		result.SyncApplied = true
	}

	return result, nil
}

// ensureDefaultPortfolio reuses the existing default portfolio when present,
// otherwise inserts a fresh one flagged default.
func (s *CatalogSeeder) ensureDefaultPortfolio() (string, error) {
	existing, err := s.portfolioRepo.GetDefault()
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperrors.ErrDefaultPortfolioNotFound) {
		return "", err
	}

	id, err := s.portfolioRepo.Insert(DefaultPortfolio())
	if err != nil {
		return "", fmt.Errorf("failed to create default portfolio: %w", err)
	}

	return id, nil
}
