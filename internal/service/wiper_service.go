package service

import (
	"context"
	"database/sql"
	"log"

	"github.com/dkuiper/crypto-portfolio-backend/internal/database"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
)

// DataWiper deletes data categories in dependency-safe order and reports
// pre-delete row counts per category.
//
// Counts are snapshotted before any delete runs, so the result reflects
// "how much was there to delete" even when a later statement fails. Category
// deletes are not wrapped in a shared transaction: a constraint violation
// leaves earlier categories deleted and the failing category untouched.
// That best-effort behavior is the contract; only the clear-all fast path
// is atomic.
type DataWiper struct {
	db            *sql.DB
	portfolioRepo *repository.PortfolioRepository
	walletRepo    *repository.WalletRepository
	cryptoRepo    *repository.CryptoRepository
	fiatRepo      *repository.FiatRepository
	movementRepo  *repository.MovementRepository
	holdingRepo   *repository.HoldingRepository
}

// NewDataWiper creates a new DataWiper with the provided database connection
// and repository dependencies.
func NewDataWiper(
	db *sql.DB,
	portfolioRepo *repository.PortfolioRepository,
	walletRepo *repository.WalletRepository,
	cryptoRepo *repository.CryptoRepository,
	fiatRepo *repository.FiatRepository,
	movementRepo *repository.MovementRepository,
	holdingRepo *repository.HoldingRepository,
) *DataWiper {
	return &DataWiper{
		db:            db,
		portfolioRepo: portfolioRepo,
		walletRepo:    walletRepo,
		cryptoRepo:    cryptoRepo,
		fiatRepo:      fiatRepo,
		movementRepo:  movementRepo,
		holdingRepo:   holdingRepo,
	}
}

// Wipe deletes the categories selected in req. All takes precedence over
// the individual flags and uses the atomic clear-all fast path.
//
// Constraint violations (deleting a crypto or wallet that movements or
// holdings still reference) are logged and propagated unmodified so callers
// can detect them with apperrors.IsForeignKeyViolation and offer to delete
// the dependents too.
func (w *DataWiper) Wipe(ctx context.Context, req model.WipeRequest) (model.WipeResult, error) {
	result := model.WipeResult{
		DeletedWallets:   req.All || req.Wallets,
		DeletedCryptos:   req.All || req.Cryptos,
		DeletedFiat:      req.All || req.Fiat,
		DeletedMovements: req.All || req.Movements,
		DeletedHoldings:  req.All || req.Holdings,
		DeletedPortfolio: req.All || req.Portfolio,
	}

	// Snapshot pre-delete counts for every selected category.
	if err := w.snapshotCounts(&result); err != nil {
		return result, err
	}

	if req.All {
		if err := database.ClearAllTables(w.db); err != nil {
			log.Printf("wipe: failed to clear all tables: %v", err)
			return result, err
		}
		result.DeletedAllTables = true
		return result, nil
	}

	// Children before parents: movements and holdings reference wallets
	// and cryptos, wallets reference the portfolio. The independent
	// catalogs go last.
	steps := []struct {
		selected bool
		name     string
		delete   func() error
	}{
		{result.DeletedMovements, "movements", w.movementRepo.DeleteAll},
		{result.DeletedHoldings, "holdings", w.holdingRepo.DeleteAll},
		{result.DeletedWallets, "wallets", w.walletRepo.DeleteAll},
		{result.DeletedPortfolio, "portfolios", w.portfolioRepo.DeleteAll},
		{result.DeletedCryptos, "cryptos", w.cryptoRepo.DeleteAll},
		{result.DeletedFiat, "fiat", w.fiatRepo.DeleteAll},
	}

	for _, step := range steps {
		if !step.selected {
			continue
		}
		if err := step.delete(); err != nil {
			log.Printf("wipe: failed to delete %s: %v", step.name, err)
			return result, err
		}
	}

	return result, nil
}

// snapshotCounts fills the per-category pre-delete counts for selected
// categories; unselected categories report zero.
func (w *DataWiper) snapshotCounts(result *model.WipeResult) error {
	var err error

	if result.DeletedMovements {
		if result.MovementsDeletedCount, err = w.movementRepo.CountAll(); err != nil {
			return err
		}
	}
	if result.DeletedHoldings {
		if result.HoldingsDeletedCount, err = w.holdingRepo.CountAll(); err != nil {
			return err
		}
	}
	if result.DeletedWallets {
		if result.WalletsDeletedCount, err = w.walletRepo.CountAll(); err != nil {
			return err
		}
	}
	if result.DeletedPortfolio {
		if result.PortfoliosDeletedCount, err = w.portfolioRepo.CountAll(); err != nil {
			return err
		}
	}
	if result.DeletedCryptos {
		if result.CryptosDeletedCount, err = w.cryptoRepo.CountAll(); err != nil {
			return err
		}
	}
	if result.DeletedFiat {
		if result.FiatDeletedCount, err = w.fiatRepo.CountAll(); err != nil {
			return err
		}
	}

	return nil
}
