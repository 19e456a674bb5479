package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkuiper/crypto-portfolio-backend/internal/database"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
)

// LedgerService derives holdings from the movement history. Each movement
// applies a signed quantity delta to its (portfolio, wallet, asset) balance:
// inflows (BUY, DEPOSIT, TRANSFER_IN, ADJUSTMENT) add, outflows (SELL,
// WITHDRAW, TRANSFER_OUT, FEE) subtract, and the fee quantity always
// subtracts on top of the movement itself.
type LedgerService struct {
	db           *sql.DB
	movementRepo *repository.MovementRepository
	holdingRepo  *repository.HoldingRepository
}

// NewLedgerService creates a new LedgerService with the provided database
// connection and repository dependencies.
func NewLedgerService(
	db *sql.DB,
	movementRepo *repository.MovementRepository,
	holdingRepo *repository.HoldingRepository,
) *LedgerService {
	return &LedgerService{
		db:           db,
		movementRepo: movementRepo,
		holdingRepo:  holdingRepo,
	}
}

type holdingKey struct {
	portfolioID string
	walletID    string
	assetID     string
}

// Rebuild recomputes every holding from the full movement history and swaps
// the holding table contents in one transaction. Returns the number of
// holdings written. Zero-quantity balances are kept so wallets that were
// fully emptied still show the asset with a zero balance.
func (s *LedgerService) Rebuild(ctx context.Context) (int, error) {
	movements, err := s.movementRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load movements: %w", err)
	}

	balances := make(map[holdingKey]decimal.Decimal)
	for _, m := range movements {
		key := holdingKey{m.PortfolioID, m.WalletID, m.AssetID}

		delta := m.Quantity
		if !m.Type.IsInflow() {
			delta = delta.Neg()
		}
		delta = delta.Sub(m.FeeQuantity)

		balances[key] = balances[key].Add(delta)
	}

	now := time.Now().UTC()
	holdings := make([]model.Holding, 0, len(balances))
	for key, quantity := range balances {
		holdings = append(holdings, model.Holding{
			PortfolioID: key.portfolioID,
			WalletID:    key.walletID,
			AssetID:     key.assetID,
			Quantity:    quantity,
			UpdatedAt:   now,
		})
	}

	// Deterministic write order keeps reruns comparable in logs and tests.
	sort.Slice(holdings, func(i, j int) bool {
		if holdings[i].WalletID != holdings[j].WalletID {
			return holdings[i].WalletID < holdings[j].WalletID
		}
		return holdings[i].AssetID < holdings[j].AssetID
	})

	err = database.WithTx(s.db, func(tx *sql.Tx) error {
		return s.holdingRepo.ReplaceAll(tx, holdings)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild holdings: %w", err)
	}

	return len(holdings), nil
}

// GetAllHoldings retrieves the current holding set.
func (s *LedgerService) GetAllHoldings() ([]model.Holding, error) {
	return s.holdingRepo.GetAll()
}
