package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// MovementService handles movement-related business logic operations.
type MovementService struct {
	movementRepo *repository.MovementRepository
	walletRepo   *repository.WalletRepository
	cryptoRepo   *repository.CryptoRepository
}

// NewMovementService creates a new MovementService with the provided repository dependencies.
func NewMovementService(
	movementRepo *repository.MovementRepository,
	walletRepo *repository.WalletRepository,
	cryptoRepo *repository.CryptoRepository,
) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		walletRepo:   walletRepo,
		cryptoRepo:   cryptoRepo,
	}
}

// GetAllMovements retrieves every movement in ledger order.
func (s *MovementService) GetAllMovements() ([]model.Movement, error) {
	return s.movementRepo.GetAll()
}

// GetMovementsByWallet retrieves a single wallet's movements in ledger order.
func (s *MovementService) GetMovementsByWallet(walletID string) ([]model.Movement, error) {
	return s.movementRepo.GetByWalletID(walletID)
}

// GetMovement retrieves a single movement by ID.
func (s *MovementService) GetMovement(movementID string) (model.Movement, error) {
	return s.movementRepo.GetByID(movementID)
}

// CreateMovement validates and records a ledger event. The wallet and asset
// are resolved first so missing references come back as not-found errors
// rather than raw foreign key violations.
func (s *MovementService) CreateMovement(ctx context.Context, req request.CreateMovementRequest) (model.Movement, error) {
	if err := validation.ValidateCreateMovement(req); err != nil {
		return model.Movement{}, err
	}

	wallet, err := s.walletRepo.GetByID(req.WalletID)
	if err != nil {
		return model.Movement{}, err
	}

	asset, err := s.cryptoRepo.GetBySymbol(normalizeSymbol(req.AssetID))
	if err != nil {
		return model.Movement{}, err
	}

	// Validation guarantees these parse.
	quantity, _ := decimal.NewFromString(req.Quantity)
	fee := decimal.Zero
	if req.FeeQuantity != "" {
		fee, _ = decimal.NewFromString(req.FeeQuantity)
	}
	timestamp, _ := time.Parse(time.RFC3339, req.Timestamp)

	m := model.Movement{
		PortfolioID: req.PortfolioID,
		WalletID:    wallet.ID,
		AssetID:     asset.Symbol,
		Type:        model.MovementType(req.Type),
		Quantity:    quantity,
		FeeQuantity: fee,
		Timestamp:   timestamp.UTC(),
		Notes:       req.Notes,
		GroupID:     req.GroupID,
	}

	if req.Price != "" {
		price, _ := decimal.NewFromString(req.Price)
		m.Price = &price
	}

	id, err := s.movementRepo.Insert(m)
	if err != nil {
		return model.Movement{}, err
	}
	m.ID = id

	return m, nil
}

// DeleteMovement removes a single movement by ID.
func (s *MovementService) DeleteMovement(movementID string) error {
	return s.movementRepo.Delete(movementID)
}
