package service

import (
	"fmt"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// PortfolioService handles portfolio-related business logic operations.
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
	walletRepo    *repository.WalletRepository
	movementRepo  *repository.MovementRepository
	holdingRepo   *repository.HoldingRepository
}

// NewPortfolioService creates a new PortfolioService with the provided repository dependencies.
func NewPortfolioService(
	portfolioRepo *repository.PortfolioRepository,
	walletRepo *repository.WalletRepository,
	movementRepo *repository.MovementRepository,
	holdingRepo *repository.HoldingRepository,
) *PortfolioService {
	return &PortfolioService{
		portfolioRepo: portfolioRepo,
		walletRepo:    walletRepo,
		movementRepo:  movementRepo,
		holdingRepo:   holdingRepo,
	}
}

// GetAllPortfolios retrieves all portfolios, default first.
func (s *PortfolioService) GetAllPortfolios() ([]model.Portfolio, error) {
	return s.portfolioRepo.GetAll()
}

// GetPortfolio retrieves a single portfolio by ID.
func (s *PortfolioService) GetPortfolio(portfolioID string) (model.Portfolio, error) {
	return s.portfolioRepo.GetByID(portfolioID)
}

// CreatePortfolio validates and inserts a new portfolio. When the new
// portfolio is flagged default, the previous default loses the flag so at
// most one default exists.
func (s *PortfolioService) CreatePortfolio(req request.CreatePortfolioRequest) (model.Portfolio, error) {
	if err := validation.ValidateCreatePortfolio(req); err != nil {
		return model.Portfolio{}, err
	}

	p := model.Portfolio{
		Name:        req.Name,
		Description: req.Description,
		IsDefault:   req.IsDefault,
	}

	if p.IsDefault {
		if err := s.clearDefaultFlag(); err != nil {
			return model.Portfolio{}, err
		}
	}

	id, err := s.portfolioRepo.Insert(p)
	if err != nil {
		return model.Portfolio{}, err
	}
	p.ID = id

	return p, nil
}

// UpdatePortfolio applies the provided fields to an existing portfolio.
func (s *PortfolioService) UpdatePortfolio(portfolioID string, req request.UpdatePortfolioRequest) (model.Portfolio, error) {
	if err := validation.ValidateUpdatePortfolio(req); err != nil {
		return model.Portfolio{}, err
	}

	p, err := s.portfolioRepo.GetByID(portfolioID)
	if err != nil {
		return model.Portfolio{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !p.IsDefault {
			if err := s.clearDefaultFlag(); err != nil {
				return model.Portfolio{}, err
			}
		}
		p.IsDefault = *req.IsDefault
	}

	if err := s.portfolioRepo.Update(p); err != nil {
		return model.Portfolio{}, err
	}

	return p, nil
}

// DeletePortfolio removes a portfolio. Its wallets cascade; movements or
// holdings still referencing it surface as ErrPortfolioInUse.
func (s *PortfolioService) DeletePortfolio(portfolioID string) error {
	err := s.portfolioRepo.Delete(portfolioID)
	if apperrors.IsForeignKeyViolation(err) {
		return apperrors.ErrPortfolioInUse
	}
	return err
}

// GetPortfolioSummary aggregates a portfolio's wallet count, movement count
// and per-asset quantities across all of its wallets.
func (s *PortfolioService) GetPortfolioSummary(portfolioID string) (model.PortfolioSummary, error) {
	p, err := s.portfolioRepo.GetByID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	wallets, err := s.walletRepo.GetByPortfolioID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, fmt.Errorf("failed to load wallets: %w", err)
	}

	movementCount, err := s.movementRepo.CountByPortfolioID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, err
	}

	holdings, err := s.holdingRepo.GetByPortfolioID(portfolioID)
	if err != nil {
		return model.PortfolioSummary{}, fmt.Errorf("failed to load holdings: %w", err)
	}

	// Aggregate wallet-level holdings per asset. Holdings come back ordered
	// by wallet then asset, so collect first and sort by asset afterwards.
	totals := make(map[string]int)
	assets := []model.AssetBalance{}
	for _, h := range holdings {
		if idx, ok := totals[h.AssetID]; ok {
			assets[idx].Quantity = assets[idx].Quantity.Add(h.Quantity)
			continue
		}
		totals[h.AssetID] = len(assets)
		assets = append(assets, model.AssetBalance{AssetID: h.AssetID, Quantity: h.Quantity})
	}

	return model.PortfolioSummary{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		IsDefault:     p.IsDefault,
		WalletCount:   len(wallets),
		MovementCount: movementCount,
		Assets:        assets,
	}, nil
}

// clearDefaultFlag removes the default flag from the current default
// portfolio, if any.
func (s *PortfolioService) clearDefaultFlag() error {
	current, err := s.portfolioRepo.GetDefault()
	if err != nil {
		if err == apperrors.ErrDefaultPortfolioNotFound {
			return nil
		}
		return err
	}

	current.IsDefault = false
	return s.portfolioRepo.Update(current)
}
