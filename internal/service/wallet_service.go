package service

import (
	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// WalletService handles wallet-related business logic operations.
type WalletService struct {
	walletRepo    *repository.WalletRepository
	portfolioRepo *repository.PortfolioRepository
}

// NewWalletService creates a new WalletService with the provided repository dependencies.
func NewWalletService(
	walletRepo *repository.WalletRepository,
	portfolioRepo *repository.PortfolioRepository,
) *WalletService {
	return &WalletService{
		walletRepo:    walletRepo,
		portfolioRepo: portfolioRepo,
	}
}

// GetAllWallets retrieves all wallets, main wallets first.
func (s *WalletService) GetAllWallets() ([]model.Wallet, error) {
	return s.walletRepo.GetAll()
}

// GetWalletsByPortfolio retrieves all wallets belonging to a portfolio.
func (s *WalletService) GetWalletsByPortfolio(portfolioID string) ([]model.Wallet, error) {
	return s.walletRepo.GetByPortfolioID(portfolioID)
}

// GetWallet retrieves a single wallet by ID.
func (s *WalletService) GetWallet(walletID string) (model.Wallet, error) {
	return s.walletRepo.GetByID(walletID)
}

// CreateWallet validates and inserts a new wallet under an existing
// portfolio. When the new wallet is flagged main, the portfolio's previous
// main wallet loses the flag so at most one main wallet exists per portfolio.
func (s *WalletService) CreateWallet(req request.CreateWalletRequest) (model.Wallet, error) {
	if err := validation.ValidateCreateWallet(req); err != nil {
		return model.Wallet{}, err
	}

	// Resolve the portfolio first for a clean not-found instead of a
	// foreign key violation from the insert.
	if _, err := s.portfolioRepo.GetByID(req.PortfolioID); err != nil {
		return model.Wallet{}, err
	}

	w := model.Wallet{
		PortfolioID: req.PortfolioID,
		Name:        req.Name,
		Description: req.Description,
		IsMain:      req.IsMain,
	}

	if w.IsMain {
		if err := s.clearMainFlag(req.PortfolioID); err != nil {
			return model.Wallet{}, err
		}
	}

	id, err := s.walletRepo.Insert(w)
	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return model.Wallet{}, apperrors.ErrDuplicateEntry
		}
		return model.Wallet{}, err
	}
	w.ID = id

	return w, nil
}

// UpdateWallet applies the provided fields to an existing wallet.
func (s *WalletService) UpdateWallet(walletID string, req request.UpdateWalletRequest) (model.Wallet, error) {
	if err := validation.ValidateUpdateWallet(req); err != nil {
		return model.Wallet{}, err
	}

	w, err := s.walletRepo.GetByID(walletID)
	if err != nil {
		return model.Wallet{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.IsMain != nil {
		if *req.IsMain && !w.IsMain {
			if err := s.clearMainFlag(w.PortfolioID); err != nil {
				return model.Wallet{}, err
			}
		}
		w.IsMain = *req.IsMain
	}

	if err := s.walletRepo.Update(w); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return model.Wallet{}, apperrors.ErrDuplicateEntry
		}
		return model.Wallet{}, err
	}

	return w, nil
}

// DeleteWallet removes a wallet. Movements or holdings still referencing it
// surface as ErrWalletInUse.
func (s *WalletService) DeleteWallet(walletID string) error {
	err := s.walletRepo.Delete(walletID)
	if apperrors.IsForeignKeyViolation(err) {
		return apperrors.ErrWalletInUse
	}
	return err
}

// clearMainFlag removes the main flag from the portfolio's current main
// wallet, if any.
func (s *WalletService) clearMainFlag(portfolioID string) error {
	wallets, err := s.walletRepo.GetByPortfolioID(portfolioID)
	if err != nil {
		return err
	}

	for _, w := range wallets {
		if !w.IsMain {
			continue
		}
		w.IsMain = false
		if err := s.walletRepo.Update(w); err != nil {
			return err
		}
	}

	return nil
}
