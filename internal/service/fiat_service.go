package service

import (
	"strings"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// FiatService handles fiat catalog business logic operations.
type FiatService struct {
	fiatRepo *repository.FiatRepository
}

// NewFiatService creates a new FiatService with the provided repository dependency.
func NewFiatService(fiatRepo *repository.FiatRepository) *FiatService {
	return &FiatService{fiatRepo: fiatRepo}
}

// GetAllFiats retrieves the fiat catalog ordered by code.
func (s *FiatService) GetAllFiats() ([]model.Fiat, error) {
	return s.fiatRepo.GetAll()
}

// GetFiat retrieves a single fiat currency by code (case-insensitive).
func (s *FiatService) GetFiat(code string) (model.Fiat, error) {
	return s.fiatRepo.GetByCode(normalizeSymbol(code))
}

// UpsertFiat validates and upserts a catalog entry keyed on its code.
func (s *FiatService) UpsertFiat(req request.CreateFiatRequest) (model.Fiat, error) {
	if err := validation.ValidateCreateFiat(req); err != nil {
		return model.Fiat{}, err
	}

	f := model.Fiat{
		Code:   normalizeSymbol(req.Code),
		Name:   strings.TrimSpace(req.Name),
		Symbol: strings.TrimSpace(req.Symbol),
	}

	if err := s.fiatRepo.UpsertAll([]model.Fiat{f}); err != nil {
		return model.Fiat{}, err
	}

	return f, nil
}

// DeleteFiat removes a catalog entry. Fiat rows have no dependents.
func (s *FiatService) DeleteFiat(code string) error {
	return s.fiatRepo.Delete(normalizeSymbol(code))
}
