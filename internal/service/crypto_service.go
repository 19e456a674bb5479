package service

import (
	"strings"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// CryptoService handles crypto catalog business logic operations.
type CryptoService struct {
	cryptoRepo *repository.CryptoRepository
}

// NewCryptoService creates a new CryptoService with the provided repository dependency.
func NewCryptoService(cryptoRepo *repository.CryptoRepository) *CryptoService {
	return &CryptoService{cryptoRepo: cryptoRepo}
}

// GetAllCryptos retrieves the crypto catalog ordered by symbol.
func (s *CryptoService) GetAllCryptos() ([]model.Crypto, error) {
	return s.cryptoRepo.GetAll()
}

// GetCrypto retrieves a single crypto by symbol (case-insensitive).
func (s *CryptoService) GetCrypto(symbol string) (model.Crypto, error) {
	return s.cryptoRepo.GetBySymbol(normalizeSymbol(symbol))
}

// UpsertCrypto validates and upserts a catalog entry keyed on its symbol.
func (s *CryptoService) UpsertCrypto(req request.CreateCryptoRequest) (model.Crypto, error) {
	if err := validation.ValidateCreateCrypto(req); err != nil {
		return model.Crypto{}, err
	}

	c := model.Crypto{
		Symbol:      normalizeSymbol(req.Symbol),
		Name:        strings.TrimSpace(req.Name),
		CoingeckoID: strings.TrimSpace(req.CoingeckoID),
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.cryptoRepo.UpsertAll([]model.Crypto{c}); err != nil {
		return model.Crypto{}, err
	}

	return c, nil
}

// DeleteCrypto removes a catalog entry. Movements or holdings still
// referencing the symbol surface as ErrCryptoInUse.
func (s *CryptoService) DeleteCrypto(symbol string) error {
	err := s.cryptoRepo.Delete(normalizeSymbol(symbol))
	if apperrors.IsForeignKeyViolation(err) {
		return apperrors.ErrCryptoInUse
	}
	return err
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
