package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// CatalogHandler handles crypto and fiat catalog HTTP requests
type CatalogHandler struct {
	cryptoService *service.CryptoService
	fiatService   *service.FiatService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cryptoService *service.CryptoService, fiatService *service.FiatService) *CatalogHandler {
	return &CatalogHandler{
		cryptoService: cryptoService,
		fiatService:   fiatService,
	}
}

// Cryptos gets the crypto catalog
func (h *CatalogHandler) Cryptos(w http.ResponseWriter, r *http.Request) {
	cryptos, err := h.cryptoService.GetAllCryptos()
	if err != nil {
		respondServiceError(w, "Failed to retrieve cryptos", err)
		return
	}

	respondJSON(w, http.StatusOK, cryptos)
}

// Crypto gets a single crypto by symbol
func (h *CatalogHandler) Crypto(w http.ResponseWriter, r *http.Request) {
	crypto, err := h.cryptoService.GetCrypto(chi.URLParam(r, "symbol"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve crypto", err)
		return
	}

	respondJSON(w, http.StatusOK, crypto)
}

// UpsertCrypto adds or replaces a crypto catalog entry
func (h *CatalogHandler) UpsertCrypto(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCryptoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	crypto, err := h.cryptoService.UpsertCrypto(req)
	if err != nil {
		respondServiceError(w, "Failed to upsert crypto", err)
		return
	}

	respondJSON(w, http.StatusCreated, crypto)
}

// DeleteCrypto removes a crypto catalog entry
func (h *CatalogHandler) DeleteCrypto(w http.ResponseWriter, r *http.Request) {
	if err := h.cryptoService.DeleteCrypto(chi.URLParam(r, "symbol")); err != nil {
		respondServiceError(w, "Failed to delete crypto", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Fiats gets the fiat catalog
func (h *CatalogHandler) Fiats(w http.ResponseWriter, r *http.Request) {
	fiats, err := h.fiatService.GetAllFiats()
	if err != nil {
		respondServiceError(w, "Failed to retrieve fiat currencies", err)
		return
	}

	respondJSON(w, http.StatusOK, fiats)
}

// Fiat gets a single fiat currency by code
func (h *CatalogHandler) Fiat(w http.ResponseWriter, r *http.Request) {
	fiat, err := h.fiatService.GetFiat(chi.URLParam(r, "code"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve fiat currency", err)
		return
	}

	respondJSON(w, http.StatusOK, fiat)
}

// UpsertFiat adds or replaces a fiat catalog entry
func (h *CatalogHandler) UpsertFiat(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFiatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	fiat, err := h.fiatService.UpsertFiat(req)
	if err != nil {
		respondServiceError(w, "Failed to upsert fiat currency", err)
		return
	}

	respondJSON(w, http.StatusCreated, fiat)
}

// DeleteFiat removes a fiat catalog entry
func (h *CatalogHandler) DeleteFiat(w http.ResponseWriter, r *http.Request) {
	if err := h.fiatService.DeleteFiat(chi.URLParam(r, "code")); err != nil {
		respondServiceError(w, "Failed to delete fiat currency", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
