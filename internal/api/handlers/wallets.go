package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletService *service.WalletService
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// Wallets gets all wallets; filter by portfolio with ?portfolioId=.
func (h *WalletHandler) Wallets(w http.ResponseWriter, r *http.Request) {
	portfolioID := r.URL.Query().Get("portfolioId")

	var (
		wallets interface{}
		err     error
	)
	if portfolioID != "" {
		wallets, err = h.walletService.GetWalletsByPortfolio(portfolioID)
	} else {
		wallets, err = h.walletService.GetAllWallets()
	}
	if err != nil {
		respondServiceError(w, "Failed to retrieve wallets", err)
		return
	}

	respondJSON(w, http.StatusOK, wallets)
}

// Wallet gets a single wallet by ID
func (h *WalletHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.walletService.GetWallet(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve wallet", err)
		return
	}

	respondJSON(w, http.StatusOK, wallet)
}

// CreateWallet creates a new wallet
func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	wallet, err := h.walletService.CreateWallet(req)
	if err != nil {
		respondServiceError(w, "Failed to create wallet", err)
		return
	}

	respondJSON(w, http.StatusCreated, wallet)
}

// UpdateWallet updates an existing wallet
func (h *WalletHandler) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	wallet, err := h.walletService.UpdateWallet(chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "Failed to update wallet", err)
		return
	}

	respondJSON(w, http.StatusOK, wallet)
}

// DeleteWallet deletes a wallet
func (h *WalletHandler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	if err := h.walletService.DeleteWallet(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete wallet", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
