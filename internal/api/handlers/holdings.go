package handlers

import (
	"net/http"

	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// HoldingHandler handles holding-related HTTP requests
type HoldingHandler struct {
	ledgerService *service.LedgerService
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(ledgerService *service.LedgerService) *HoldingHandler {
	return &HoldingHandler{
		ledgerService: ledgerService,
	}
}

// Holdings gets the current derived holding set
func (h *HoldingHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.ledgerService.GetAllHoldings()
	if err != nil {
		respondServiceError(w, "Failed to retrieve holdings", err)
		return
	}

	respondJSON(w, http.StatusOK, holdings)
}
