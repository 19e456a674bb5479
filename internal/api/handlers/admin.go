package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// AdminHandler handles data lifecycle HTTP requests: catalog status,
// seeding default reference data, wiping data sets, and rebuilding the
// holdings ledger.
type AdminHandler struct {
	seeder *service.CatalogSeeder
	wiper  *service.DataWiper
	ledger *service.LedgerService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(seeder *service.CatalogSeeder, wiper *service.DataWiper, ledger *service.LedgerService) *AdminHandler {
	return &AdminHandler{
		seeder: seeder,
		wiper:  wiper,
		ledger: ledger,
	}
}

// Status reports current row counts per category
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.seeder.Status(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to read catalog status", err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// Seed populates the selected categories with default reference data
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req request.SeedDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result, err := h.seeder.Seed(r.Context(), model.SeedRequest{
		Wallets:    req.Wallets,
		Cryptos:    req.Cryptos,
		Fiat:       req.Fiat,
		SyncManual: req.SyncManual,
	})
	if err != nil {
		respondServiceError(w, "Failed to seed data", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Wipe deletes the selected categories in dependency-safe order.
// Foreign key conflicts (dependents still present) come back as 409; the
// caller is expected to re-request including the dependents.
func (h *AdminHandler) Wipe(w http.ResponseWriter, r *http.Request) {
	var req request.WipeDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	result, err := h.wiper.Wipe(r.Context(), model.WipeRequest{
		All:       req.All,
		Wallets:   req.Wallets,
		Cryptos:   req.Cryptos,
		Fiat:      req.Fiat,
		Movements: req.Movements,
		Holdings:  req.Holdings,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		respondServiceError(w, "Failed to wipe data", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ReconcileResponse reports the outcome of a holdings rebuild
type ReconcileResponse struct {
	HoldingsRebuilt int `json:"holdingsRebuilt"`
}

// Reconcile rebuilds all holdings from the movement history
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	count, err := h.ledger.Rebuild(r.Context())
	if err != nil {
		respondServiceError(w, "Failed to rebuild holdings", err)
		return
	}

	respondJSON(w, http.StatusOK, ReconcileResponse{HoldingsRebuilt: count})
}
