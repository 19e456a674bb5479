package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// MovementHandler handles movement-related HTTP requests
type MovementHandler struct {
	movementService *service.MovementService
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *service.MovementService) *MovementHandler {
	return &MovementHandler{
		movementService: movementService,
	}
}

// Movements gets all movements; filter by wallet with ?walletId=.
func (h *MovementHandler) Movements(w http.ResponseWriter, r *http.Request) {
	walletID := r.URL.Query().Get("walletId")

	var (
		movements interface{}
		err       error
	)
	if walletID != "" {
		movements, err = h.movementService.GetMovementsByWallet(walletID)
	} else {
		movements, err = h.movementService.GetAllMovements()
	}
	if err != nil {
		respondServiceError(w, "Failed to retrieve movements", err)
		return
	}

	respondJSON(w, http.StatusOK, movements)
}

// Movement gets a single movement by ID
func (h *MovementHandler) Movement(w http.ResponseWriter, r *http.Request) {
	movement, err := h.movementService.GetMovement(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve movement", err)
		return
	}

	respondJSON(w, http.StatusOK, movement)
}

// CreateMovement records a new ledger event
func (h *MovementHandler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	movement, err := h.movementService.CreateMovement(r.Context(), req)
	if err != nil {
		respondServiceError(w, "Failed to create movement", err)
		return
	}

	respondJSON(w, http.StatusCreated, movement)
}

// DeleteMovement deletes a movement
func (h *MovementHandler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	if err := h.movementService.DeleteMovement(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete movement", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
