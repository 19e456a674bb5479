package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolios gets all portfolios
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, r *http.Request) {
	portfolios, err := h.portfolioService.GetAllPortfolios()
	if err != nil {
		respondServiceError(w, "Failed to retrieve portfolios", err)
		return
	}

	respondJSON(w, http.StatusOK, portfolios)
}

// Portfolio gets a single portfolio by ID
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.portfolioService.GetPortfolio(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to retrieve portfolio", err)
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}

// CreatePortfolio creates a new portfolio
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(req)
	if err != nil {
		respondServiceError(w, "Failed to create portfolio", err)
		return
	}

	respondJSON(w, http.StatusCreated, portfolio)
}

// UpdatePortfolio updates an existing portfolio
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid request body",
			"detail": err.Error(),
		})
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(chi.URLParam(r, "uuid"), req)
	if err != nil {
		respondServiceError(w, "Failed to update portfolio", err)
		return
	}

	respondJSON(w, http.StatusOK, portfolio)
}

// DeletePortfolio deletes a portfolio
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	if err := h.portfolioService.DeletePortfolio(chi.URLParam(r, "uuid")); err != nil {
		respondServiceError(w, "Failed to delete portfolio", err)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// PortfolioSummary gets a portfolio's aggregated summary
func (h *PortfolioHandler) PortfolioSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.portfolioService.GetPortfolioSummary(chi.URLParam(r, "uuid"))
	if err != nil {
		respondServiceError(w, "Failed to get portfolio summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
