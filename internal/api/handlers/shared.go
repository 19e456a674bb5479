package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps service errors onto HTTP status codes:
// validation failures to 400, missing entities to 404, in-use and duplicate
// conflicts to 409, everything else to 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrPortfolioNotFound),
		errors.Is(err, apperrors.ErrWalletNotFound),
		errors.Is(err, apperrors.ErrCryptoNotFound),
		errors.Is(err, apperrors.ErrFiatNotFound),
		errors.Is(err, apperrors.ErrMovementNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrPortfolioInUse),
		errors.Is(err, apperrors.ErrWalletInUse),
		errors.Is(err, apperrors.ErrCryptoInUse),
		errors.Is(err, apperrors.ErrDuplicateEntry):
		status = http.StatusConflict
	case apperrors.IsForeignKeyViolation(err):
		status = http.StatusConflict
	}

	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
