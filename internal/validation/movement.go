package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

func ValidateCreateMovement(req request.CreateMovementRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.PortfolioID); err != nil {
		errors["portfolioId"] = "portfolioId must be a valid UUID"
	}
	if err := ValidateUUID(req.WalletID); err != nil {
		errors["walletId"] = "walletId must be a valid UUID"
	}

	if strings.TrimSpace(req.AssetID) == "" {
		errors["assetId"] = "assetId is required"
	}

	if !model.MovementType(req.Type).Valid() {
		errors["type"] = "type must be one of BUY, SELL, DEPOSIT, WITHDRAW, TRANSFER_IN, TRANSFER_OUT, FEE, ADJUSTMENT"
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	switch {
	case err != nil:
		errors["quantity"] = "quantity must be a decimal number"
	case quantity.IsZero():
		errors["quantity"] = "quantity cannot be zero"
	case quantity.IsNegative() && model.MovementType(req.Type) != model.MovementAdjustment:
		// Only adjustments may carry a negative quantity.
		errors["quantity"] = "quantity must be positive"
	}

	if req.Price != "" {
		if price, err := decimal.NewFromString(req.Price); err != nil || price.IsNegative() {
			errors["price"] = "price must be a non-negative decimal number"
		}
	}

	if req.FeeQuantity != "" {
		if fee, err := decimal.NewFromString(req.FeeQuantity); err != nil || fee.IsNegative() {
			errors["feeQuantity"] = "feeQuantity must be a non-negative decimal number"
		}
	}

	if req.Timestamp == "" {
		errors["timestamp"] = "timestamp is required"
	} else if _, err := time.Parse(time.RFC3339, req.Timestamp); err != nil {
		errors["timestamp"] = "timestamp must be RFC3339"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
