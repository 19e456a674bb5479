package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger event by how it affects a wallet's asset quantity.
type MovementType string

// Known movement types.
const (
	MovementBuy         MovementType = "BUY"
	MovementSell        MovementType = "SELL"
	MovementDeposit     MovementType = "DEPOSIT"
	MovementWithdraw    MovementType = "WITHDRAW"
	MovementTransferIn  MovementType = "TRANSFER_IN"
	MovementTransferOut MovementType = "TRANSFER_OUT"
	MovementFee         MovementType = "FEE"
	MovementAdjustment  MovementType = "ADJUSTMENT"
)

// MovementTypes lists every valid movement type.
var MovementTypes = []MovementType{
	MovementBuy,
	MovementSell,
	MovementDeposit,
	MovementWithdraw,
	MovementTransferIn,
	MovementTransferOut,
	MovementFee,
	MovementAdjustment,
}

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	for _, known := range MovementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsInflow reports whether the movement adds to the wallet's asset quantity.
// BUY, DEPOSIT, TRANSFER_IN and ADJUSTMENT are inflows; SELL, WITHDRAW,
// TRANSFER_OUT and FEE are outflows.
func (t MovementType) IsInflow() bool {
	switch t {
	case MovementBuy, MovementDeposit, MovementTransferIn, MovementAdjustment:
		return true
	default:
		return false
	}
}

// Movement represents a recorded ledger event affecting a wallet's asset quantity.
// Quantity and FeeQuantity are asset amounts; Price is the optional unit price in
// the portfolio's reference currency at the time of the movement.
type Movement struct {
	ID          string           `json:"id"`
	PortfolioID string           `json:"portfolioId"`
	WalletID    string           `json:"walletId"`
	AssetID     string           `json:"assetId"`
	Type        MovementType     `json:"type"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	FeeQuantity decimal.Decimal  `json:"feeQuantity"`
	Timestamp   time.Time        `json:"timestamp"`
	Notes       string           `json:"notes,omitempty"`
	GroupID     string           `json:"groupId,omitempty"`
}
