package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is the current quantity of an asset in a wallet, derived from the
// movement history. Keyed by (portfolio, wallet, asset).
type Holding struct {
	PortfolioID string          `json:"portfolioId"`
	WalletID    string          `json:"walletId"`
	AssetID     string          `json:"assetId"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
