package model

import "github.com/shopspring/decimal"

// Portfolio represents a portfolio from the database.
// At most one portfolio carries the default flag at any time;
// that invariant is enforced by the services, not by the schema.
type Portfolio struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// PortfolioSummary represents the current state of a portfolio:
// its wallet and movement counts plus the per-asset quantities
// aggregated across all of its wallets.
type PortfolioSummary struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	IsDefault     bool           `json:"isDefault"`
	WalletCount   int            `json:"walletCount"`
	MovementCount int            `json:"movementCount"`
	Assets        []AssetBalance `json:"assets"`
}

// AssetBalance is a single asset's aggregated quantity within a portfolio.
type AssetBalance struct {
	AssetID  string          `json:"assetId"`
	Quantity decimal.Decimal `json:"quantity"`
}
