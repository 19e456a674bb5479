package model

// Wallet represents a holding location within a portfolio.
// Wallet names are unique per portfolio; at most one wallet
// per portfolio carries the main flag.
type Wallet struct {
	ID          string `json:"id"`
	PortfolioID string `json:"portfolioId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMain      bool   `json:"isMain"`
}
