package request

// CreateWalletRequest represents the request body for creating a wallet
type CreateWalletRequest struct {
	PortfolioID string `json:"portfolioId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMain      bool   `json:"isMain"`
}

// UpdateWalletRequest represents the request body for updating a wallet.
// Only provided fields are applied.
type UpdateWalletRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsMain      *bool   `json:"isMain,omitempty"`
}
