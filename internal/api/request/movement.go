package request

// CreateMovementRequest represents the request body for recording a movement.
// Quantity, Price and FeeQuantity are decimal strings; Timestamp is RFC3339.
type CreateMovementRequest struct {
	PortfolioID string `json:"portfolioId"`
	WalletID    string `json:"walletId"`
	AssetID     string `json:"assetId"`
	Type        string `json:"type"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price,omitempty"`
	FeeQuantity string `json:"feeQuantity,omitempty"`
	Timestamp   string `json:"timestamp"`
	Notes       string `json:"notes,omitempty"`
	GroupID     string `json:"groupId,omitempty"`
}
