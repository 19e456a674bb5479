package request

// CreateCryptoRequest represents the request body for adding a crypto to the catalog.
// The symbol is normalized to upper case before persisting.
type CreateCryptoRequest struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	CoingeckoID string `json:"coingeckoId"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// CreateFiatRequest represents the request body for adding a fiat currency to the catalog.
// The code is normalized to upper case before persisting.
type CreateFiatRequest struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
