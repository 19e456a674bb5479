package model

// Crypto represents an entry in the crypto asset catalog.
// The symbol is the natural key; catalog seeding upserts on it.
type Crypto struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	CoingeckoID string `json:"coingeckoId,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// Fiat represents an entry in the fiat currency catalog.
// Fiat rows have no dependents; the code is the natural key.
type Fiat struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
