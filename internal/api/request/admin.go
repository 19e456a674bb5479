package request

// SeedDataRequest represents the request body for seeding default reference data.
type SeedDataRequest struct {
	Wallets    bool `json:"wallets"`
	Cryptos    bool `json:"cryptos"`
	Fiat       bool `json:"fiat"`
	SyncManual bool `json:"syncManual"`
}

// WipeDataRequest represents the request body for wiping data categories.
// Setting all selects every category regardless of the individual flags.
type WipeDataRequest struct {
	All       bool `json:"all"`
	Wallets   bool `json:"wallets"`
	Cryptos   bool `json:"cryptos"`
	Fiat      bool `json:"fiat"`
	Movements bool `json:"movements"`
	Holdings  bool `json:"holdings"`
	Portfolio bool `json:"portfolio"`
}
