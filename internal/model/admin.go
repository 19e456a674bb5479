package model

// CatalogStatus holds current row counts per category. Callers use it to
// decide which categories are already populated before offering to seed.
type CatalogStatus struct {
	Portfolios int `json:"portfolios"`
	Wallets    int `json:"wallets"`
	Cryptos    int `json:"cryptos"`
	Fiat       int `json:"fiat"`
}

// SeedRequest selects which categories the seeder should (re-)populate.
// The flags are independent; none being set is a no-op.
type SeedRequest struct {
	Wallets    bool `json:"wallets"`
	Cryptos    bool `json:"cryptos"`
	Fiat       bool `json:"fiat"`
	SyncManual bool `json:"syncManual"`
}

// SeedResult reports what a seed call did. CreatedPortfolioID is only set
// when wallets were requested; it names the default portfolio that was
// reused or created.
type SeedResult struct {
	CreatedPortfolioID *string `json:"createdPortfolioId"`
	WalletsInserted    int     `json:"walletsInserted"`
	CryptosUpserted    int     `json:"cryptosUpserted"`
	FiatUpserted       int     `json:"fiatUpserted"`
	SyncApplied        bool    `json:"syncApplied"`
}

// WipeRequest selects which categories the wiper should delete.
// All takes precedence: when set, every category is treated as selected.
type WipeRequest struct {
	All       bool `json:"all"`
	Wallets   bool `json:"wallets"`
	Cryptos   bool `json:"cryptos"`
	Fiat      bool `json:"fiat"`
	Movements bool `json:"movements"`
	Holdings  bool `json:"holdings"`
	Portfolio bool `json:"portfolio"`
}

// WipeResult mirrors which categories were attempted and how many rows each
// held immediately before deletion. Counts are pre-delete snapshots, so they
// reflect "how much was there to delete" even when a later statement in the
// same call fails.
type WipeResult struct {
	DeletedWallets   bool `json:"deletedWallets"`
	DeletedCryptos   bool `json:"deletedCryptos"`
	DeletedFiat      bool `json:"deletedFiat"`
	DeletedMovements bool `json:"deletedMovements"`
	DeletedHoldings  bool `json:"deletedHoldings"`
	DeletedPortfolio bool `json:"deletedPortfolio"`
	DeletedAllTables bool `json:"deletedAllTables"`

	WalletsDeletedCount    int `json:"walletsDeletedCount"`
	CryptosDeletedCount    int `json:"cryptosDeletedCount"`
	FiatDeletedCount       int `json:"fiatDeletedCount"`
	MovementsDeletedCount  int `json:"movementsDeletedCount"`
	HoldingsDeletedCount   int `json:"holdingsDeletedCount"`
	PortfoliosDeletedCount int `json:"portfoliosDeletedCount"`
}
