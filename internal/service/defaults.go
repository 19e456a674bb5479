package service

import "github.com/dkuiper/crypto-portfolio-backend/internal/model"

// Built-in reference data used by the catalog seeder. Cryptos and fiat
// currencies are keyed by their natural keys (symbol / code), so re-seeding
// upserts in place instead of duplicating rows.

// DefaultPortfolio returns the portfolio created when seeding wallets into
// an empty store.
func DefaultPortfolio() model.Portfolio {
	return model.Portfolio{
		Name:        "Main Portfolio",
		Description: "Default portfolio",
		IsDefault:   true,
	}
}

// DefaultWallets returns the fixed wallet set seeded under the default
// portfolio. Names are the upsert keys within the portfolio.
func DefaultWallets(portfolioID string) []model.Wallet {
	return []model.Wallet{
		{PortfolioID: portfolioID, Name: "Exchange", Description: "Centralized exchange account", IsMain: true},
		{PortfolioID: portfolioID, Name: "Hardware Wallet", Description: "Cold storage device"},
		{PortfolioID: portfolioID, Name: "Mobile Wallet", Description: "Hot wallet on phone"},
	}
}

// DefaultCryptos returns the built-in crypto catalog.
func DefaultCryptos() []model.Crypto {
	return []model.Crypto{
		{Symbol: "BTC", Name: "Bitcoin", CoingeckoID: "bitcoin", IsActive: true},
		{Symbol: "ETH", Name: "Ethereum", CoingeckoID: "ethereum", IsActive: true},
		{Symbol: "USDT", Name: "Tether", CoingeckoID: "tether", IsActive: true},
		{Symbol: "USDC", Name: "USD Coin", CoingeckoID: "usd-coin", IsActive: true},
		{Symbol: "BNB", Name: "BNB", CoingeckoID: "binancecoin", IsActive: true},
		{Symbol: "XRP", Name: "XRP", CoingeckoID: "ripple", IsActive: true},
		{Symbol: "SOL", Name: "Solana", CoingeckoID: "solana", IsActive: true},
		{Symbol: "ADA", Name: "Cardano", CoingeckoID: "cardano", IsActive: true},
		{Symbol: "DOT", Name: "Polkadot", CoingeckoID: "polkadot", IsActive: true},
		{Symbol: "MATIC", Name: "Polygon", CoingeckoID: "matic-network", IsActive: true},
		{Symbol: "LINK", Name: "Chainlink", CoingeckoID: "chainlink", IsActive: true},
		{Symbol: "AVAX", Name: "Avalanche", CoingeckoID: "avalanche-2", IsActive: true},
	}
}

// DefaultFiats returns the built-in fiat currency catalog.
func DefaultFiats() []model.Fiat {
	return []model.Fiat{
		{Code: "USD", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Name: "Euro", Symbol: "€"},
		{Code: "GBP", Name: "British Pound", Symbol: "£"},
		{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
		{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
		{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
		{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	}
}
