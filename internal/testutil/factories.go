package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	// Simple creation with defaults
//	portfolio := testutil.NewPortfolio().Build(t, db)
//
//	// Customized portfolio
//	portfolio := testutil.NewPortfolio().
//	    WithName("Custom Portfolio").
//	    Default().
//	    Build(t, db)
type PortfolioBuilder struct {
	ID          string
	Name        string
	Description string
	IsDefault   bool
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults.
func NewPortfolio() *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:          MakeID(),
		Name:        MakeName("Test Portfolio"),
		Description: "Test description",
	}
}

// WithID sets a custom ID.
func (b *PortfolioBuilder) WithID(id string) *PortfolioBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// Default marks the portfolio as the default.
func (b *PortfolioBuilder) Default() *PortfolioBuilder {
	b.IsDefault = true
	return b
}

// Build creates the portfolio in the database and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	query := `
		INSERT INTO portfolio (id, name, description, is_default)
		VALUES (?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Description, b.IsDefault)
	if err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsDefault:   b.IsDefault,
	}
}

// WalletBuilder provides a fluent interface for creating test wallets.
type WalletBuilder struct {
	ID          string
	PortfolioID string
	Name        string
	Description string
	IsMain      bool
}

// NewWallet creates a WalletBuilder under the given portfolio.
func NewWallet(portfolioID string) *WalletBuilder {
	return &WalletBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		Name:        MakeName("Test Wallet"),
	}
}

// WithName sets a custom name.
func (b *WalletBuilder) WithName(name string) *WalletBuilder {
	b.Name = name
	return b
}

// Main marks the wallet as the portfolio's main wallet.
func (b *WalletBuilder) Main() *WalletBuilder {
	b.IsMain = true
	return b
}

// Build creates the wallet in the database and returns it.
func (b *WalletBuilder) Build(t *testing.T, db *sql.DB) model.Wallet {
	t.Helper()

	query := `
		INSERT INTO wallet (id, portfolio_id, name, description, is_main)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PortfolioID, b.Name, b.Description, b.IsMain)
	if err != nil {
		t.Fatalf("Failed to create test wallet: %v", err)
	}

	return model.Wallet{
		ID:          b.ID,
		PortfolioID: b.PortfolioID,
		Name:        b.Name,
		Description: b.Description,
		IsMain:      b.IsMain,
	}
}

// MovementBuilder provides a fluent interface for creating test movements.
type MovementBuilder struct {
	ID          string
	PortfolioID string
	WalletID    string
	AssetID     string
	Type        model.MovementType
	Quantity    decimal.Decimal
	FeeQuantity decimal.Decimal
	Timestamp   time.Time
}

// NewMovement creates a MovementBuilder for a BUY of 1 unit.
func NewMovement(portfolioID, walletID, assetID string) *MovementBuilder {
	return &MovementBuilder{
		ID:          MakeID(),
		PortfolioID: portfolioID,
		WalletID:    walletID,
		AssetID:     assetID,
		Type:        model.MovementBuy,
		Quantity:    decimal.NewFromInt(1),
		FeeQuantity: decimal.Zero,
		Timestamp:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// WithType sets the movement type.
func (b *MovementBuilder) WithType(movementType model.MovementType) *MovementBuilder {
	b.Type = movementType
	return b
}

// WithQuantity sets the movement quantity from a decimal string.
func (b *MovementBuilder) WithQuantity(quantity string) *MovementBuilder {
	b.Quantity = decimal.RequireFromString(quantity)
	return b
}

// WithFee sets the fee quantity from a decimal string.
func (b *MovementBuilder) WithFee(fee string) *MovementBuilder {
	b.FeeQuantity = decimal.RequireFromString(fee)
	return b
}

// WithTimestamp sets the movement timestamp.
func (b *MovementBuilder) WithTimestamp(ts time.Time) *MovementBuilder {
	b.Timestamp = ts
	return b
}

// Build creates the movement in the database and returns it.
func (b *MovementBuilder) Build(t *testing.T, db *sql.DB) model.Movement {
	t.Helper()

	query := `
		INSERT INTO movement (id, portfolio_id, wallet_id, asset_id, type, quantity, fee_quantity, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID,
		b.PortfolioID,
		b.WalletID,
		b.AssetID,
		string(b.Type),
		b.Quantity.String(),
		b.FeeQuantity.String(),
		b.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("Failed to create test movement: %v", err)
	}

	return model.Movement{
		ID:          b.ID,
		PortfolioID: b.PortfolioID,
		WalletID:    b.WalletID,
		AssetID:     b.AssetID,
		Type:        b.Type,
		Quantity:    b.Quantity,
		FeeQuantity: b.FeeQuantity,
		Timestamp:   b.Timestamp,
	}
}

// Convenience functions

// CreatePortfolio creates a portfolio with the given name and default values.
func CreatePortfolio(t *testing.T, db *sql.DB, name string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithName(name).Build(t, db)
}

// CreateDefaultPortfolio creates a portfolio flagged as the default.
func CreateDefaultPortfolio(t *testing.T, db *sql.DB, name string) model.Portfolio {
	t.Helper()
	return NewPortfolio().WithName(name).Default().Build(t, db)
}

// CreateWallet creates a wallet with the given name under a portfolio.
func CreateWallet(t *testing.T, db *sql.DB, portfolioID, name string) model.Wallet {
	t.Helper()
	return NewWallet(portfolioID).WithName(name).Build(t, db)
}

// CreateCrypto inserts a crypto catalog row.
func CreateCrypto(t *testing.T, db *sql.DB, symbol, name string) model.Crypto {
	t.Helper()

	query := `
		INSERT INTO crypto (symbol, name, is_active)
		VALUES (?, ?, 1)
	`
	if _, err := db.Exec(query, symbol, name); err != nil {
		t.Fatalf("Failed to create test crypto: %v", err)
	}

	return model.Crypto{Symbol: symbol, Name: name, IsActive: true}
}

// CreateFiat inserts a fiat catalog row.
func CreateFiat(t *testing.T, db *sql.DB, code, name, symbol string) model.Fiat {
	t.Helper()

	query := `
		INSERT INTO fiat (code, name, symbol)
		VALUES (?, ?, ?)
	`
	if _, err := db.Exec(query, code, name, symbol); err != nil {
		t.Fatalf("Failed to create test fiat: %v", err)
	}

	return model.Fiat{Code: code, Name: name, Symbol: symbol}
}

// CreateHolding inserts a holding row.
func CreateHolding(t *testing.T, db *sql.DB, portfolioID, walletID, assetID, quantity string) model.Holding {
	t.Helper()

	updatedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	query := `
		INSERT INTO holding (portfolio_id, wallet_id, asset_id, quantity, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := db.Exec(query, portfolioID, walletID, assetID, quantity, updatedAt.Format(time.RFC3339)); err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		PortfolioID: portfolioID,
		WalletID:    walletID,
		AssetID:     assetID,
		Quantity:    decimal.RequireFromString(quantity),
		UpdatedAt:   updatedAt,
	}
}
