package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
	"github.com/dkuiper/crypto-portfolio-backend/internal/testutil"
)

func newLedger(db *sql.DB) *service.LedgerService {
	return service.NewLedgerService(
		db,
		repository.NewMovementRepository(db),
		repository.NewHoldingRepository(db),
	)
}

func findHolding(t *testing.T, holdings []model.Holding, walletID, assetID string) model.Holding {
	t.Helper()
	for _, h := range holdings {
		if h.WalletID == walletID && h.AssetID == assetID {
			return h
		}
	}
	t.Fatalf("No holding found for wallet %s asset %s", walletID, assetID)
	return model.Holding{}
}

// TestLedgerService_Rebuild_MovementTypes verifies the signed delta each
// movement type contributes to the derived balance.
func TestLedgerService_Rebuild_MovementTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := newLedger(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")

	// 2 + 1 - 0.5 + 0.25 - 0.1 = 2.65
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementBuy).WithQuantity("2").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementDeposit).WithQuantity("1").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementSell).WithQuantity("0.5").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementTransferIn).WithQuantity("0.25").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementWithdraw).WithQuantity("0.1").Build(t, db)

	written, err := ledger.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild() returned unexpected error: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 holding written, got %d", written)
	}

	holdings, err := ledger.GetAllHoldings()
	if err != nil {
		t.Fatalf("GetAllHoldings() returned unexpected error: %v", err)
	}
	h := findHolding(t, holdings, w.ID, "BTC")
	if h.Quantity.String() != "2.65" {
		t.Errorf("Expected quantity 2.65, got %s", h.Quantity.String())
	}
}

// TestLedgerService_Rebuild_FeeSubtraction verifies the fee quantity
// subtracts on top of the movement delta, for inflows and outflows alike.
func TestLedgerService_Rebuild_FeeSubtraction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := newLedger(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "ETH", "Ethereum")

	// (10 - 0.01) + (-(3) - 0.02) = 6.97
	testutil.NewMovement(p.ID, w.ID, "ETH").WithType(model.MovementBuy).
		WithQuantity("10").WithFee("0.01").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "ETH").WithType(model.MovementSell).
		WithQuantity("3").WithFee("0.02").Build(t, db)

	if _, err := ledger.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild() returned unexpected error: %v", err)
	}

	holdings, err := ledger.GetAllHoldings()
	if err != nil {
		t.Fatalf("GetAllHoldings() returned unexpected error: %v", err)
	}
	h := findHolding(t, holdings, w.ID, "ETH")
	if h.Quantity.String() != "6.97" {
		t.Errorf("Expected quantity 6.97, got %s", h.Quantity.String())
	}
}

// TestLedgerService_Rebuild_ReplacesStale verifies a rebuild discards
// holdings no longer backed by movements and keeps fully-spent balances
// as explicit zero rows.
func TestLedgerService_Rebuild_ReplacesStale(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := newLedger(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
	testutil.CreateCrypto(t, db, "SOL", "Solana")

	// Stale: no movements back this row.
	testutil.CreateHolding(t, db, p.ID, w.ID, "SOL", "99")

	// Fully spent: buy then sell the same amount.
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementBuy).WithQuantity("1.5").Build(t, db)
	testutil.NewMovement(p.ID, w.ID, "BTC").WithType(model.MovementSell).WithQuantity("1.5").Build(t, db)

	written, err := ledger.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild() returned unexpected error: %v", err)
	}
	if written != 1 {
		t.Errorf("Expected 1 holding written, got %d", written)
	}

	holdings, err := ledger.GetAllHoldings()
	if err != nil {
		t.Fatalf("GetAllHoldings() returned unexpected error: %v", err)
	}
	if len(holdings) != 1 {
		t.Fatalf("Expected stale holding replaced, got %d holdings", len(holdings))
	}
	h := findHolding(t, holdings, w.ID, "BTC")
	if !h.Quantity.IsZero() {
		t.Errorf("Expected zero balance for fully-spent asset, got %s", h.Quantity.String())
	}
}

// TestLedgerService_Rebuild_PerWallet verifies balances aggregate per
// wallet, not per portfolio.
func TestLedgerService_Rebuild_PerWallet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ledger := newLedger(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w1 := testutil.CreateWallet(t, db, p.ID, "Exchange")
	w2 := testutil.CreateWallet(t, db, p.ID, "Cold Storage")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")

	testutil.NewMovement(p.ID, w1.ID, "BTC").WithType(model.MovementBuy).WithQuantity("2").Build(t, db)
	testutil.NewMovement(p.ID, w1.ID, "BTC").WithType(model.MovementTransferOut).WithQuantity("0.75").Build(t, db)
	testutil.NewMovement(p.ID, w2.ID, "BTC").WithType(model.MovementTransferIn).WithQuantity("0.75").Build(t, db)

	written, err := ledger.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("Rebuild() returned unexpected error: %v", err)
	}
	if written != 2 {
		t.Errorf("Expected 2 holdings written, got %d", written)
	}

	holdings, err := ledger.GetAllHoldings()
	if err != nil {
		t.Fatalf("GetAllHoldings() returned unexpected error: %v", err)
	}
	if got := findHolding(t, holdings, w1.ID, "BTC").Quantity.String(); got != "1.25" {
		t.Errorf("Expected 1.25 in first wallet, got %s", got)
	}
	if got := findHolding(t, holdings, w2.ID, "BTC").Quantity.String(); got != "0.75" {
		t.Errorf("Expected 0.75 in second wallet, got %s", got)
	}
}
