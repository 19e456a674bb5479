package service_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
	"github.com/dkuiper/crypto-portfolio-backend/internal/testutil"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

func newPortfolioService(db *sql.DB) *service.PortfolioService {
	return service.NewPortfolioService(
		repository.NewPortfolioRepository(db),
		repository.NewWalletRepository(db),
		repository.NewMovementRepository(db),
		repository.NewHoldingRepository(db),
	)
}

func TestPortfolioService_CreatePortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newPortfolioService(db)

	t.Run("valid portfolio", func(t *testing.T) {
		p, err := svc.CreatePortfolio(request.CreatePortfolioRequest{
			Name:        "Trading",
			Description: "Short-term positions",
		})
		if err != nil {
			t.Fatalf("CreatePortfolio() returned unexpected error: %v", err)
		}
		if p.ID == "" {
			t.Error("Expected generated ID")
		}
		if p.Name != "Trading" {
			t.Errorf("Expected name Trading, got %s", p.Name)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.CreatePortfolio(request.CreatePortfolioRequest{Name: "   "})
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := vErr.Fields["name"]; !ok {
			t.Errorf("Expected name field error, got %v", vErr.Fields)
		}
	})

	t.Run("new default demotes previous default", func(t *testing.T) {
		testutil.CleanDatabase(t, db)
		first := testutil.CreateDefaultPortfolio(t, db, "First")

		second, err := svc.CreatePortfolio(request.CreatePortfolioRequest{
			Name:      "Second",
			IsDefault: true,
		})
		if err != nil {
			t.Fatalf("CreatePortfolio() returned unexpected error: %v", err)
		}

		reloaded, err := svc.GetPortfolio(first.ID)
		if err != nil {
			t.Fatalf("GetPortfolio() returned unexpected error: %v", err)
		}
		if reloaded.IsDefault {
			t.Error("Expected previous default to lose the flag")
		}
		if !second.IsDefault {
			t.Error("Expected new portfolio to be default")
		}
	})
}

func TestPortfolioService_GetPortfolio_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newPortfolioService(db)

	_, err := svc.GetPortfolio(testutil.MakeID())
	if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
		t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
	}
}

func TestPortfolioService_UpdatePortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newPortfolioService(db)

	p := testutil.CreatePortfolio(t, db, "Original")

	newName := "Renamed"
	updated, err := svc.UpdatePortfolio(p.ID, request.UpdatePortfolioRequest{Name: &newName})
	if err != nil {
		t.Fatalf("UpdatePortfolio() returned unexpected error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Expected name Renamed, got %s", updated.Name)
	}
	if updated.Description != p.Description {
		t.Error("Expected omitted fields to be preserved")
	}
}

func TestPortfolioService_DeletePortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newPortfolioService(db)

	t.Run("empty portfolio deletes", func(t *testing.T) {
		p := testutil.CreatePortfolio(t, db, "Disposable")
		if err := svc.DeletePortfolio(p.ID); err != nil {
			t.Fatalf("DeletePortfolio() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "portfolio", 0)
	})

	t.Run("wallets cascade", func(t *testing.T) {
		p := testutil.CreatePortfolio(t, db, "With Wallets")
		testutil.CreateWallet(t, db, p.ID, "Exchange")

		if err := svc.DeletePortfolio(p.ID); err != nil {
			t.Fatalf("DeletePortfolio() returned unexpected error: %v", err)
		}
		testutil.AssertRowCount(t, db, "wallet", 0)
	})

	t.Run("portfolio with movements is in use", func(t *testing.T) {
		p := testutil.CreatePortfolio(t, db, "Active")
		w := testutil.CreateWallet(t, db, p.ID, "Exchange")
		testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
		testutil.NewMovement(p.ID, w.ID, "BTC").Build(t, db)

		err := svc.DeletePortfolio(p.ID)
		if !errors.Is(err, apperrors.ErrPortfolioInUse) {
			t.Errorf("Expected ErrPortfolioInUse, got %v", err)
		}
	})
}

func TestPortfolioService_GetPortfolioSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newPortfolioService(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w1 := testutil.CreateWallet(t, db, p.ID, "Exchange")
	w2 := testutil.CreateWallet(t, db, p.ID, "Cold Storage")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
	testutil.NewMovement(p.ID, w1.ID, "BTC").WithQuantity("1").Build(t, db)
	testutil.NewMovement(p.ID, w2.ID, "BTC").WithQuantity("0.5").Build(t, db)
	testutil.CreateHolding(t, db, p.ID, w1.ID, "BTC", "1")
	testutil.CreateHolding(t, db, p.ID, w2.ID, "BTC", "0.5")

	summary, err := svc.GetPortfolioSummary(p.ID)
	if err != nil {
		t.Fatalf("GetPortfolioSummary() returned unexpected error: %v", err)
	}

	if summary.WalletCount != 2 {
		t.Errorf("Expected 2 wallets, got %d", summary.WalletCount)
	}
	if summary.MovementCount != 2 {
		t.Errorf("Expected 2 movements, got %d", summary.MovementCount)
	}
	if len(summary.Assets) != 1 {
		t.Fatalf("Expected 1 aggregated asset, got %d", len(summary.Assets))
	}
	if summary.Assets[0].AssetID != "BTC" || summary.Assets[0].Quantity.String() != "1.5" {
		t.Errorf("Expected BTC total 1.5, got %s %s",
			summary.Assets[0].AssetID, summary.Assets[0].Quantity.String())
	}
}
