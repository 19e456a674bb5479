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
)

func newWalletService(db *sql.DB) *service.WalletService {
	return service.NewWalletService(
		repository.NewWalletRepository(db),
		repository.NewPortfolioRepository(db),
	)
}

func TestWalletService_CreateWallet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWalletService(db)

	p := testutil.CreatePortfolio(t, db, "Main")

	t.Run("valid wallet", func(t *testing.T) {
		w, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: p.ID,
			Name:        "Exchange",
		})
		if err != nil {
			t.Fatalf("CreateWallet() returned unexpected error: %v", err)
		}
		if w.ID == "" {
			t.Error("Expected generated ID")
		}
	})

	t.Run("unknown portfolio", func(t *testing.T) {
		_, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: testutil.MakeID(),
			Name:        "Orphan",
		})
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})

	t.Run("duplicate name within portfolio", func(t *testing.T) {
		_, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: p.ID,
			Name:        "Exchange",
		})
		if !errors.Is(err, apperrors.ErrDuplicateEntry) {
			t.Errorf("Expected ErrDuplicateEntry, got %v", err)
		}
	})

	t.Run("same name allowed in another portfolio", func(t *testing.T) {
		other := testutil.CreatePortfolio(t, db, "Other")
		_, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: other.ID,
			Name:        "Exchange",
		})
		if err != nil {
			t.Errorf("CreateWallet() returned unexpected error: %v", err)
		}
	})

	t.Run("new main demotes previous main", func(t *testing.T) {
		first, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: p.ID,
			Name:        "First Main",
			IsMain:      true,
		})
		if err != nil {
			t.Fatalf("CreateWallet() returned unexpected error: %v", err)
		}

		second, err := svc.CreateWallet(request.CreateWalletRequest{
			PortfolioID: p.ID,
			Name:        "Second Main",
			IsMain:      true,
		})
		if err != nil {
			t.Fatalf("CreateWallet() returned unexpected error: %v", err)
		}
		if !second.IsMain {
			t.Error("Expected new wallet to be main")
		}

		reloaded, err := svc.GetWallet(first.ID)
		if err != nil {
			t.Fatalf("GetWallet() returned unexpected error: %v", err)
		}
		if reloaded.IsMain {
			t.Error("Expected previous main to lose the flag")
		}
	})
}

func TestWalletService_DeleteWallet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newWalletService(db)

	p := testutil.CreatePortfolio(t, db, "Main")

	t.Run("empty wallet deletes", func(t *testing.T) {
		w := testutil.CreateWallet(t, db, p.ID, "Disposable")
		if err := svc.DeleteWallet(w.ID); err != nil {
			t.Fatalf("DeleteWallet() returned unexpected error: %v", err)
		}
	})

	t.Run("wallet with movements is in use", func(t *testing.T) {
		w := testutil.CreateWallet(t, db, p.ID, "Active")
		testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
		testutil.NewMovement(p.ID, w.ID, "BTC").Build(t, db)

		err := svc.DeleteWallet(w.ID)
		if !errors.Is(err, apperrors.ErrWalletInUse) {
			t.Errorf("Expected ErrWalletInUse, got %v", err)
		}
	})

	t.Run("unknown wallet", func(t *testing.T) {
		err := svc.DeleteWallet(testutil.MakeID())
		if !errors.Is(err, apperrors.ErrWalletNotFound) {
			t.Errorf("Expected ErrWalletNotFound, got %v", err)
		}
	})
}
