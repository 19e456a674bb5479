package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/request"
	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
	"github.com/dkuiper/crypto-portfolio-backend/internal/testutil"
	"github.com/dkuiper/crypto-portfolio-backend/internal/validation"
)

func newMovementService(db *sql.DB) *service.MovementService {
	return service.NewMovementService(
		repository.NewMovementRepository(db),
		repository.NewWalletRepository(db),
		repository.NewCryptoRepository(db),
	)
}

func TestMovementService_CreateMovement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newMovementService(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")

	valid := func() request.CreateMovementRequest {
		return request.CreateMovementRequest{
			PortfolioID: p.ID,
			WalletID:    w.ID,
			AssetID:     "BTC",
			Type:        "BUY",
			Quantity:    "0.5",
			Price:       "64000",
			Timestamp:   "2024-03-01T09:30:00Z",
		}
	}

	t.Run("valid movement", func(t *testing.T) {
		m, err := svc.CreateMovement(context.Background(), valid())
		if err != nil {
			t.Fatalf("CreateMovement() returned unexpected error: %v", err)
		}
		if m.ID == "" {
			t.Error("Expected generated ID")
		}
		if m.Quantity.String() != "0.5" {
			t.Errorf("Expected quantity 0.5, got %s", m.Quantity.String())
		}
		if m.Price == nil || m.Price.String() != "64000" {
			t.Errorf("Expected price 64000, got %v", m.Price)
		}
	})

	t.Run("asset symbol is normalized", func(t *testing.T) {
		req := valid()
		req.AssetID = "  btc "
		m, err := svc.CreateMovement(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateMovement() returned unexpected error: %v", err)
		}
		if m.AssetID != "BTC" {
			t.Errorf("Expected asset BTC, got %s", m.AssetID)
		}
	})

	t.Run("unknown wallet", func(t *testing.T) {
		req := valid()
		req.WalletID = testutil.MakeID()
		_, err := svc.CreateMovement(context.Background(), req)
		if !errors.Is(err, apperrors.ErrWalletNotFound) {
			t.Errorf("Expected ErrWalletNotFound, got %v", err)
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		req := valid()
		req.AssetID = "DOGE"
		_, err := svc.CreateMovement(context.Background(), req)
		if !errors.Is(err, apperrors.ErrCryptoNotFound) {
			t.Errorf("Expected ErrCryptoNotFound, got %v", err)
		}
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		req := valid()
		req.Type = "STAKE"
		_, err := svc.CreateMovement(context.Background(), req)
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := vErr.Fields["type"]; !ok {
			t.Errorf("Expected type field error, got %v", vErr.Fields)
		}
	})

	t.Run("negative quantity rejected for buy", func(t *testing.T) {
		req := valid()
		req.Quantity = "-1"
		_, err := svc.CreateMovement(context.Background(), req)
		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected validation error, got %v", err)
		}
		if _, ok := vErr.Fields["quantity"]; !ok {
			t.Errorf("Expected quantity field error, got %v", vErr.Fields)
		}
	})

	t.Run("negative quantity allowed for adjustment", func(t *testing.T) {
		req := valid()
		req.Type = string(model.MovementAdjustment)
		req.Quantity = "-0.001"
		req.Price = ""
		m, err := svc.CreateMovement(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateMovement() returned unexpected error: %v", err)
		}
		if m.Quantity.String() != "-0.001" {
			t.Errorf("Expected quantity -0.001, got %s", m.Quantity.String())
		}
	})
}

func TestMovementService_GetMovementsByWallet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newMovementService(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w1 := testutil.CreateWallet(t, db, p.ID, "Exchange")
	w2 := testutil.CreateWallet(t, db, p.ID, "Cold Storage")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")

	testutil.NewMovement(p.ID, w1.ID, "BTC").Build(t, db)
	testutil.NewMovement(p.ID, w1.ID, "BTC").Build(t, db)
	testutil.NewMovement(p.ID, w2.ID, "BTC").Build(t, db)

	movements, err := svc.GetMovementsByWallet(w1.ID)
	if err != nil {
		t.Fatalf("GetMovementsByWallet() returned unexpected error: %v", err)
	}
	if len(movements) != 2 {
		t.Errorf("Expected 2 movements, got %d", len(movements))
	}
}

func TestMovementService_DeleteMovement(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newMovementService(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
	m := testutil.NewMovement(p.ID, w.ID, "BTC").Build(t, db)

	if err := svc.DeleteMovement(m.ID); err != nil {
		t.Fatalf("DeleteMovement() returned unexpected error: %v", err)
	}
	testutil.AssertRowCount(t, db, "movement", 0)

	if err := svc.DeleteMovement(m.ID); !errors.Is(err, apperrors.ErrMovementNotFound) {
		t.Errorf("Expected ErrMovementNotFound, got %v", err)
	}
}
