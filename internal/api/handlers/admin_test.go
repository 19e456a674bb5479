package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dkuiper/crypto-portfolio-backend/internal/api/handlers"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
	"github.com/dkuiper/crypto-portfolio-backend/internal/repository"
	"github.com/dkuiper/crypto-portfolio-backend/internal/service"
	"github.com/dkuiper/crypto-portfolio-backend/internal/testutil"
)

func newAdminHandler(db *sql.DB) *handlers.AdminHandler {
	portfolioRepo := repository.NewPortfolioRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	cryptoRepo := repository.NewCryptoRepository(db)
	fiatRepo := repository.NewFiatRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)

	seeder := service.NewCatalogSeeder(portfolioRepo, walletRepo, cryptoRepo, fiatRepo)
	wiper := service.NewDataWiper(db, portfolioRepo, walletRepo, cryptoRepo, fiatRepo, movementRepo, holdingRepo)
	ledger := service.NewLedgerService(db, movementRepo, holdingRepo)

	return handlers.NewAdminHandler(seeder, wiper, ledger)
}

// TestAdminHandler_Status tests the GET /api/admin/status endpoint.
func TestAdminHandler_Status(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newAdminHandler(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
	testutil.CreateFiat(t, db, "USD", "US Dollar", "$")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/status", nil)
	w := httptest.NewRecorder()

	handler.Status(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if contentType := w.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
	}

	var status model.CatalogStatus
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if status.Portfolios != 1 || status.Wallets != 1 || status.Cryptos != 1 || status.Fiat != 1 {
		t.Errorf("Unexpected counts: %+v", status)
	}
}

// TestAdminHandler_Seed tests the POST /api/admin/seed endpoint.
func TestAdminHandler_Seed(t *testing.T) {
	t.Run("seeds selected categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAdminHandler(db)

		body := strings.NewReader(`{"cryptos": true, "fiat": true}`)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", body)
		w := httptest.NewRecorder()

		handler.Seed(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.SeedResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if result.CryptosUpserted == 0 || result.FiatUpserted == 0 {
			t.Errorf("Expected catalog inserts reported, got %+v", result)
		}
		if result.CreatedPortfolioID != nil {
			t.Error("Expected no portfolio created when wallets not requested")
		}

		testutil.AssertRowCount(t, db, "crypto", result.CryptosUpserted)
		testutil.AssertRowCount(t, db, "fiat", result.FiatUpserted)
	})

	t.Run("invalid body returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAdminHandler(db)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.Seed(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

// TestAdminHandler_Wipe tests the POST /api/admin/wipe endpoint.
func TestAdminHandler_Wipe(t *testing.T) {
	t.Run("wipe all returns counts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAdminHandler(db)

		p := testutil.CreatePortfolio(t, db, "Main")
		testutil.CreateWallet(t, db, p.ID, "Exchange")

		req := httptest.NewRequest(http.MethodPost, "/api/admin/wipe", strings.NewReader(`{"all": true}`))
		w := httptest.NewRecorder()

		handler.Wipe(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var result model.WipeResult
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if !result.DeletedAllTables {
			t.Error("Expected deletedAllTables to be true")
		}
		if result.WalletsDeletedCount != 1 || result.PortfoliosDeletedCount != 1 {
			t.Errorf("Unexpected counts: %+v", result)
		}

		testutil.AssertRowCount(t, db, "portfolio", 0)
		testutil.AssertRowCount(t, db, "wallet", 0)
	})

	t.Run("dependency conflict returns 409", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := newAdminHandler(db)

		p := testutil.CreatePortfolio(t, db, "Main")
		w1 := testutil.CreateWallet(t, db, p.ID, "Exchange")
		testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
		testutil.NewMovement(p.ID, w1.ID, "BTC").Build(t, db)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/wipe", strings.NewReader(`{"cryptos": true}`))
		w := httptest.NewRecorder()

		handler.Wipe(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d: %s", w.Code, w.Body.String())
		}
		testutil.AssertRowCount(t, db, "crypto", 1)
	})
}

// TestAdminHandler_Reconcile tests the POST /api/admin/reconcile endpoint.
func TestAdminHandler_Reconcile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := newAdminHandler(db)

	p := testutil.CreatePortfolio(t, db, "Main")
	w1 := testutil.CreateWallet(t, db, p.ID, "Exchange")
	testutil.CreateCrypto(t, db, "BTC", "Bitcoin")
	testutil.NewMovement(p.ID, w1.ID, "BTC").WithQuantity("2").Build(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/reconcile", nil)
	w := httptest.NewRecorder()

	handler.Reconcile(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response handlers.ReconcileResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.HoldingsRebuilt != 1 {
		t.Errorf("Expected 1 holding rebuilt, got %d", response.HoldingsRebuilt)
	}
	testutil.AssertRowCount(t, db, "holding", 1)
}
