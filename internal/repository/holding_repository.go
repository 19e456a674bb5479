package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Holdings are derived rows keyed by (portfolio, wallet, asset).
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// CountAll returns the number of rows in the holding table.
func (r *HoldingRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM holding").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count holdings: %w", err)
	}
	return count, nil
}

// GetAll retrieves every holding ordered by its composite key.
func (r *HoldingRepository) GetAll() ([]model.Holding, error) {
	query := `
		SELECT portfolio_id, wallet_id, asset_id, quantity, updated_at
		FROM holding
		ORDER BY portfolio_id ASC, wallet_id ASC, asset_id ASC
	`
	return r.queryHoldings(query)
}

// GetByPortfolioID retrieves all holdings within a portfolio.
func (r *HoldingRepository) GetByPortfolioID(portfolioID string) ([]model.Holding, error) {
	query := `
		SELECT portfolio_id, wallet_id, asset_id, quantity, updated_at
		FROM holding
		WHERE portfolio_id = ?
		ORDER BY wallet_id ASC, asset_id ASC
	`
	return r.queryHoldings(query, portfolioID)
}

func (r *HoldingRepository) queryHoldings(query string, args ...any) ([]model.Holding, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding
		var quantityStr, updatedAtStr string

		err := rows.Scan(
			&h.PortfolioID,
			&h.WalletID,
			&h.AssetID,
			&quantityStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		if h.Quantity, err = ParseDecimal(quantityStr); err != nil {
			return nil, err
		}
		if h.UpdatedAt, err = ParseTime(updatedAtStr); err != nil {
			return nil, err
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}

// UpsertAll inserts or replaces holdings keyed on (portfolio, wallet, asset).
func (r *HoldingRepository) UpsertAll(holdings []model.Holding) error {
	query := `
		INSERT INTO holding (portfolio_id, wallet_id, asset_id, quantity, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(portfolio_id, wallet_id, asset_id) DO UPDATE SET
			quantity = excluded.quantity,
			updated_at = excluded.updated_at
	`

	for _, h := range holdings {
		_, err := r.db.Exec(query,
			h.PortfolioID,
			h.WalletID,
			h.AssetID,
			h.Quantity.String(),
			h.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert holding %s/%s: %w", h.WalletID, h.AssetID, err)
		}
	}

	return nil
}

// ReplaceAll swaps the full holding set within the caller's transaction.
// Used by the ledger rebuild so stale rows and fresh rows never coexist.
func (r *HoldingRepository) ReplaceAll(tx *sql.Tx, holdings []model.Holding) error {
	if _, err := tx.Exec("DELETE FROM holding"); err != nil {
		return fmt.Errorf("failed to clear holdings: %w", err)
	}

	query := `
		INSERT INTO holding (portfolio_id, wallet_id, asset_id, quantity, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, h := range holdings {
		_, err := tx.Exec(query,
			h.PortfolioID,
			h.WalletID,
			h.AssetID,
			h.Quantity.String(),
			h.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to insert holding %s/%s: %w", h.WalletID, h.AssetID, err)
		}
	}

	return nil
}

// DeleteAll removes every holding row.
func (r *HoldingRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM holding"); err != nil {
		return fmt.Errorf("failed to delete holdings: %w", err)
	}
	return nil
}
