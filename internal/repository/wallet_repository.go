package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// WalletRepository provides data access methods for the wallet table.
type WalletRepository struct {
	db *sql.DB
}

// NewWalletRepository creates a new WalletRepository with the provided database connection.
func NewWalletRepository(db *sql.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// CountAll returns the number of rows in the wallet table.
func (r *WalletRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM wallet").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return count, nil
}

// GetAll retrieves every wallet, main wallets first, then by name.
func (r *WalletRepository) GetAll() ([]model.Wallet, error) {
	query := `
		SELECT id, portfolio_id, name, description, is_main
		FROM wallet
		ORDER BY is_main DESC, name ASC
	`
	return r.queryWallets(query)
}

// GetByPortfolioID retrieves all wallets belonging to a portfolio.
// Returns an empty slice if the portfolio has no wallets.
func (r *WalletRepository) GetByPortfolioID(portfolioID string) ([]model.Wallet, error) {
	query := `
		SELECT id, portfolio_id, name, description, is_main
		FROM wallet
		WHERE portfolio_id = ?
		ORDER BY is_main DESC, name ASC
	`
	return r.queryWallets(query, portfolioID)
}

func (r *WalletRepository) queryWallets(query string, args ...any) ([]model.Wallet, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet table: %w", err)
	}
	defer rows.Close()

	wallets := []model.Wallet{}

	for rows.Next() {
		var w model.Wallet

		err := rows.Scan(
			&w.ID,
			&w.PortfolioID,
			&w.Name,
			&w.Description,
			&w.IsMain,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet table results: %w", err)
		}

		wallets = append(wallets, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallet table: %w", err)
	}

	return wallets, nil
}

// GetByID retrieves a single wallet by its ID.
// Returns apperrors.ErrWalletNotFound if no row matches.
func (r *WalletRepository) GetByID(walletID string) (model.Wallet, error) {
	query := `
		SELECT id, portfolio_id, name, description, is_main
		FROM wallet
		WHERE id = ?
	`

	var w model.Wallet

	err := r.db.QueryRow(query, walletID).Scan(
		&w.ID,
		&w.PortfolioID,
		&w.Name,
		&w.Description,
		&w.IsMain,
	)
	if err == sql.ErrNoRows {
		return model.Wallet{}, apperrors.ErrWalletNotFound
	}
	if err != nil {
		return model.Wallet{}, fmt.Errorf("failed to query wallet: %w", err)
	}

	return w, nil
}

// Insert creates a new wallet row and returns its generated ID.
func (r *WalletRepository) Insert(w model.Wallet) (string, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	query := `
		INSERT INTO wallet (id, portfolio_id, name, description, is_main)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.Exec(query, w.ID, w.PortfolioID, w.Name, w.Description, w.IsMain); err != nil {
		return "", fmt.Errorf("failed to insert wallet: %w", err)
	}

	return w.ID, nil
}

// UpsertAll inserts or replaces wallets keyed on (portfolio_id, name).
// Existing rows keep their ID; only description and the main flag are updated.
func (r *WalletRepository) UpsertAll(wallets []model.Wallet) error {
	query := `
		INSERT INTO wallet (id, portfolio_id, name, description, is_main)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(portfolio_id, name) DO UPDATE SET
			description = excluded.description,
			is_main = excluded.is_main
	`

	for _, w := range wallets {
		if w.ID == "" {
			w.ID = uuid.NewString()
		}
		if _, err := r.db.Exec(query, w.ID, w.PortfolioID, w.Name, w.Description, w.IsMain); err != nil {
			return fmt.Errorf("failed to upsert wallet %q: %w", w.Name, err)
		}
	}

	return nil
}

// Update replaces the mutable fields of an existing wallet.
// Returns apperrors.ErrWalletNotFound if no row matches.
func (r *WalletRepository) Update(w model.Wallet) error {
	query := `
		UPDATE wallet
		SET name = ?, description = ?, is_main = ?
		WHERE id = ?
	`

	res, err := r.db.Exec(query, w.Name, w.Description, w.IsMain, w.ID)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWalletNotFound
	}

	return nil
}

// Delete removes a single wallet by ID. Movements and holdings referencing
// the wallet make the delete fail with a foreign key violation.
func (r *WalletRepository) Delete(walletID string) error {
	res, err := r.db.Exec("DELETE FROM wallet WHERE id = ?", walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrWalletNotFound
	}

	return nil
}

// DeleteAll removes every wallet row.
func (r *WalletRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM wallet"); err != nil {
		return fmt.Errorf("failed to delete wallets: %w", err)
	}
	return nil
}
