package repository

import (
	"database/sql"
	"fmt"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// CryptoRepository provides data access methods for the crypto catalog table.
type CryptoRepository struct {
	db *sql.DB
}

// NewCryptoRepository creates a new CryptoRepository with the provided database connection.
func NewCryptoRepository(db *sql.DB) *CryptoRepository {
	return &CryptoRepository{db: db}
}

// CountAll returns the number of rows in the crypto table.
func (r *CryptoRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM crypto").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cryptos: %w", err)
	}
	return count, nil
}

// GetAll retrieves the crypto catalog ordered by symbol.
func (r *CryptoRepository) GetAll() ([]model.Crypto, error) {
	query := `
		SELECT symbol, name, COALESCE(coingecko_id, ''), is_active
		FROM crypto
		ORDER BY symbol ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crypto table: %w", err)
	}
	defer rows.Close()

	cryptos := []model.Crypto{}

	for rows.Next() {
		var c model.Crypto

		err := rows.Scan(
			&c.Symbol,
			&c.Name,
			&c.CoingeckoID,
			&c.IsActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crypto table results: %w", err)
		}

		cryptos = append(cryptos, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crypto table: %w", err)
	}

	return cryptos, nil
}

// GetBySymbol retrieves a single crypto by its symbol.
// Returns apperrors.ErrCryptoNotFound if no row matches.
func (r *CryptoRepository) GetBySymbol(symbol string) (model.Crypto, error) {
	query := `
		SELECT symbol, name, COALESCE(coingecko_id, ''), is_active
		FROM crypto
		WHERE symbol = ?
	`

	var c model.Crypto

	err := r.db.QueryRow(query, symbol).Scan(
		&c.Symbol,
		&c.Name,
		&c.CoingeckoID,
		&c.IsActive,
	)
	if err == sql.ErrNoRows {
		return model.Crypto{}, apperrors.ErrCryptoNotFound
	}
	if err != nil {
		return model.Crypto{}, fmt.Errorf("failed to query crypto: %w", err)
	}

	return c, nil
}

// UpsertAll inserts or replaces catalog entries keyed on symbol.
// Safe to call repeatedly; re-seeding never duplicates rows.
func (r *CryptoRepository) UpsertAll(cryptos []model.Crypto) error {
	query := `
		INSERT INTO crypto (symbol, name, coingecko_id, is_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			name = excluded.name,
			coingecko_id = excluded.coingecko_id,
			is_active = excluded.is_active
	`

	for _, c := range cryptos {
		if _, err := r.db.Exec(query, c.Symbol, c.Name, c.CoingeckoID, c.IsActive); err != nil {
			return fmt.Errorf("failed to upsert crypto %q: %w", c.Symbol, err)
		}
	}

	return nil
}

// Delete removes a single crypto by symbol. Movements and holdings
// referencing the symbol make the delete fail with a foreign key violation.
func (r *CryptoRepository) Delete(symbol string) error {
	res, err := r.db.Exec("DELETE FROM crypto WHERE symbol = ?", symbol)
	if err != nil {
		return fmt.Errorf("failed to delete crypto: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCryptoNotFound
	}

	return nil
}

// DeleteAll removes every crypto row. Fails with a foreign key violation
// while movements or holdings still reference any symbol.
func (r *CryptoRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM crypto"); err != nil {
		return fmt.Errorf("failed to delete cryptos: %w", err)
	}
	return nil
}
