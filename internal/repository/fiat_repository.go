package repository

import (
	"database/sql"
	"fmt"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// FiatRepository provides data access methods for the fiat catalog table.
type FiatRepository struct {
	db *sql.DB
}

// NewFiatRepository creates a new FiatRepository with the provided database connection.
func NewFiatRepository(db *sql.DB) *FiatRepository {
	return &FiatRepository{db: db}
}

// CountAll returns the number of rows in the fiat table.
func (r *FiatRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM fiat").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count fiat currencies: %w", err)
	}
	return count, nil
}

// GetAll retrieves the fiat catalog ordered by code.
func (r *FiatRepository) GetAll() ([]model.Fiat, error) {
	query := `
		SELECT code, name, symbol
		FROM fiat
		ORDER BY code ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiat table: %w", err)
	}
	defer rows.Close()

	fiats := []model.Fiat{}

	for rows.Next() {
		var f model.Fiat

		if err := rows.Scan(&f.Code, &f.Name, &f.Symbol); err != nil {
			return nil, fmt.Errorf("failed to scan fiat table results: %w", err)
		}

		fiats = append(fiats, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiat table: %w", err)
	}

	return fiats, nil
}

// GetByCode retrieves a single fiat currency by its code.
// Returns apperrors.ErrFiatNotFound if no row matches.
func (r *FiatRepository) GetByCode(code string) (model.Fiat, error) {
	query := `
		SELECT code, name, symbol
		FROM fiat
		WHERE code = ?
	`

	var f model.Fiat

	err := r.db.QueryRow(query, code).Scan(&f.Code, &f.Name, &f.Symbol)
	if err == sql.ErrNoRows {
		return model.Fiat{}, apperrors.ErrFiatNotFound
	}
	if err != nil {
		return model.Fiat{}, fmt.Errorf("failed to query fiat: %w", err)
	}

	return f, nil
}

// UpsertAll inserts or replaces catalog entries keyed on code.
// Safe to call repeatedly; re-seeding never duplicates rows.
func (r *FiatRepository) UpsertAll(fiats []model.Fiat) error {
	query := `
		INSERT INTO fiat (code, name, symbol)
		VALUES (?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			name = excluded.name,
			symbol = excluded.symbol
	`

	for _, f := range fiats {
		if _, err := r.db.Exec(query, f.Code, f.Name, f.Symbol); err != nil {
			return fmt.Errorf("failed to upsert fiat %q: %w", f.Code, err)
		}
	}

	return nil
}

// Delete removes a single fiat currency by code.
func (r *FiatRepository) Delete(code string) error {
	res, err := r.db.Exec("DELETE FROM fiat WHERE code = ?", code)
	if err != nil {
		return fmt.Errorf("failed to delete fiat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFiatNotFound
	}

	return nil
}

// DeleteAll removes every fiat row. Fiat has no dependents.
func (r *FiatRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM fiat"); err != nil {
		return fmt.Errorf("failed to delete fiat currencies: %w", err)
	}
	return nil
}
