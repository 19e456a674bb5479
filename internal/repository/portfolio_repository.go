package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// CountAll returns the number of rows in the portfolio table.
func (r *PortfolioRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM portfolio").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count portfolios: %w", err)
	}
	return count, nil
}

// GetAll retrieves every portfolio, default first, then by name.
func (r *PortfolioRepository) GetAll() ([]model.Portfolio, error) {
	query := `
		SELECT id, name, description, is_default
		FROM portfolio
		ORDER BY is_default DESC, name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		var p model.Portfolio

		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.IsDefault,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}

		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetByID retrieves a single portfolio by its ID.
// Returns apperrors.ErrPortfolioNotFound if no row matches.
func (r *PortfolioRepository) GetByID(portfolioID string) (model.Portfolio, error) {
	query := `
		SELECT id, name, description, is_default
		FROM portfolio
		WHERE id = ?
	`

	var p model.Portfolio

	err := r.db.QueryRow(query, portfolioID).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.IsDefault,
	)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	return p, nil
}

// GetDefault retrieves the portfolio flagged as default.
// Returns apperrors.ErrDefaultPortfolioNotFound if none exists.
func (r *PortfolioRepository) GetDefault() (model.Portfolio, error) {
	query := `
		SELECT id, name, description, is_default
		FROM portfolio
		WHERE is_default = 1
		LIMIT 1
	`

	var p model.Portfolio

	err := r.db.QueryRow(query).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.IsDefault,
	)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrDefaultPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query default portfolio: %w", err)
	}

	return p, nil
}

// Insert creates a new portfolio row and returns its generated ID.
func (r *PortfolioRepository) Insert(p model.Portfolio) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO portfolio (id, name, description, is_default)
		VALUES (?, ?, ?, ?)
	`

	if _, err := r.db.Exec(query, p.ID, p.Name, p.Description, p.IsDefault); err != nil {
		return "", fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return p.ID, nil
}

// Update replaces the mutable fields of an existing portfolio.
// Returns apperrors.ErrPortfolioNotFound if no row matches.
func (r *PortfolioRepository) Update(p model.Portfolio) error {
	query := `
		UPDATE portfolio
		SET name = ?, description = ?, is_default = ?
		WHERE id = ?
	`

	res, err := r.db.Exec(query, p.Name, p.Description, p.IsDefault, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}

// Delete removes a single portfolio by ID. Wallets cascade; movements and
// holdings referencing the portfolio make the delete fail with a foreign
// key violation, which is returned unmodified.
func (r *PortfolioRepository) Delete(portfolioID string) error {
	res, err := r.db.Exec("DELETE FROM portfolio WHERE id = ?", portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}

// DeleteAll removes every portfolio row.
func (r *PortfolioRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM portfolio"); err != nil {
		return fmt.Errorf("failed to delete portfolios: %w", err)
	}
	return nil
}
