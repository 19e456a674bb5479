package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkuiper/crypto-portfolio-backend/internal/apperrors"
	"github.com/dkuiper/crypto-portfolio-backend/internal/model"
)

// MovementRepository provides data access methods for the movement table.
type MovementRepository struct {
	db *sql.DB
}

// NewMovementRepository creates a new MovementRepository with the provided database connection.
func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// CountAll returns the number of rows in the movement table.
func (r *MovementRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM movement").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movements: %w", err)
	}
	return count, nil
}

// CountByPortfolioID returns the number of movements recorded against a portfolio.
func (r *MovementRepository) CountByPortfolioID(portfolioID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM movement WHERE portfolio_id = ?", portfolioID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count movements for portfolio: %w", err)
	}
	return count, nil
}

const movementColumns = `
	id, portfolio_id, wallet_id, asset_id, type,
	quantity, price, fee_quantity, timestamp,
	COALESCE(notes, ''), COALESCE(group_id, '')
`

// GetAll retrieves every movement in ledger order (oldest first).
func (r *MovementRepository) GetAll() ([]model.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movement
		ORDER BY timestamp ASC
	`
	return r.queryMovements(query)
}

// GetByWalletID retrieves a single wallet's movements in ledger order.
func (r *MovementRepository) GetByWalletID(walletID string) ([]model.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movement
		WHERE wallet_id = ?
		ORDER BY timestamp ASC
	`
	return r.queryMovements(query, walletID)
}

func (r *MovementRepository) queryMovements(query string, args ...any) ([]model.Movement, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movement table: %w", err)
	}
	defer rows.Close()

	movements := []model.Movement{}

	for rows.Next() {
		m, err := scanMovement(rows.Scan)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement table: %w", err)
	}

	return movements, nil
}

// GetByID retrieves a single movement by its ID.
// Returns apperrors.ErrMovementNotFound if no row matches.
func (r *MovementRepository) GetByID(movementID string) (model.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movement
		WHERE id = ?
	`

	row := r.db.QueryRow(query, movementID)

	m, err := scanMovement(row.Scan)
	if err == sql.ErrNoRows {
		return model.Movement{}, apperrors.ErrMovementNotFound
	}
	if err != nil {
		return model.Movement{}, err
	}

	return m, nil
}

func scanMovement(scan func(...any) error) (model.Movement, error) {
	var m model.Movement
	var quantityStr, feeStr, timestampStr string
	var priceStr sql.NullString

	err := scan(
		&m.ID,
		&m.PortfolioID,
		&m.WalletID,
		&m.AssetID,
		&m.Type,
		&quantityStr,
		&priceStr,
		&feeStr,
		&timestampStr,
		&m.Notes,
		&m.GroupID,
	)
	if err == sql.ErrNoRows {
		return model.Movement{}, err
	}
	if err != nil {
		return model.Movement{}, fmt.Errorf("failed to scan movement table results: %w", err)
	}

	if m.Quantity, err = ParseDecimal(quantityStr); err != nil {
		return model.Movement{}, err
	}
	if m.FeeQuantity, err = ParseDecimal(feeStr); err != nil {
		return model.Movement{}, err
	}
	if priceStr.Valid {
		price, err := ParseDecimal(priceStr.String)
		if err != nil {
			return model.Movement{}, err
		}
		m.Price = &price
	}
	if m.Timestamp, err = ParseTime(timestampStr); err != nil {
		return model.Movement{}, err
	}

	return m, nil
}

// Insert creates a new movement row and returns its generated ID.
// Foreign key violations (unknown wallet, portfolio or asset) propagate
// from the driver unmodified.
func (r *MovementRepository) Insert(m model.Movement) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	query := `
		INSERT INTO movement (
			id, portfolio_id, wallet_id, asset_id, type,
			quantity, price, fee_quantity, timestamp, notes, group_id
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var price any
	if m.Price != nil {
		price = m.Price.String()
	}

	var groupID any
	if m.GroupID != "" {
		groupID = m.GroupID
	}

	_, err := r.db.Exec(query,
		m.ID,
		m.PortfolioID,
		m.WalletID,
		m.AssetID,
		string(m.Type),
		m.Quantity.String(),
		price,
		m.FeeQuantity.String(),
		m.Timestamp.UTC().Format(time.RFC3339),
		m.Notes,
		groupID,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert movement: %w", err)
	}

	return m.ID, nil
}

// Delete removes a single movement by ID.
func (r *MovementRepository) Delete(movementID string) error {
	res, err := r.db.Exec("DELETE FROM movement WHERE id = ?", movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMovementNotFound
	}

	return nil
}

// DeleteAll removes every movement row.
func (r *MovementRepository) DeleteAll() error {
	if _, err := r.db.Exec("DELETE FROM movement"); err != nil {
		return fmt.Errorf("failed to delete movements: %w", err)
	}
	return nil
}
