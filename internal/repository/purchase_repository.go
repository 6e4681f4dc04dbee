package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// purchaseRepository implements PurchaseRepository interface
type purchaseRepository struct {
	db *database.Postgres
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *database.Postgres) PurchaseRepository {
	return &purchaseRepository{db: db}
}

const purchaseColumns = "id, purchase_type, purchase_date, part_id"

// Create creates a new purchase
func (r *purchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	query := `
		INSERT INTO purchases (purchase_type, purchase_date, part_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		purchase.PurchaseType,
		purchase.PurchaseDate,
		purchase.PartID,
	).Scan(&purchase.ID)

	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}

	return nil
}

func (r *purchaseRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Purchase, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.PurchaseType, &p.PurchaseDate, &p.PartID); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}

	return purchases, nil
}

// List retrieves all purchases
func (r *purchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	return r.queryMany(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY id`)
}

// GetByID retrieves a purchase by ID
func (r *purchaseRepository) GetByID(ctx context.Context, id int64) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	p := &domain.Purchase{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.PurchaseType, &p.PurchaseDate, &p.PartID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase by id: %w", err)
	}

	return p, nil
}

// GetByType retrieves purchases of one purchase type, in insertion order.
// The ordering keeps aggregation tie-breaks deterministic.
func (r *purchaseRepository) GetByType(ctx context.Context, purchaseType string) ([]domain.Purchase, error) {
	return r.queryMany(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE purchase_type = $1 ORDER BY id`, purchaseType)
}

// GetByDate retrieves purchases made on a calendar day
func (r *purchaseRepository) GetByDate(ctx context.Context, date time.Time) ([]domain.Purchase, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	return r.queryMany(ctx,
		`SELECT `+purchaseColumns+` FROM purchases WHERE purchase_date >= $1 AND purchase_date < $2 ORDER BY id`,
		dayStart, dayEnd,
	)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *purchaseRepository) Update(ctx context.Context, id int64, fields PurchaseUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE purchases SET ` + setClause(cols, 2) + ` WHERE id = $1`
	args = append([]any{id}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update purchase: %w", err)
	}

	return result.RowsAffected()
}

// Delete deletes a purchase by ID and returns the rows affected
func (r *purchaseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchase: %w", err)
	}

	return result.RowsAffected()
}
