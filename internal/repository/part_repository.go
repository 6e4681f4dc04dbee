package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// partRepository implements PartRepository interface
type partRepository struct {
	db *database.Postgres
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *database.Postgres) PartRepository {
	return &partRepository{db: db}
}

const partColumns = "id, part_name, last_purchase_id, supplier_id"

// Create creates a new part
func (r *partRepository) Create(ctx context.Context, part *domain.Part) error {
	query := `
		INSERT INTO parts (part_name, last_purchase_id, supplier_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		part.PartName,
		part.LastPurchaseID,
		part.SupplierID,
	).Scan(&part.ID)

	if err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}

	return nil
}

func scanPart(row *sql.Row) (*domain.Part, error) {
	p := &domain.Part{}
	var lastPurchaseID sql.NullInt64

	err := row.Scan(&p.ID, &p.PartName, &lastPurchaseID, &p.SupplierID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	if lastPurchaseID.Valid {
		p.LastPurchaseID = &lastPurchaseID.Int64
	}

	return p, nil
}

func (r *partRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Part, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parts: %w", err)
	}
	defer rows.Close()

	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		var lastPurchaseID sql.NullInt64
		if err := rows.Scan(&p.ID, &p.PartName, &lastPurchaseID, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		if lastPurchaseID.Valid {
			p.LastPurchaseID = &lastPurchaseID.Int64
		}
		parts = append(parts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parts: %w", err)
	}

	return parts, nil
}

// List retrieves all parts
func (r *partRepository) List(ctx context.Context) ([]domain.Part, error) {
	return r.queryMany(ctx, `SELECT `+partColumns+` FROM parts ORDER BY id`)
}

// GetByID retrieves a part by ID
func (r *partRepository) GetByID(ctx context.Context, id int64) (*domain.Part, error) {
	return scanPart(r.db.DB.QueryRowContext(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id))
}

// GetByName retrieves a part by name
func (r *partRepository) GetByName(ctx context.Context, name string) (*domain.Part, error) {
	return scanPart(r.db.DB.QueryRowContext(ctx, `SELECT `+partColumns+` FROM parts WHERE part_name = $1`, name))
}

// GetBySupplierID retrieves all parts of a supplier
func (r *partRepository) GetBySupplierID(ctx context.Context, supplierID int64) ([]domain.Part, error) {
	return r.queryMany(ctx, `SELECT `+partColumns+` FROM parts WHERE supplier_id = $1 ORDER BY id`, supplierID)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *partRepository) Update(ctx context.Context, id int64, fields PartUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE parts SET ` + setClause(cols, 2) + ` WHERE id = $1`
	args = append([]any{id}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update part: %w", err)
	}

	return result.RowsAffected()
}

// DeleteByName deletes a part by its name and returns the rows affected
func (r *partRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM parts WHERE part_name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete part: %w", err)
	}

	return result.RowsAffected()
}
