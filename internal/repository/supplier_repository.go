package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// supplierRepository implements SupplierRepository interface
type supplierRepository struct {
	db *database.Postgres
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *database.Postgres) SupplierRepository {
	return &supplierRepository{db: db}
}

const supplierColumns = "id, supplier_name, supplier_cpf, location_id"

// Create creates a new supplier
func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_name, supplier_cpf, location_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		supplier.SupplierName,
		supplier.SupplierCPF,
		supplier.LocationID,
	).Scan(&supplier.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return fmt.Errorf("supplier %s already exists: %w", supplier.SupplierName, ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}

	return nil
}

func scanSupplier(row *sql.Row) (*domain.Supplier, error) {
	s := &domain.Supplier{}

	err := row.Scan(&s.ID, &s.SupplierName, &s.SupplierCPF, &s.LocationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	return s, nil
}

func (r *supplierRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Supplier, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.SupplierName, &s.SupplierCPF, &s.LocationID); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
	}

	return suppliers, nil
}

// List retrieves all suppliers
func (r *supplierRepository) List(ctx context.Context) ([]domain.Supplier, error) {
	return r.queryMany(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY id`)
}

// GetByID retrieves a supplier by ID
func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	return scanSupplier(r.db.DB.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
}

// GetByName retrieves a supplier by name
func (r *supplierRepository) GetByName(ctx context.Context, name string) (*domain.Supplier, error) {
	return scanSupplier(r.db.DB.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_name = $1`, name))
}

// GetByCPF retrieves a supplier by CPF
func (r *supplierRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Supplier, error) {
	return scanSupplier(r.db.DB.QueryRowContext(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_cpf = $1`, cpf))
}

// GetByLocationIDs retrieves all suppliers in any of the given locations
func (r *supplierRepository) GetByLocationIDs(ctx context.Context, locationIDs []int64) ([]domain.Supplier, error) {
	if len(locationIDs) == 0 {
		return nil, nil
	}
	return r.queryMany(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE location_id = ANY($1) ORDER BY id`,
		pq.Array(locationIDs),
	)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *supplierRepository) Update(ctx context.Context, id int64, fields SupplierUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE suppliers SET ` + setClause(cols, 2) + ` WHERE id = $1`
	args = append([]any{id}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update supplier: %w", err)
	}

	return result.RowsAffected()
}

// DeleteByName deletes a supplier by name and returns the rows affected
func (r *supplierRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM suppliers WHERE supplier_name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete supplier: %w", err)
	}

	return result.RowsAffected()
}
