package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// warrantyRepository implements WarrantyRepository interface
type warrantyRepository struct {
	db *database.Postgres
}

// NewWarrantyRepository creates a new warranty repository
func NewWarrantyRepository(db *database.Postgres) WarrantyRepository {
	return &warrantyRepository{db: db}
}

const warrantyColumns = "claim_key, vehicle_id, part_id, purchase_id, location_id, repair_date, client_comment, tech_comment, classified_failure"

// Create creates a new warranty claim
func (r *warrantyRepository) Create(ctx context.Context, warranty *domain.Warranty) error {
	query := `
		INSERT INTO warranties (vehicle_id, part_id, purchase_id, location_id, repair_date, client_comment, tech_comment, classified_failure)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING claim_key
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		warranty.VehicleID,
		warranty.PartID,
		warranty.PurchaseID,
		warranty.LocationID,
		warranty.RepairDate,
		warranty.ClientComment,
		warranty.TechComment,
		warranty.ClassifiedFailure,
	).Scan(&warranty.ClaimKey)

	if err != nil {
		return fmt.Errorf("failed to create warranty claim: %w", err)
	}

	return nil
}

func (r *warrantyRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Warranty, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query warranty claims: %w", err)
	}
	defer rows.Close()

	var warranties []domain.Warranty
	for rows.Next() {
		var w domain.Warranty
		err := rows.Scan(
			&w.ClaimKey,
			&w.VehicleID,
			&w.PartID,
			&w.PurchaseID,
			&w.LocationID,
			&w.RepairDate,
			&w.ClientComment,
			&w.TechComment,
			&w.ClassifiedFailure,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan warranty claim: %w", err)
		}
		warranties = append(warranties, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate warranty claims: %w", err)
	}

	return warranties, nil
}

// List retrieves all warranty claims
func (r *warrantyRepository) List(ctx context.Context) ([]domain.Warranty, error) {
	return r.queryMany(ctx, `SELECT `+warrantyColumns+` FROM warranties ORDER BY claim_key`)
}

// GetByClaimKey retrieves a warranty claim by its key
func (r *warrantyRepository) GetByClaimKey(ctx context.Context, claimKey int64) (*domain.Warranty, error) {
	query := `SELECT ` + warrantyColumns + ` FROM warranties WHERE claim_key = $1`

	w := &domain.Warranty{}
	err := r.db.DB.QueryRowContext(ctx, query, claimKey).Scan(
		&w.ClaimKey,
		&w.VehicleID,
		&w.PartID,
		&w.PurchaseID,
		&w.LocationID,
		&w.RepairDate,
		&w.ClientComment,
		&w.TechComment,
		&w.ClassifiedFailure,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get warranty claim: %w", err)
	}

	return w, nil
}

// GetByVehicleID retrieves all claims filed for a vehicle
func (r *warrantyRepository) GetByVehicleID(ctx context.Context, vehicleID int64) ([]domain.Warranty, error) {
	return r.queryMany(ctx, `SELECT `+warrantyColumns+` FROM warranties WHERE vehicle_id = $1 ORDER BY claim_key`, vehicleID)
}

// GetByPartID retrieves all claims filed against a part
func (r *warrantyRepository) GetByPartID(ctx context.Context, partID int64) ([]domain.Warranty, error) {
	return r.queryMany(ctx, `SELECT `+warrantyColumns+` FROM warranties WHERE part_id = $1 ORDER BY claim_key`, partID)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *warrantyRepository) Update(ctx context.Context, claimKey int64, fields WarrantyUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE warranties SET ` + setClause(cols, 2) + ` WHERE claim_key = $1`
	args = append([]any{claimKey}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update warranty claim: %w", err)
	}

	return result.RowsAffected()
}

// Delete deletes a warranty claim and returns the rows affected
func (r *warrantyRepository) Delete(ctx context.Context, claimKey int64) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM warranties WHERE claim_key = $1`, claimKey)
	if err != nil {
		return 0, fmt.Errorf("failed to delete warranty claim: %w", err)
	}

	return result.RowsAffected()
}
