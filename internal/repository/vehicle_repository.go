package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// vehicleRepository implements VehicleRepository interface
type vehicleRepository struct {
	db *database.Postgres
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *database.Postgres) VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = "id, model, prod_date, year, propulsion"

// Create creates a new vehicle
func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (model, prod_date, year, propulsion)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		vehicle.Model,
		vehicle.ProdDate,
		vehicle.Year,
		vehicle.Propulsion,
	).Scan(&vehicle.ID)

	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	return nil
}

func (r *vehicleRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Vehicle, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Model, &v.ProdDate, &v.Year, &v.Propulsion); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vehicles: %w", err)
	}

	return vehicles, nil
}

// List retrieves all vehicles
func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	return r.queryMany(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id`)
}

// GetByID retrieves a vehicle by ID
func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	v := &domain.Vehicle{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Model, &v.ProdDate, &v.Year, &v.Propulsion)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by id: %w", err)
	}

	return v, nil
}

// GetByModel retrieves vehicles by exact model match
func (r *vehicleRepository) GetByModel(ctx context.Context, model string) ([]domain.Vehicle, error) {
	return r.queryMany(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE model = $1 ORDER BY id`, model)
}

// GetByPropulsion retrieves vehicles by propulsion type
func (r *vehicleRepository) GetByPropulsion(ctx context.Context, propulsion string) ([]domain.Vehicle, error) {
	return r.queryMany(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE propulsion = $1 ORDER BY id`, propulsion)
}

// GetByYear retrieves vehicles by production year
func (r *vehicleRepository) GetByYear(ctx context.Context, year int) ([]domain.Vehicle, error) {
	return r.queryMany(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE year = $1 ORDER BY id`, year)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *vehicleRepository) Update(ctx context.Context, id int64, fields VehicleUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE vehicles SET ` + setClause(cols, 2) + ` WHERE id = $1`
	args = append([]any{id}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update vehicle: %w", err)
	}

	return result.RowsAffected()
}

// Delete deletes a vehicle by ID and returns the number of rows affected
func (r *vehicleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return result.RowsAffected()
}
