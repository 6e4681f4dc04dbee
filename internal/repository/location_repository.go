package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rmfarias/warranty-service/internal/domain"
	"github.com/rmfarias/warranty-service/pkg/database"
)

// locationRepository implements LocationRepository interface
type locationRepository struct {
	db *database.Postgres
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *database.Postgres) LocationRepository {
	return &locationRepository{db: db}
}

const locationColumns = "id, market, country, province, city"

// Create creates a new location
func (r *locationRepository) Create(ctx context.Context, location *domain.Location) error {
	query := `
		INSERT INTO locations (market, country, province, city)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.DB.QueryRowContext(ctx, query,
		location.Market,
		location.Country,
		location.Province,
		location.City,
	).Scan(&location.ID)

	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	return nil
}

func (r *locationRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Location, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Market, &l.Country, &l.Province, &l.City); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate locations: %w", err)
	}

	return locations, nil
}

// List retrieves all locations
func (r *locationRepository) List(ctx context.Context) ([]domain.Location, error) {
	return r.queryMany(ctx, `SELECT `+locationColumns+` FROM locations ORDER BY id`)
}

// GetByID retrieves a location by ID
func (r *locationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`

	l := &domain.Location{}
	err := r.db.DB.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Market, &l.Country, &l.Province, &l.City)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get location by id: %w", err)
	}

	return l, nil
}

// GetByMarket retrieves locations by market name
func (r *locationRepository) GetByMarket(ctx context.Context, market string) ([]domain.Location, error) {
	return r.queryMany(ctx, `SELECT `+locationColumns+` FROM locations WHERE market = $1 ORDER BY id`, market)
}

// GetByCountry retrieves locations by country
func (r *locationRepository) GetByCountry(ctx context.Context, country string) ([]domain.Location, error) {
	return r.queryMany(ctx, `SELECT `+locationColumns+` FROM locations WHERE country = $1 ORDER BY id`, country)
}

// GetByProvince retrieves locations by province
func (r *locationRepository) GetByProvince(ctx context.Context, province string) ([]domain.Location, error) {
	return r.queryMany(ctx, `SELECT `+locationColumns+` FROM locations WHERE province = $1 ORDER BY id`, province)
}

// GetByCity retrieves locations by city
func (r *locationRepository) GetByCity(ctx context.Context, city string) ([]domain.Location, error) {
	return r.queryMany(ctx, `SELECT `+locationColumns+` FROM locations WHERE city = $1 ORDER BY id`, city)
}

// Update applies the non-nil fields and returns the number of rows affected
func (r *locationRepository) Update(ctx context.Context, id int64, fields LocationUpdate) (int64, error) {
	cols, args := fields.fields()
	if len(cols) == 0 {
		return 0, nil
	}

	query := `UPDATE locations SET ` + setClause(cols, 2) + ` WHERE id = $1`
	args = append([]any{id}, args...)

	result, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update location: %w", err)
	}

	return result.RowsAffected()
}

// Delete deletes a location by ID and returns the rows affected
func (r *locationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete location: %w", err)
	}

	return result.RowsAffected()
}
